package dashboard

import (
	"context"
	"testing"

	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	for _, raw := range []string{"light", "Dark", " system "} {
		_, err := ParseTheme(raw)
		require.NoError(t, err, raw)
	}
	_, err := ParseTheme("sepia")
	assert.ErrorIs(t, err, ErrInvalidTheme)
}

func TestThemeResolveUsesHintForSystem(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeSystem.Resolve("dark"))
	assert.Equal(t, ThemeLight, ThemeSystem.Resolve(""))
	assert.Equal(t, ThemeLight, ThemeLight.Resolve("dark"))
	assert.Equal(t, types.ThemeChalk, ThemeDark.ChartTheme())
	assert.Equal(t, types.ThemeWesteros, ThemeLight.ChartTheme())
}

func TestThemeProviderDefaultsAndSet(t *testing.T) {
	ctx := context.Background()
	provider := NewThemeProvider(nil, "")
	viewer := ViewerContext{UserID: "user-1", ColorScheme: "dark"}

	current, err := provider.Current(ctx, viewer)
	require.NoError(t, err)
	assert.Equal(t, ThemeSystem, current.Name)
	assert.Equal(t, ThemeDark, current.Resolved)

	updated, err := provider.Set(ctx, viewer, "light")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, updated.Resolved)
	assert.Equal(t, "#ffffff", updated.Tokens["background"])

	current, err = provider.Current(ctx, viewer)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, current.Name)

	_, err = provider.Set(ctx, viewer, "neon")
	assert.ErrorIs(t, err, ErrInvalidTheme)
	_, err = provider.Set(ctx, ViewerContext{}, "dark")
	assert.ErrorIs(t, err, ErrMissingViewer)
	assert.NoError(t, provider.Close())
}

func TestThemeSelectionCSSVariablesInline(t *testing.T) {
	sel := ThemeSelection{Tokens: map[string]string{"primary": "#111", "--border": "#222", "": "x"}}
	assert.Equal(t, "--border: #222; --primary: #111;", sel.CSSVariablesInline())
	assert.Empty(t, ThemeSelection{}.CSSVariablesInline())
}

func TestSQLiteThemeStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLiteThemeStore(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	theme, err := store.Theme(ctx, "viewer-1")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, theme)

	require.NoError(t, store.SaveTheme(ctx, "viewer-1", ThemeDark))
	require.NoError(t, store.SaveTheme(ctx, "viewer-1", ThemeLight))
	theme, err = store.Theme(ctx, "viewer-1")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	require.NoError(t, store.DeleteTheme(ctx, "viewer-1"))
	theme, err = store.Theme(ctx, "viewer-1")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, theme)

	assert.ErrorIs(t, store.SaveTheme(ctx, "", ThemeDark), ErrMissingViewer)
}

func TestThemeProviderWithSQLiteStore(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLiteThemeStore(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	provider := NewThemeProvider(store, ThemeLight)
	viewer := ViewerContext{SessionID: "sess-9"}
	_, err = provider.Set(ctx, viewer, "dark")
	require.NoError(t, err)
	sel, err := provider.Current(ctx, viewer)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeChalk, sel.ChartTheme)
}
