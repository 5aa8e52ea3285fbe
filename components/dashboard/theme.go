package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-echarts/go-echarts/v2/types"
)

// Theme is a viewer's color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultTheme applies when a viewer never chose one.
const DefaultTheme = ThemeSystem

// ThemeStorageKey is the preference key shared with browser clients.
const ThemeStorageKey = "vite-ui-theme"

// ParseTheme validates a theme string. Matching is case-insensitive.
func ParseTheme(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	case ThemeSystem:
		return ThemeSystem, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, value)
	}
}

// Resolve maps system to the client's hint (dark when the hint says so, else light).
func (t Theme) Resolve(hint string) Theme {
	switch t {
	case ThemeLight, ThemeDark:
		return t
	}
	if strings.EqualFold(strings.TrimSpace(hint), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// ChartTheme returns the go-echarts theme for a resolved theme.
func (t Theme) ChartTheme() string {
	if t == ThemeDark {
		return types.ThemeChalk
	}
	return types.ThemeWesteros
}

// ThemeStore persists theme preferences per viewer.
type ThemeStore interface {
	Theme(ctx context.Context, viewer string) (Theme, error)
	SaveTheme(ctx context.Context, viewer string, theme Theme) error
}

// InMemoryThemeStore is the default ThemeStore.
type InMemoryThemeStore struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

// NewInMemoryThemeStore creates an empty theme store.
func NewInMemoryThemeStore() *InMemoryThemeStore {
	return &InMemoryThemeStore{themes: make(map[string]Theme)}
}

// Theme returns the stored theme or DefaultTheme.
func (s *InMemoryThemeStore) Theme(_ context.Context, viewer string) (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if theme, ok := s.themes[viewer]; ok {
		return theme, nil
	}
	return DefaultTheme, nil
}

// SaveTheme stores the theme for viewer.
func (s *InMemoryThemeStore) SaveTheme(_ context.Context, viewer string, theme Theme) error {
	if viewer == "" {
		return ErrMissingViewer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[viewer] = theme
	return nil
}

// ThemeProvider holds the theme store and turns preferences into selections.
// Close is a no-op; it exists so callers can tear providers down uniformly.
type ThemeProvider struct {
	store    ThemeStore
	fallback Theme
}

// NewThemeProvider builds a provider. A nil store uses an in-memory store.
func NewThemeProvider(store ThemeStore, fallback Theme) *ThemeProvider {
	if store == nil {
		store = NewInMemoryThemeStore()
	}
	if _, err := ParseTheme(string(fallback)); err != nil {
		fallback = DefaultTheme
	}
	return &ThemeProvider{store: store, fallback: fallback}
}

// Current resolves the viewer's selection.
func (p *ThemeProvider) Current(ctx context.Context, viewer ViewerContext) (ThemeSelection, error) {
	theme := p.fallback
	if key := viewer.Key(); key != "" {
		stored, err := p.store.Theme(ctx, key)
		if err != nil {
			return ThemeSelection{}, err
		}
		if stored != "" {
			theme = stored
		}
	}
	return NewThemeSelection(theme, viewer.ColorScheme), nil
}

// Set validates and stores a new preference.
func (p *ThemeProvider) Set(ctx context.Context, viewer ViewerContext, value string) (ThemeSelection, error) {
	theme, err := ParseTheme(value)
	if err != nil {
		return ThemeSelection{}, err
	}
	if err := p.store.SaveTheme(ctx, viewer.Key(), theme); err != nil {
		return ThemeSelection{}, err
	}
	return NewThemeSelection(theme, viewer.ColorScheme), nil
}

// Close releases nothing.
func (p *ThemeProvider) Close() error { return nil }

// ThemeSelection carries the preference, its resolution and design tokens.
type ThemeSelection struct {
	Name       Theme             `json:"name"`
	Resolved   Theme             `json:"resolved"`
	ChartTheme string            `json:"chart_theme"`
	Tokens     map[string]string `json:"tokens,omitempty"`
}

var themeTokens = map[Theme]map[string]string{
	ThemeLight: {
		"background":       "#ffffff",
		"foreground":       "#0f172a",
		"card":             "#ffffff",
		"muted":            "#f1f5f9",
		"border":           "#e2e8f0",
		"primary":          "#3b82f6",
		"positive":         "#16a34a",
		"negative":         "#dc2626",
		"muted-foreground": "#64748b",
	},
	ThemeDark: {
		"background":       "#0f172a",
		"foreground":       "#f8fafc",
		"card":             "#1e293b",
		"muted":            "#1e293b",
		"border":           "#334155",
		"primary":          "#60a5fa",
		"positive":         "#4ade80",
		"negative":         "#f87171",
		"muted-foreground": "#94a3b8",
	},
}

// NewThemeSelection resolves theme against the client hint.
func NewThemeSelection(theme Theme, hint string) ThemeSelection {
	resolved := theme.Resolve(hint)
	return ThemeSelection{
		Name:       theme,
		Resolved:   resolved,
		ChartTheme: resolved.ChartTheme(),
		Tokens:     copyStringMap(themeTokens[resolved]),
	}
}

// CSSVariables normalizes token keys into CSS variable names.
func (theme ThemeSelection) CSSVariables() map[string]string {
	if len(theme.Tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(theme.Tokens))
	for key, value := range theme.Tokens {
		name := normalizeCSSVariable(key)
		if name == "" {
			continue
		}
		vars[name] = value
	}
	return vars
}

// CSSVariablesInline renders the CSS variable map as a style string, sorted by name.
func (theme ThemeSelection) CSSVariablesInline() string {
	vars := theme.CSSVariables()
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for key := range vars {
		names = append(names, key)
	}
	sort.Strings(names)
	var builder strings.Builder
	for _, key := range names {
		value := vars[key]
		if value == "" {
			continue
		}
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(value)
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}

func normalizeCSSVariable(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}
