package dashboard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPageResolver struct {
	view PageView
	err  error
}

func (s *stubPageResolver) Page(context.Context, ViewerContext, PageID) (PageView, error) {
	return s.view, s.err
}

type stubRenderer struct {
	lastTemplate string
	lastPayload  map[string]any
	err          error
}

func (r *stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	r.lastTemplate = name
	if payload, ok := data.(map[string]any); ok {
		r.lastPayload = payload
	}
	if len(out) > 0 && out[0] != nil {
		out[0].Write([]byte("<html></html>"))
	}
	return "<html></html>", r.err
}

func TestControllerRenderTemplate(t *testing.T) {
	resolver := &stubPageResolver{view: PageView{
		Page:    PageCustomers,
		Title:   "Customer Analytics",
		Widgets: []WidgetView{{ID: "stats", Kind: KindStatGroup, Data: WidgetData{"stats": []WidgetData{}}}},
		Theme:   NewThemeSelection(ThemeDark, ""),
	}}
	renderer := &stubRenderer{}
	controller := NewController(ControllerOptions{Service: resolver, Renderer: renderer})

	var buf bytes.Buffer
	if err := controller.RenderTemplate(context.Background(), ViewerContext{UserID: "user"}, PageCustomers, &buf); err != nil {
		t.Fatalf("RenderTemplate returned error: %v", err)
	}
	if renderer.lastTemplate != DefaultTemplate {
		t.Fatalf("expected dashboard template to render, got %s", renderer.lastTemplate)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected rendered output")
	}
	page, ok := renderer.lastPayload["page"].(map[string]any)
	require.True(t, ok, "payload page should be a map")
	assert.Equal(t, "customers", page["page"])
	widgets, ok := page["widgets"].([]any)
	require.True(t, ok)
	assert.Len(t, widgets, 1)
	assert.Contains(t, renderer.lastPayload["theme_css"], "--")
	assert.Equal(t, ThemeStorageKey, renderer.lastPayload["theme_storage_key"])
	assert.Equal(t, DefaultBasePath, renderer.lastPayload["base_path"])
}

func TestControllerPropagatesErrors(t *testing.T) {
	resolver := &stubPageResolver{err: ErrUnknownPage}
	controller := NewController(ControllerOptions{Service: resolver, Renderer: &stubRenderer{}})
	err := controller.RenderTemplate(context.Background(), ViewerContext{}, "nope", io.Discard)
	if !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}

	noRenderer := NewController(ControllerOptions{Service: resolver})
	assert.Error(t, noRenderer.RenderTemplate(context.Background(), ViewerContext{}, PageOverview, io.Discard))
}

func TestEmbeddedTemplatesRenderOverview(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)
	svc := NewService(Options{Charts: &stubCharts{}})
	defer svc.Close()
	controller := NewController(ControllerOptions{Service: svc, Renderer: renderer, BasePath: "/sales/"})

	var buf bytes.Buffer
	require.NoError(t, controller.RenderTemplate(context.Background(), ViewerContext{SessionID: "s1"}, PageOverview, &buf))
	html := buf.String()
	assert.Contains(t, html, `href="/sales/customers"`)
	assert.Contains(t, html, `action="/sales/overview/filters"`)
	assert.Contains(t, html, `href="/sales/exports/dashboard-report"`)
	assert.True(t, strings.Contains(html, "Recent Transactions"), "transactions widget should render")
	assert.True(t, strings.Contains(html, `data-widget-id="revenue-card"`), "stat card should render")
	assert.Less(t, strings.Index(html, `data-widget-id="revenue-card"`), strings.Index(html, `data-widget-id="recent-sales-card"`))
}

func TestTemplateFSListsWidgetTemplates(t *testing.T) {
	for _, kind := range []WidgetKind{KindStat, KindStatGroup, KindChart, KindProducts, KindTransactions, KindTable} {
		if _, err := fs.Stat(TemplateFS(), "widgets/"+string(kind)+".html"); err != nil {
			t.Fatalf("missing template for %s: %v", kind, err)
		}
	}
}
