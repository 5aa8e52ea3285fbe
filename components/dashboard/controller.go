package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// DefaultTemplate is the page template rendered by the controller.
const DefaultTemplate = "dashboard"

// DefaultBasePath is the URL prefix page links are built from.
const DefaultBasePath = "/dashboard"

// PageResolver resolves a page for a viewer. *Service satisfies it.
type PageResolver interface {
	Page(ctx context.Context, viewer ViewerContext, id PageID) (PageView, error)
}

// ControllerOptions configures the controller.
type ControllerOptions struct {
	Service  PageResolver
	Renderer Renderer
	Template string
	BasePath string
}

// Controller turns resolved pages into template payloads and HTML.
type Controller struct {
	service  PageResolver
	renderer Renderer
	template string
	basePath string
}

// NewController wires the service into a controller.
func NewController(opts ControllerOptions) *Controller {
	tpl := opts.Template
	if tpl == "" {
		tpl = DefaultTemplate
	}
	base := strings.TrimRight(opts.BasePath, "/")
	if opts.BasePath == "" {
		base = DefaultBasePath
	}
	return &Controller{
		service:  opts.Service,
		renderer: opts.Renderer,
		template: tpl,
		basePath: base,
	}
}

// Render resolves the page for the viewer.
func (c *Controller) Render(ctx context.Context, viewer ViewerContext, page PageID) (PageView, error) {
	if c.service == nil {
		return PageView{}, errors.New("dashboard: controller has no service")
	}
	return c.service.Page(ctx, viewer, page)
}

// LayoutPayload returns the page as a generic map, the same shape templates
// and JSON clients consume.
func (c *Controller) LayoutPayload(ctx context.Context, viewer ViewerContext, page PageID) (map[string]any, error) {
	view, err := c.Render(ctx, viewer, page)
	if err != nil {
		return nil, err
	}
	payload, err := pagePayload(view)
	if err != nil {
		return nil, err
	}
	payload["base_path"] = c.basePath
	return payload, nil
}

// RenderTemplate renders the page template into out.
func (c *Controller) RenderTemplate(ctx context.Context, viewer ViewerContext, page PageID, out io.Writer) error {
	if c.renderer == nil {
		return errors.New("dashboard: controller has no renderer")
	}
	payload, err := c.LayoutPayload(ctx, viewer, page)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render(c.template, payload, out)
	return err
}

func pagePayload(view PageView) (map[string]any, error) {
	raw, err := json.Marshal(view)
	if err != nil {
		return nil, err
	}
	page := map[string]any{}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return map[string]any{
		"page":              page,
		"theme_css":         view.Theme.CSSVariablesInline(),
		"theme_storage_key": ThemeStorageKey,
	}, nil
}
