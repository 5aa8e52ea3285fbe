package dashboard

import "context"

// Provider builds the widgets of one page from the data source.
type Provider interface {
	Widgets(ctx context.Context, meta PageContext) (PageWidgets, error)
}

// PageContext contains the metadata needed by providers. Filters are
// deliberately absent: selections never reach the data.
type PageContext struct {
	Page   PageDefinition
	Viewer ViewerContext
	Source DataSource
}

// PageWidgets is the widget set built for a page, keyed by widget id.
type PageWidgets struct {
	Widgets   map[string]Widget
	DateRange DateRange
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, meta PageContext) (PageWidgets, error)

// Widgets implements Provider.
func (fn ProviderFunc) Widgets(ctx context.Context, meta PageContext) (PageWidgets, error) {
	return fn(ctx, meta)
}
