package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	dashboard "github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// PageInput identifies a page request for a viewer.
type PageInput struct {
	Viewer dashboard.ViewerContext
	Page   dashboard.PageID
}

type pageService interface {
	Page(ctx context.Context, viewer dashboard.ViewerContext, id dashboard.PageID) (dashboard.PageView, error)
}

// PageQuery executes read-only page resolution.
type PageQuery struct {
	service pageService
}

// NewPageQuery builds the query.
func NewPageQuery(service pageService) *PageQuery {
	return &PageQuery{service: service}
}

var _ gocommand.Querier[PageInput, dashboard.PageView] = (*PageQuery)(nil)

// Query resolves the page for the viewer.
func (q *PageQuery) Query(ctx context.Context, input PageInput) (dashboard.PageView, error) {
	return q.service.Page(ctx, input.Viewer, input.Page)
}

type themeService interface {
	Theme(ctx context.Context, viewer dashboard.ViewerContext) (dashboard.ThemeSelection, error)
}

// ThemeQuery reads a viewer's theme selection.
type ThemeQuery struct {
	service themeService
}

// NewThemeQuery builds the query.
func NewThemeQuery(service themeService) *ThemeQuery {
	return &ThemeQuery{service: service}
}

var _ gocommand.Querier[dashboard.ViewerContext, dashboard.ThemeSelection] = (*ThemeQuery)(nil)

// Query returns the selection.
func (q *ThemeQuery) Query(ctx context.Context, viewer dashboard.ViewerContext) (dashboard.ThemeSelection, error) {
	return q.service.Theme(ctx, viewer)
}

// CounterInput names one stat on a page. StatID picks a stat inside a stat group.
type CounterInput struct {
	Viewer   dashboard.ViewerContext
	Page     dashboard.PageID
	WidgetID string
	StatID   string
}

type counterService interface {
	Counter(ctx context.Context, viewer dashboard.ViewerContext, page dashboard.PageID, widgetID, statID string) (dashboard.Counter, error)
}

// CounterQuery builds the animated counter for a stat.
type CounterQuery struct {
	service counterService
}

// NewCounterQuery builds the query.
func NewCounterQuery(service counterService) *CounterQuery {
	return &CounterQuery{service: service}
}

var _ gocommand.Querier[CounterInput, dashboard.Counter] = (*CounterQuery)(nil)

// Query returns the counter.
func (q *CounterQuery) Query(ctx context.Context, input CounterInput) (dashboard.Counter, error) {
	return q.service.Counter(ctx, input.Viewer, input.Page, input.WidgetID, input.StatID)
}
