package dashboard

import (
	"context"
	"time"
)

// PageID identifies a dashboard page (overview, customers, products, marketing).
type PageID string

const (
	PageOverview  PageID = "overview"
	PageCustomers PageID = "customers"
	PageProducts  PageID = "products"
	PageMarketing PageID = "marketing"
)

// SessionStore keeps per-viewer page state (filters + widget order) for the
// lifetime of a viewer session. Implementations must be safe for concurrent use.
type SessionStore interface {
	Session(ctx context.Context, key SessionKey, def PageDefinition) (PageSession, error)
	UpdateSession(ctx context.Context, key SessionKey, def PageDefinition, fn func(PageSession) PageSession) (PageSession, error)
	ResetSession(ctx context.Context, key SessionKey) error
}

// PageRegistry stores page definitions and the providers that build their widgets.
type PageRegistry interface {
	RegisterPage(def PageDefinition) error
	RegisterProvider(page PageID, provider Provider) error
	Page(id PageID) (PageDefinition, bool)
	Provider(id PageID) (Provider, bool)
	Pages() []PageDefinition
}

// RefreshHook notifies transports (REST/WebSocket/SSE) about dashboard changes.
type RefreshHook interface {
	DashboardUpdated(ctx context.Context, event DashboardEvent) error
}

// SessionKey scopes page state to a single viewer and page.
type SessionKey struct {
	Viewer string
	Page   PageID
}

// PageSession is the mutable, never persisted state of one page for one viewer.
type PageSession struct {
	Filters FilterSelection `json:"filters"`
	Order   WidgetOrder     `json:"order"`
}

// ViewerContext captures the active viewer information needed to render dashboards.
type ViewerContext struct {
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Locale    string `json:"locale,omitempty"`
	// ColorScheme carries the client's preferred color scheme hint (light/dark).
	ColorScheme string `json:"color_scheme,omitempty"`
}

// Key returns the identifier used to scope viewer state. Session ids win over
// user ids so two tabs of the same user keep independent layouts.
func (v ViewerContext) Key() string {
	if v.SessionID != "" {
		return v.SessionID
	}
	return v.UserID
}

// PageView is the resolved, render-ready state of a page.
type PageView struct {
	Page          PageID          `json:"page"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Path          string          `json:"path"`
	DateRange     DateRange       `json:"date_range"`
	Filters       FilterSelection `json:"filters"`
	FilterGroups  []FilterGroup   `json:"filter_groups,omitempty"`
	Order         WidgetOrder     `json:"order"`
	Widgets       []WidgetView    `json:"widgets"`
	Exports       []DatasetID     `json:"exports,omitempty"`
	Theme         ThemeSelection  `json:"theme"`
	Notification  *Notification   `json:"notification,omitempty"`
	Navigation    []NavItem       `json:"navigation,omitempty"`
	ReloadPending bool            `json:"reload_pending,omitempty"`
}

// WidgetView is a single rendered widget within a page.
type WidgetView struct {
	ID   string     `json:"id"`
	Kind WidgetKind `json:"kind"`
	Span int        `json:"span,omitempty"`
	Data WidgetData `json:"data"`
}

// NavItem links to another dashboard page.
type NavItem struct {
	Page   PageID `json:"page"`
	Title  string `json:"title"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// DashboardEvent describes changes that transports might care about.
type DashboardEvent struct {
	Page         PageID         `json:"page,omitempty"`
	Viewer       string         `json:"viewer,omitempty"`
	Reason       string         `json:"reason"`
	WidgetIDs    []string       `json:"widget_ids,omitempty"`
	Notification *Notification  `json:"notification,omitempty"`
	Payload      map[string]any `json:"payload,omitempty"`
	At           time.Time      `json:"at"`
}

// Event reasons published through the RefreshHook.
const (
	EventFilter              = "filter"
	EventReorder             = "reorder"
	EventReload              = "reload"
	EventRefresh             = "refresh"
	EventTheme               = "theme"
	EventNotification        = "notification"
	EventNotificationDismiss = "notification.dismiss"
)
