package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

var (
	ErrUnknownPage       = errors.New("dashboard: unknown page")
	ErrUnknownWidget     = errors.New("dashboard: unknown widget")
	ErrUnknownWidgetKind = errors.New("dashboard: unknown widget kind")
	ErrUnknownDataset    = errors.New("dashboard: unknown dataset")
	ErrInvalidTheme      = errors.New("dashboard: invalid theme")
	ErrInvalidFilter     = errors.New("dashboard: filter name is required")
	ErrMissingViewer     = errors.New("dashboard: viewer context missing user or session id")
	ErrServiceClosed     = errors.New("dashboard: service closed")
)

// ChartRendering renders chart widgets to embeddable HTML.
type ChartRendering interface {
	Render(widgetID string, chart ChartWidget, theme string) (string, error)
	Purge()
}

// Options configures the dashboard Service. Every collaborator is provided via
// interface so applications can swap implementations.
type Options struct {
	Pages             PageRegistry
	DataSource        DataSource
	SessionStore      SessionStore
	ThemeStore        ThemeStore
	DefaultTheme      Theme
	Charts            ChartRendering
	RefreshHook       RefreshHook
	Telemetry         Telemetry
	NotificationDelay time.Duration
	ReloadDelay       time.Duration
	CounterDuration   time.Duration
	Now               func() time.Time
}

// Service resolves pages for viewers and applies their gestures.
type Service struct {
	opts     Options
	themes   *ThemeProvider
	notifier *Notifier
	reloads  *ReloadScheduler
	closed   atomic.Bool
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Pages == nil {
		opts.Pages = NewRegistry()
	}
	if opts.DataSource == nil {
		opts.DataSource = NewStaticDataSource()
	}
	if opts.SessionStore == nil {
		opts.SessionStore = NewInMemorySessionStore()
	}
	if opts.Charts == nil {
		opts.Charts = NewChartRenderer()
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	if opts.CounterDuration <= 0 {
		opts.CounterDuration = DefaultCounterDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{
		opts:     opts,
		themes:   NewThemeProvider(opts.ThemeStore, opts.DefaultTheme),
		notifier: NewNotifier(opts.RefreshHook, opts.NotificationDelay),
		reloads:  NewReloadScheduler(opts.ReloadDelay),
	}
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

func (s *Service) ensureOpen() error {
	if s.closed.Load() {
		return ErrServiceClosed
	}
	return nil
}

// publish forwards a gesture event to the refresh hook. The gesture is already
// stored, so a failing subscriber is recorded and not returned.
func (s *Service) publish(ctx context.Context, event DashboardEvent) {
	if err := s.opts.RefreshHook.DashboardUpdated(ctx, event); err != nil {
		s.recordTelemetry(ctx, "dashboard.event.error", map[string]any{
			"page":   event.Page,
			"viewer": event.Viewer,
			"reason": event.Reason,
			"error":  err.Error(),
		})
	}
}

// announce shows a toast on pages that notify. Failures never fail the gesture.
func (s *Service) announce(ctx context.Context, key string, def PageDefinition, message, description string) {
	if !def.Notify {
		return
	}
	if _, err := s.notifier.Show(ctx, key, def.ID, message, description); err != nil {
		s.recordTelemetry(ctx, "dashboard.notification.error", map[string]any{
			"page":    def.ID,
			"viewer":  key,
			"message": message,
			"error":   err.Error(),
		})
	}
}

// Pages lists the registered pages ordered by position.
func (s *Service) Pages() []PageDefinition {
	return s.opts.Pages.Pages()
}

func (s *Service) page(id PageID) (PageDefinition, Provider, error) {
	def, ok := s.opts.Pages.Page(id)
	if !ok {
		return PageDefinition{}, nil, fmt.Errorf("%w: %s", ErrUnknownPage, id)
	}
	provider, ok := s.opts.Pages.Provider(id)
	if !ok || provider == nil {
		return PageDefinition{}, nil, fmt.Errorf("%w: %s has no provider", ErrUnknownPage, id)
	}
	return def, provider, nil
}

// Page resolves the page for the viewer: session state, widgets in the
// viewer's order, theme, navigation and the visible notification.
func (s *Service) Page(ctx context.Context, viewer ViewerContext, id PageID) (PageView, error) {
	def, provider, err := s.page(id)
	if err != nil {
		return PageView{}, err
	}
	key := SessionKey{Viewer: viewer.Key(), Page: def.ID}
	session, err := s.opts.SessionStore.Session(ctx, key, def)
	if err != nil {
		return PageView{}, err
	}
	built, err := provider.Widgets(ctx, PageContext{Page: def, Viewer: viewer, Source: s.opts.DataSource})
	if err != nil {
		return PageView{}, err
	}
	theme, err := s.themes.Current(ctx, viewer)
	if err != nil {
		return PageView{}, err
	}

	ordered, missing := applyWidgetOrder(built.Widgets, session.Order)
	for _, widgetID := range missing {
		s.recordTelemetry(ctx, "dashboard.widget.missing", map[string]any{
			"page":      def.ID,
			"widget_id": widgetID,
		})
	}
	views := make([]WidgetView, 0, len(ordered))
	for _, entry := range ordered {
		view, err := s.renderWidget(entry.ID, entry.Widget, theme, viewer.Locale)
		if errors.Is(err, ErrUnknownWidgetKind) {
			s.recordTelemetry(ctx, "dashboard.widget.missing", map[string]any{
				"page":      def.ID,
				"widget_id": entry.ID,
				"error":     err.Error(),
			})
			continue
		}
		if err != nil {
			return PageView{}, fmt.Errorf("render widget %s: %w", entry.ID, err)
		}
		views = append(views, view)
	}

	view := PageView{
		Page:          def.ID,
		Title:         def.LocalizedTitle(viewer.Locale),
		Description:   def.Description,
		Path:          def.Path,
		DateRange:     built.DateRange,
		Filters:       session.Filters,
		FilterGroups:  def.FilterGroups,
		Order:         session.Order,
		Widgets:       views,
		Exports:       def.Exports,
		Theme:         theme,
		Navigation:    s.navigation(def.ID, viewer.Locale),
		ReloadPending: key.Viewer != "" && s.reloads.Pending(key),
	}
	if key.Viewer != "" {
		if note, ok := s.notifier.Current(key.Viewer); ok {
			view.Notification = &note
		}
	}
	s.recordTelemetry(ctx, "dashboard.page.view", map[string]any{
		"page":    def.ID,
		"viewer":  key.Viewer,
		"widgets": len(views),
	})
	return view, nil
}

func (s *Service) navigation(active PageID, locale string) []NavItem {
	pages := s.opts.Pages.Pages()
	items := make([]NavItem, 0, len(pages))
	for _, def := range pages {
		items = append(items, NavItem{
			Page:   def.ID,
			Title:  def.LocalizedTitle(locale),
			Path:   def.Path,
			Active: def.ID == active,
		})
	}
	return items
}

func (s *Service) renderWidget(id string, w Widget, theme ThemeSelection, locale string) (WidgetView, error) {
	switch widget := w.(type) {
	case StatWidget:
		return WidgetView{ID: id, Kind: KindStat, Span: 1, Data: s.statData(widget.Stat, locale)}, nil
	case StatGroupWidget:
		stats := make([]WidgetData, len(widget.Stats))
		for i, stat := range widget.Stats {
			stats[i] = s.statData(stat, locale)
		}
		return WidgetView{ID: id, Kind: KindStatGroup, Span: 2, Data: WidgetData{"stats": stats}}, nil
	case ChartWidget:
		html, err := s.opts.Charts.Render(id, widget, theme.ChartTheme)
		if err != nil {
			return WidgetView{}, err
		}
		return WidgetView{ID: id, Kind: KindChart, Span: spanOf(widget.Span), Data: WidgetData{
			"title":      widget.Title,
			"subtitle":   widget.Subtitle,
			"chart_type": string(widget.Type),
			"chart_html": html,
			"export":     string(widget.Export),
		}}, nil
	case ProductsWidget:
		products := make([]WidgetData, len(widget.Products))
		for i, p := range widget.Products {
			products[i] = WidgetData{
				"id":         p.ID,
				"name":       p.Name,
				"revenue":    FormatCurrency(p.Revenue, locale),
				"percentage": p.Percentage,
			}
		}
		return WidgetView{ID: id, Kind: KindProducts, Span: 1, Data: WidgetData{
			"title":    widget.Title,
			"products": products,
		}}, nil
	case TransactionsWidget:
		rows := make([]WidgetData, len(widget.Transactions))
		for i, tx := range widget.Transactions {
			rows[i] = WidgetData{
				"id":       tx.ID,
				"customer": tx.Customer.Name,
				"email":    tx.Customer.Email,
				"product":  tx.Product,
				"date":     tx.Date,
				"amount":   FormatCurrency(tx.Amount, locale),
				"status":   tx.Status,
			}
		}
		return WidgetView{ID: id, Kind: KindTransactions, Span: spanOf(widget.Span), Data: WidgetData{
			"title":        widget.Title,
			"transactions": rows,
		}}, nil
	case TableWidget:
		return WidgetView{ID: id, Kind: KindTable, Span: spanOf(widget.Span), Data: WidgetData{
			"title":   widget.Title,
			"columns": widget.Columns,
			"rows":    widget.Rows,
			"export":  string(widget.Export),
		}}, nil
	default:
		return WidgetView{}, fmt.Errorf("%w: %T", ErrUnknownWidgetKind, w)
	}
}

func spanOf(span int) int {
	if span <= 0 {
		return 1
	}
	return span
}

func (s *Service) statData(stat MetricStat, locale string) WidgetData {
	counter := CounterForStat(stat, s.opts.CounterDuration, locale)
	goalDecimals := decimalsFor(stat.Goal)
	return WidgetData{
		"id":                  stat.ID,
		"title":               stat.Title,
		"value":               counter.Final(),
		"raw":                 stat.Value,
		"prefix":              stat.Prefix,
		"suffix":              stat.Suffix,
		"decimals":            counter.Decimals(),
		"change":              FormatPercentage(stat.ChangePercentage),
		"direction":           string(stat.ChangeDirection),
		"goal":                stat.Prefix + FormatNumber(stat.Goal, goalDecimals, locale) + stat.Suffix,
		"achieved":            stat.Achieved,
		"counter_duration_ms": counter.duration().Milliseconds(),
	}
}

func (s *Service) requireViewer(viewer ViewerContext) (string, error) {
	key := viewer.Key()
	if key == "" {
		return "", ErrMissingViewer
	}
	return key, nil
}

// SetFilter replaces one entry of the viewer's filter selection. Values are
// not checked against the page's filter options and never touch the data.
func (s *Service) SetFilter(ctx context.Context, viewer ViewerContext, page PageID, name, value string) (FilterSelection, error) {
	key, err := s.requireViewer(viewer)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrInvalidFilter
	}
	def, _, err := s.page(page)
	if err != nil {
		return nil, err
	}
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	session, err := s.opts.SessionStore.UpdateSession(ctx, SessionKey{Viewer: key, Page: def.ID}, def, func(current PageSession) PageSession {
		current.Filters = current.Filters.With(name, value)
		return current
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, DashboardEvent{
		Page:    def.ID,
		Viewer:  key,
		Reason:  EventFilter,
		Payload: map[string]any{"name": name, "value": value},
		At:      s.opts.Now(),
	})
	s.announce(ctx, key, def, "Filter applied: "+value, fmt.Sprintf("%s set to %s", name, value))
	s.recordTelemetry(ctx, "dashboard.filter.set", map[string]any{
		"page":   def.ID,
		"viewer": key,
		"name":   name,
		"value":  value,
	})
	return session.Filters, nil
}

// ReorderWidgets moves source to target's position in the viewer's order.
// Equal or unknown ids leave the order unchanged.
func (s *Service) ReorderWidgets(ctx context.Context, viewer ViewerContext, page PageID, source, target string) (WidgetOrder, error) {
	key, err := s.requireViewer(viewer)
	if err != nil {
		return nil, err
	}
	def, _, err := s.page(page)
	if err != nil {
		return nil, err
	}
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	session, err := s.opts.SessionStore.UpdateSession(ctx, SessionKey{Viewer: key, Page: def.ID}, def, func(current PageSession) PageSession {
		current.Order = current.Order.Reorder(source, target)
		return current
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, DashboardEvent{
		Page:      def.ID,
		Viewer:    key,
		Reason:    EventReorder,
		WidgetIDs: append([]string(nil), session.Order...),
		Payload:   map[string]any{"source_id": source, "target_id": target},
		At:        s.opts.Now(),
	})
	s.announce(ctx, key, def, "Layout updated", "Dashboard layout has been updated")
	s.recordTelemetry(ctx, "dashboard.widget.reorder", map[string]any{
		"page":      def.ID,
		"viewer":    key,
		"source_id": source,
		"target_id": target,
	})
	return session.Order, nil
}

// Refresh schedules a reload of the page after the reload delay. The reload
// resets the viewer's filters and order to the page defaults.
func (s *Service) Refresh(ctx context.Context, viewer ViewerContext, page PageID) error {
	key, err := s.requireViewer(viewer)
	if err != nil {
		return err
	}
	def, _, err := s.page(page)
	if err != nil {
		return err
	}
	sessionKey := SessionKey{Viewer: key, Page: def.ID}
	scheduled := s.reloads.Schedule(sessionKey, func() {
		s.reload(sessionKey)
	})
	if !scheduled {
		return ErrServiceClosed
	}
	s.announce(ctx, key, def, "Refreshing dashboard", "Data will reload shortly")
	s.recordTelemetry(ctx, "dashboard.page.refresh", map[string]any{
		"page":   def.ID,
		"viewer": key,
	})
	return nil
}

func (s *Service) reload(key SessionKey) {
	ctx := context.Background()
	if err := s.opts.SessionStore.ResetSession(ctx, key); err != nil {
		s.recordTelemetry(ctx, "dashboard.page.reload_error", map[string]any{
			"page":   key.Page,
			"viewer": key.Viewer,
			"error":  err.Error(),
		})
		return
	}
	s.publish(ctx, DashboardEvent{
		Page:   key.Page,
		Viewer: key.Viewer,
		Reason: EventReload,
		At:     s.opts.Now(),
	})
	s.recordTelemetry(ctx, "dashboard.page.reload", map[string]any{
		"page":   key.Page,
		"viewer": key.Viewer,
	})
}

// RefreshAll purges rendered charts and tells every subscriber to refetch.
func (s *Service) RefreshAll(ctx context.Context) error {
	s.opts.Charts.Purge()
	var errs []error
	for _, def := range s.opts.Pages.Pages() {
		if err := s.opts.RefreshHook.DashboardUpdated(ctx, DashboardEvent{
			Page:   def.ID,
			Reason: EventRefresh,
			At:     s.opts.Now(),
		}); err != nil {
			errs = append(errs, err)
		}
	}
	s.recordTelemetry(ctx, "dashboard.refresh", map[string]any{"errors": len(errs)})
	return errors.Join(errs...)
}

// Theme returns the viewer's theme selection.
func (s *Service) Theme(ctx context.Context, viewer ViewerContext) (ThemeSelection, error) {
	return s.themes.Current(ctx, viewer)
}

// SetTheme stores the viewer's theme preference.
func (s *Service) SetTheme(ctx context.Context, viewer ViewerContext, value string) (ThemeSelection, error) {
	key, err := s.requireViewer(viewer)
	if err != nil {
		return ThemeSelection{}, err
	}
	if err := s.ensureOpen(); err != nil {
		return ThemeSelection{}, err
	}
	selection, err := s.themes.Set(ctx, viewer, value)
	if err != nil {
		return ThemeSelection{}, err
	}
	s.publish(ctx, DashboardEvent{
		Viewer:  key,
		Reason:  EventTheme,
		Payload: map[string]any{"theme": string(selection.Name), "resolved": string(selection.Resolved)},
		At:      s.opts.Now(),
	})
	s.recordTelemetry(ctx, "dashboard.theme.set", map[string]any{
		"viewer": key,
		"theme":  string(selection.Name),
	})
	return selection, nil
}

// Export serializes a dataset to CSV. Names are matched loosely, see ResolveDataset.
func (s *Service) Export(ctx context.Context, dataset string) (ExportFile, error) {
	id, err := ResolveDataset(dataset)
	if err != nil {
		return ExportFile{}, err
	}
	file, err := ExportDataset(ctx, s.opts.DataSource, id, s.opts.Now())
	if err != nil {
		return ExportFile{}, err
	}
	page, _ := DatasetPage(id)
	s.recordTelemetry(ctx, "dashboard.export", map[string]any{
		"page":    page,
		"dataset": string(id),
		"rows":    file.Rows,
	})
	return file, nil
}

// Counter builds the animated counter for a stat on a page. Stat group
// widgets need statID to pick one of their stats.
func (s *Service) Counter(ctx context.Context, viewer ViewerContext, page PageID, widgetID, statID string) (Counter, error) {
	def, provider, err := s.page(page)
	if err != nil {
		return Counter{}, err
	}
	built, err := provider.Widgets(ctx, PageContext{Page: def, Viewer: viewer, Source: s.opts.DataSource})
	if err != nil {
		return Counter{}, err
	}
	switch widget := built.Widgets[widgetID].(type) {
	case StatWidget:
		return CounterForStat(widget.Stat, s.opts.CounterDuration, viewer.Locale), nil
	case StatGroupWidget:
		for _, stat := range widget.Stats {
			if stat.ID == statID {
				return CounterForStat(stat, s.opts.CounterDuration, viewer.Locale), nil
			}
		}
		return Counter{}, fmt.Errorf("%w: %s/%s", ErrUnknownWidget, widgetID, statID)
	default:
		return Counter{}, fmt.Errorf("%w: %s", ErrUnknownWidget, widgetID)
	}
}

// DismissNotification hides the viewer's notification before its delay ends.
func (s *Service) DismissNotification(ctx context.Context, viewer ViewerContext) error {
	key, err := s.requireViewer(viewer)
	if err != nil {
		return err
	}
	return s.notifier.Dismiss(ctx, key)
}

// NotifyDashboardUpdated exposes refresh hook invocation for commands/transports.
func (s *Service) NotifyDashboardUpdated(ctx context.Context, event DashboardEvent) error {
	if event.At.IsZero() {
		event.At = s.opts.Now()
	}
	if err := s.opts.RefreshHook.DashboardUpdated(ctx, event); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "dashboard.event", map[string]any{
		"page":   event.Page,
		"reason": event.Reason,
	})
	return nil
}

// Close stops pending notification and reload timers.
func (s *Service) Close() error {
	s.closed.Store(true)
	s.notifier.Close()
	s.reloads.Close()
	return s.themes.Close()
}
