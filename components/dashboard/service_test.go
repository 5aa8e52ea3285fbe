package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []DashboardEvent
}

func (r *eventRecorder) DashboardUpdated(_ context.Context, event DashboardEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *eventRecorder) reasons() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Reason
	}
	return out
}

func (r *eventRecorder) has(reason string) bool {
	for _, got := range r.reasons() {
		if got == reason {
			return true
		}
	}
	return false
}

type stubCharts struct {
	mu     sync.Mutex
	purged int
}

func (s *stubCharts) Render(widgetID string, chart ChartWidget, theme string) (string, error) {
	return "<div id=\"" + widgetID + "\" data-theme=\"" + theme + "\"></div>", nil
}

func (s *stubCharts) Purge() {
	s.mu.Lock()
	s.purged++
	s.mu.Unlock()
}

type bogusWidget struct{}

func (bogusWidget) Kind() WidgetKind { return "bogus" }
func (bogusWidget) widget()          {}

type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) Record(_ context.Context, event string, _ map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) count(event string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.events {
		if e == event {
			n++
		}
	}
	return n
}

func newTestService(t *testing.T, opts Options) *Service {
	t.Helper()
	if opts.Charts == nil {
		opts.Charts = &stubCharts{}
	}
	svc := NewService(opts)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func widgetIDs(views []WidgetView) []string {
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}

func TestServicePageRendersDefaultOrder(t *testing.T) {
	svc := newTestService(t, Options{})
	view, err := svc.Page(context.Background(), ViewerContext{SessionID: "s1"}, PageOverview)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	assert.Equal(t, overviewWidgetOrder, widgetIDs(view.Widgets))
	assert.Equal(t, "Dashboard", view.Title)
	assert.Equal(t, KindStat, view.Widgets[0].Kind)
	assert.Equal(t, "Last 30 Days", view.Filters.Get(FilterTimePeriod))
	require.Len(t, view.Navigation, 4)
	assert.True(t, view.Navigation[0].Active)
	assert.Equal(t, PageCustomers, view.Navigation[1].Page)
	assert.Nil(t, view.Notification)
}

func TestServicePageLocalizesTitle(t *testing.T) {
	svc := newTestService(t, Options{})
	view, err := svc.Page(context.Background(), ViewerContext{SessionID: "s1", Locale: "de-DE"}, PageOverview)
	require.NoError(t, err)
	assert.Equal(t, "Übersicht", view.Title)
}

func TestServicePageUnknown(t *testing.T) {
	svc := newTestService(t, Options{})
	_, err := svc.Page(context.Background(), ViewerContext{}, "sales")
	if !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
}

func TestServiceSetFilterIsolatesViewersAndData(t *testing.T) {
	hook := &eventRecorder{}
	svc := newTestService(t, Options{RefreshHook: hook})
	ctx := context.Background()
	alice := ViewerContext{SessionID: "alice"}
	bob := ViewerContext{SessionID: "bob"}

	before, err := svc.Page(ctx, alice, PageOverview)
	require.NoError(t, err)

	filters, err := svc.SetFilter(ctx, alice, PageOverview, FilterRegion, "Europe")
	require.NoError(t, err)
	assert.Equal(t, "Europe", filters.Get(FilterRegion))
	assert.Equal(t, "All Products", filters.Get(FilterProduct))

	after, err := svc.Page(ctx, alice, PageOverview)
	require.NoError(t, err)
	assert.Equal(t, "Europe", after.Filters.Get(FilterRegion))
	assert.Equal(t, before.Widgets, after.Widgets, "filters must not change widget data")
	require.NotNil(t, after.Notification)
	assert.Equal(t, "Filter applied: Europe", after.Notification.Message)

	other, err := svc.Page(ctx, bob, PageOverview)
	require.NoError(t, err)
	assert.Equal(t, "All Regions", other.Filters.Get(FilterRegion))
	assert.Nil(t, other.Notification)

	assert.Equal(t, []string{EventFilter, EventNotification}, hook.reasons())
}

func TestServiceSetFilterValidation(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()
	if _, err := svc.SetFilter(ctx, ViewerContext{}, PageOverview, FilterRegion, "Europe"); !errors.Is(err, ErrMissingViewer) {
		t.Fatalf("expected ErrMissingViewer, got %v", err)
	}
	if _, err := svc.SetFilter(ctx, ViewerContext{UserID: "u"}, PageOverview, "", "x"); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	if _, err := svc.SetFilter(ctx, ViewerContext{UserID: "u"}, "nope", FilterRegion, "x"); !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
}

func TestServiceSetFilterAcceptsUnlistedValue(t *testing.T) {
	svc := newTestService(t, Options{})
	filters, err := svc.SetFilter(context.Background(), ViewerContext{UserID: "u"}, PageCustomers, FilterSegment, "Not An Option")
	require.NoError(t, err)
	assert.Equal(t, "Not An Option", filters.Get(FilterSegment))
}

func TestServiceReorderWidgets(t *testing.T) {
	hook := &eventRecorder{}
	svc := newTestService(t, Options{RefreshHook: hook})
	ctx := context.Background()
	viewer := ViewerContext{SessionID: "s1"}

	order, err := svc.ReorderWidgets(ctx, viewer, PageCustomers, "feedback", "stats")
	require.NoError(t, err)
	assert.Equal(t, "feedback", order[0])
	assert.True(t, samePermutation(order, NewWidgetOrder(customerWidgetOrder)))

	view, err := svc.Page(ctx, viewer, PageCustomers)
	require.NoError(t, err)
	assert.Equal(t, []string(order), widgetIDs(view.Widgets))
	assert.Nil(t, view.Notification, "customers page does not notify")
	assert.Equal(t, []string{EventReorder}, hook.reasons())

	same, err := svc.ReorderWidgets(ctx, viewer, PageCustomers, "stats", "stats")
	require.NoError(t, err)
	assert.Equal(t, order, same)
}

func TestServiceReorderOverviewNotifies(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()
	viewer := ViewerContext{SessionID: "s1"}
	_, err := svc.ReorderWidgets(ctx, viewer, PageOverview, "recent-sales-card", "revenue-card")
	require.NoError(t, err)
	view, err := svc.Page(ctx, viewer, PageOverview)
	require.NoError(t, err)
	require.NotNil(t, view.Notification)
	assert.Equal(t, "Layout updated", view.Notification.Message)
	assert.Equal(t, "Dashboard layout has been updated", view.Notification.Description)
	assert.Equal(t, "recent-sales-card", view.Widgets[0].ID)
}

func TestServiceRefreshResetsSessionAfterDelay(t *testing.T) {
	hook := &eventRecorder{}
	svc := newTestService(t, Options{RefreshHook: hook, ReloadDelay: 20 * time.Millisecond})
	ctx := context.Background()
	viewer := ViewerContext{SessionID: "s1"}

	_, err := svc.SetFilter(ctx, viewer, PageMarketing, FilterChannel, "Email")
	require.NoError(t, err)
	_, err = svc.ReorderWidgets(ctx, viewer, PageMarketing, "geography", "stats")
	require.NoError(t, err)
	require.NoError(t, svc.Refresh(ctx, viewer, PageMarketing))

	view, err := svc.Page(ctx, viewer, PageMarketing)
	require.NoError(t, err)
	assert.True(t, view.ReloadPending)
	assert.Equal(t, "Email", view.Filters.Get(FilterChannel), "state holds until the reload fires")

	require.Eventually(t, func() bool { return hook.has(EventReload) }, time.Second, 5*time.Millisecond)

	view, err = svc.Page(ctx, viewer, PageMarketing)
	require.NoError(t, err)
	assert.False(t, view.ReloadPending)
	assert.Equal(t, "All Channels", view.Filters.Get(FilterChannel))
	assert.Equal(t, marketingWidgetOrder, widgetIDs(view.Widgets))
}

func TestServiceRefreshAfterCloseFails(t *testing.T) {
	svc := NewService(Options{Charts: &stubCharts{}})
	require.NoError(t, svc.Close())
	err := svc.Refresh(context.Background(), ViewerContext{UserID: "u"}, PageOverview)
	assert.ErrorIs(t, err, ErrServiceClosed)
}

func TestServiceGesturesAfterCloseLeaveSessionUntouched(t *testing.T) {
	store := NewInMemorySessionStore()
	svc := NewService(Options{Charts: &stubCharts{}, SessionStore: store})
	require.NoError(t, svc.Close())
	ctx := context.Background()
	viewer := ViewerContext{UserID: "u"}

	_, err := svc.SetFilter(ctx, viewer, PageOverview, FilterRegion, "Europe")
	assert.ErrorIs(t, err, ErrServiceClosed)
	_, err = svc.ReorderWidgets(ctx, viewer, PageOverview, "recent-sales-card", "revenue-card")
	assert.ErrorIs(t, err, ErrServiceClosed)
	_, err = svc.SetTheme(ctx, viewer, "dark")
	assert.ErrorIs(t, err, ErrServiceClosed)

	def, ok := NewRegistry().Page(PageOverview)
	require.True(t, ok)
	session, err := store.Session(ctx, SessionKey{Viewer: "u", Page: PageOverview}, def)
	require.NoError(t, err)
	assert.Equal(t, "All Regions", session.Filters.Get(FilterRegion))
	assert.Equal(t, NewWidgetOrder(overviewWidgetOrder), session.Order)
}

func TestServiceHookFailureDoesNotFailGesture(t *testing.T) {
	telemetry := &recordingTelemetry{}
	svc := newTestService(t, Options{RefreshHook: failingHook{err: errors.New("subscriber gone")}, Telemetry: telemetry})
	ctx := context.Background()
	viewer := ViewerContext{UserID: "u"}

	filters, err := svc.SetFilter(ctx, viewer, PageOverview, FilterRegion, "Europe")
	require.NoError(t, err)
	assert.Equal(t, "Europe", filters.Get(FilterRegion))
	assert.Contains(t, telemetry.events, "dashboard.event.error")
	assert.Contains(t, telemetry.events, "dashboard.notification.error")
	assert.Contains(t, telemetry.events, "dashboard.filter.set")
}

func TestServiceNotificationExpires(t *testing.T) {
	hook := &eventRecorder{}
	svc := newTestService(t, Options{RefreshHook: hook, NotificationDelay: 20 * time.Millisecond})
	ctx := context.Background()
	viewer := ViewerContext{UserID: "u"}

	_, err := svc.SetFilter(ctx, viewer, PageOverview, FilterChannel, "Online")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hook.has(EventNotificationDismiss) }, time.Second, 5*time.Millisecond)

	view, err := svc.Page(ctx, viewer, PageOverview)
	require.NoError(t, err)
	assert.Nil(t, view.Notification)
}

func TestServiceDismissNotification(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()
	viewer := ViewerContext{UserID: "u"}
	_, err := svc.SetFilter(ctx, viewer, PageOverview, FilterChannel, "Online")
	require.NoError(t, err)
	require.NoError(t, svc.DismissNotification(ctx, viewer))
	view, err := svc.Page(ctx, viewer, PageOverview)
	require.NoError(t, err)
	assert.Nil(t, view.Notification)
}

func TestServiceTheme(t *testing.T) {
	hook := &eventRecorder{}
	svc := newTestService(t, Options{RefreshHook: hook})
	ctx := context.Background()
	viewer := ViewerContext{UserID: "u", ColorScheme: "dark"}

	current, err := svc.Theme(ctx, viewer)
	require.NoError(t, err)
	assert.Equal(t, ThemeSystem, current.Name)
	assert.Equal(t, ThemeDark, current.Resolved)

	_, err = svc.SetTheme(ctx, viewer, "sepia")
	assert.ErrorIs(t, err, ErrInvalidTheme)

	selection, err := svc.SetTheme(ctx, viewer, "light")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, selection.Resolved)

	view, err := svc.Page(ctx, viewer, PageProducts)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, view.Theme.Name)
	assert.Equal(t, []string{EventTheme}, hook.reasons())
}

func TestServiceExport(t *testing.T) {
	at := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, Options{Now: func() time.Time { return at }})
	file, err := svc.Export(context.Background(), "topCustomers")
	require.NoError(t, err)
	assert.Equal(t, DatasetTopCustomers, file.Dataset)
	assert.Equal(t, "top-customers-2024-03-09.csv", file.Filename)
	assert.Greater(t, file.Rows, 0)

	_, err = svc.Export(context.Background(), "payroll")
	assert.ErrorIs(t, err, ErrUnknownDataset)
}

func TestServiceSkipsUnknownWidgets(t *testing.T) {
	reg := NewEmptyRegistry()
	require.NoError(t, reg.RegisterPage(PageDefinition{ID: "custom", Title: "Custom", DefaultOrder: []string{"bogus", "table", "absent"}}))
	require.NoError(t, reg.RegisterProvider("custom", ProviderFunc(func(context.Context, PageContext) (PageWidgets, error) {
		return PageWidgets{Widgets: map[string]Widget{
			"bogus": bogusWidget{},
			"table": TableWidget{Title: "T", Columns: []string{"a"}, Rows: [][]string{{"1"}}},
		}}, nil
	})))
	telemetry := &eventLog{}
	svc := newTestService(t, Options{Pages: reg, Telemetry: telemetry})

	view, err := svc.Page(context.Background(), ViewerContext{}, "custom")
	require.NoError(t, err)
	assert.Equal(t, []string{"table"}, widgetIDs(view.Widgets))
	assert.Equal(t, 2, telemetry.count("dashboard.widget.missing"))
}

func TestServiceRenderWidgetUnknownKind(t *testing.T) {
	svc := newTestService(t, Options{})
	_, err := svc.renderWidget("x", bogusWidget{}, NewThemeSelection(ThemeLight, ""), "en")
	assert.ErrorIs(t, err, ErrUnknownWidgetKind)
}

func TestServiceCounter(t *testing.T) {
	svc := newTestService(t, Options{CounterDuration: time.Second})
	ctx := context.Background()
	stats := overviewData().Stats

	counter, err := svc.Counter(ctx, ViewerContext{}, PageOverview, stats[0].ID+"-card", "")
	require.NoError(t, err)
	assert.Equal(t, stats[0].Value, counter.Target)
	assert.Equal(t, time.Second, counter.Duration)

	group := customerData().Stats
	counter, err = svc.Counter(ctx, ViewerContext{}, PageCustomers, "stats", group[1].ID)
	require.NoError(t, err)
	assert.Equal(t, group[1].Value, counter.Target)

	_, err = svc.Counter(ctx, ViewerContext{}, PageCustomers, "stats", "missing")
	assert.ErrorIs(t, err, ErrUnknownWidget)
	_, err = svc.Counter(ctx, ViewerContext{}, PageCustomers, "feedback", "")
	assert.ErrorIs(t, err, ErrUnknownWidget)
}

func TestServiceRefreshAll(t *testing.T) {
	hook := &eventRecorder{}
	charts := &stubCharts{}
	svc := newTestService(t, Options{RefreshHook: hook, Charts: charts})
	require.NoError(t, svc.RefreshAll(context.Background()))
	assert.Equal(t, []string{EventRefresh, EventRefresh, EventRefresh, EventRefresh}, hook.reasons())
	assert.Equal(t, 1, charts.purged)
}
