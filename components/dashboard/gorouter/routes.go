package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	router "github.com/goliatone/go-router"
	"github.com/google/uuid"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/commands"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/httpapi"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/queries"
)

// ViewerResolver converts a router.Context into a dashboard.ViewerContext.
type ViewerResolver func(router.Context) dashboard.ViewerContext

// Config wires go-router with the dashboard controller, API and hooks.
type Config[T any] struct {
	Router         router.Router[T]
	Controller     *dashboard.Controller
	API            httpapi.Executor
	Broadcast      *dashboard.BroadcastHook
	ViewerResolver ViewerResolver
	BasePath       string
	Routes         RouteConfig
}

// RouteConfig customizes the relative paths used for dashboard endpoints.
// Paths are relative to BasePath.
type RouteConfig struct {
	Index        string
	Page         string
	Layout       string
	Filters      string
	Reorder      string
	Refresh      string
	Theme        string
	Notification string
	Export       string
	WebSocket    string
}

// DefaultBasePath is where the dashboard is mounted when Config.BasePath is empty.
const DefaultBasePath = dashboard.DefaultBasePath

// Register mounts dashboard routes (HTML, JSON, REST, WebSocket) on a go-router router.
// Fixed paths are registered before the page wildcard so they win the match.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = DefaultBasePath
	}
	viewerResolver := cfg.ViewerResolver
	if viewerResolver == nil {
		viewerResolver = DefaultViewerResolver
	}

	group := cfg.Router.Group(base)

	group.Get(routes.Layout, router.WrapHandler(func(ctx router.Context) error {
		viewer := viewerResolver(ctx)
		payload, err := cfg.Controller.LayoutPayload(ctx.Context(), viewer, dashboard.PageID(ctx.Param("page")))
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, payload)
	}))

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, viewerResolver, routes.WebSocket)
	}

	if cfg.API != nil {
		registerAPI(group, cfg.API, cfg.Controller, viewerResolver, routes, base)
	}

	renderPage := func(ctx router.Context, page dashboard.PageID) error {
		viewer := viewerResolver(ctx)
		var buf bytes.Buffer
		if err := cfg.Controller.RenderTemplate(ctx.Context(), viewer, page, &buf); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}

	group.Get(routes.Index, router.WrapHandler(func(ctx router.Context) error {
		return renderPage(ctx, dashboard.PageOverview)
	}))

	group.Get(routes.Page, router.WrapHandler(func(ctx router.Context) error {
		return renderPage(ctx, dashboard.PageID(ctx.Param("page")))
	}))

	return nil
}

func registerAPI[T any](r router.Router[T], api httpapi.Executor, controller *dashboard.Controller, resolver ViewerResolver, routes RouteConfig, base string) {
	r.Get(routes.Theme, router.WrapHandler(func(ctx router.Context) error {
		selection, err := api.Theme(ctx.Context(), resolver(ctx))
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, selection)
	}))

	r.Post(routes.Theme, router.WrapHandler(func(ctx router.Context) error {
		viewer := resolver(ctx)
		values, err := payloadValues(ctx)
		if err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		if err := api.SetTheme(ctx.Context(), commands.SetThemeInput{Viewer: viewer, Theme: values["theme"]}); err != nil {
			return respondError(ctx, err)
		}
		if isForm(ctx) {
			return redirect(ctx, referer(ctx, base))
		}
		selection, err := api.Theme(ctx.Context(), viewer)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, selection)
	}))

	r.Delete(routes.Notification, router.WrapHandler(func(ctx router.Context) error {
		if err := api.Dismiss(ctx.Context(), commands.DismissNotificationInput{Viewer: resolver(ctx)}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.NoContent(http.StatusNoContent)
	}))

	r.Get(routes.Export, router.WrapHandler(func(ctx router.Context) error {
		file, err := api.Export(ctx.Context(), queries.ExportInput{Dataset: ctx.Param("dataset")})
		if err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", file.ContentType)
		ctx.SetHeader("Content-Disposition", httpapi.ContentDisposition(file.Filename))
		return ctx.Send(file.Data)
	}))

	r.Post(routes.Filters, router.WrapHandler(func(ctx router.Context) error {
		viewer := resolver(ctx)
		page := dashboard.PageID(ctx.Param("page"))
		if isForm(ctx) {
			return submitFilterForm(ctx, api, controller, viewer, page, base)
		}
		var payload struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		}
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		input := commands.SetFilterInput{Viewer: viewer, Page: page, Name: payload.Name, Value: payload.Value}
		if err := api.SetFilter(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "applied"})
	}))

	r.Post(routes.Reorder, router.WrapHandler(func(ctx router.Context) error {
		var payload struct {
			SourceID string `json:"source_id"`
			TargetID string `json:"target_id"`
		}
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		input := commands.ReorderWidgetsInput{
			Viewer:   resolver(ctx),
			Page:     dashboard.PageID(ctx.Param("page")),
			SourceID: payload.SourceID,
			TargetID: payload.TargetID,
		}
		if err := api.Reorder(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "reordered"})
	}))

	r.Post(routes.Refresh, router.WrapHandler(func(ctx router.Context) error {
		page := dashboard.PageID(ctx.Param("page"))
		if err := api.Refresh(ctx.Context(), commands.RefreshPageInput{Viewer: resolver(ctx), Page: page}); err != nil {
			return respondError(ctx, err)
		}
		if isForm(ctx) {
			return redirect(ctx, base+"/"+string(page))
		}
		return ctx.JSON(http.StatusAccepted, map[string]string{"status": "queued"})
	}))
}

// submitFilterForm applies every select of the filter bar whose value changed.
func submitFilterForm(ctx router.Context, api httpapi.Executor, controller *dashboard.Controller, viewer dashboard.ViewerContext, page dashboard.PageID, base string) error {
	values, err := url.ParseQuery(string(ctx.Body()))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, err)
	}
	view, err := controller.Render(ctx.Context(), viewer, page)
	if err != nil {
		return respondError(ctx, err)
	}
	for _, group := range view.FilterGroups {
		value := values.Get(group.Name)
		if value == "" {
			continue
		}
		if view.Filters.Get(group.Name) == value {
			continue
		}
		input := commands.SetFilterInput{Viewer: viewer, Page: page, Name: group.Name, Value: value}
		if err := api.SetFilter(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
	}
	return redirect(ctx, base+"/"+string(page))
}

func registerWebSocket[T any](r router.Router[T], hook *dashboard.BroadcastHook, resolver ViewerResolver, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		viewer := resolver(ws)
		events, cancel := hook.Subscribe(viewer.Key())
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

// DefaultViewerResolver reads the viewer from request locals, the session
// header or cookie, the locale hints and the color scheme client hint. A new
// session cookie is issued when the request carries none.
func DefaultViewerResolver(ctx router.Context) dashboard.ViewerContext {
	var viewer dashboard.ViewerContext
	if v, ok := ctx.Locals("user_id").(string); ok {
		viewer.UserID = v
	}
	viewer.SessionID = sessionID(ctx)
	if viewer.SessionID == "" && viewer.UserID == "" {
		viewer.SessionID = uuid.NewString()
		cookie := &http.Cookie{
			Name:     httpapi.SessionCookie,
			Value:    viewer.SessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		ctx.SetHeader("Set-Cookie", cookie.String())
		ctx.Locals("session_id", viewer.SessionID)
	}
	viewer.Locale = inferLocale(ctx)
	viewer.ColorScheme = strings.TrimSpace(ctx.Header(httpapi.ColorSchemeHeader))
	return viewer
}

func sessionID(ctx router.Context) string {
	if id, ok := ctx.Locals("session_id").(string); ok && id != "" {
		return id
	}
	if id := strings.TrimSpace(ctx.Header(httpapi.SessionHeader)); id != "" {
		return id
	}
	cookies, err := http.ParseCookie(ctx.Header("Cookie"))
	if err != nil {
		return ""
	}
	for _, cookie := range cookies {
		if cookie.Name == httpapi.SessionCookie {
			return cookie.Value
		}
	}
	return ""
}

func inferLocale(ctx router.Context) string {
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		return locale
	}
	if locale := strings.TrimSpace(ctx.Query("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	return dashboard.MatchAcceptLanguage(ctx.Header("Accept-Language"))
}

func isForm(ctx router.Context) bool {
	return strings.HasPrefix(ctx.Header("Content-Type"), "application/x-www-form-urlencoded")
}

func payloadValues(ctx router.Context) (map[string]string, error) {
	out := map[string]string{}
	if isForm(ctx) {
		values, err := url.ParseQuery(string(ctx.Body()))
		if err != nil {
			return nil, err
		}
		for key := range values {
			out[key] = values.Get(key)
		}
		return out, nil
	}
	if err := json.Unmarshal(ctx.Body(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func referer(ctx router.Context, fallback string) string {
	if ref := ctx.Header("Referer"); ref != "" {
		return ref
	}
	return fallback
}

func redirect(ctx router.Context, location string) error {
	ctx.SetHeader("Location", location)
	return ctx.JSON(http.StatusSeeOther, map[string]string{"location": location})
}

func respondError(ctx router.Context, err error) error {
	return respondStatus(ctx, httpapi.StatusFor(err), err)
}

func respondStatus(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Index == "" {
		routes.Index = "/"
	}
	if routes.Page == "" {
		routes.Page = "/:page"
	}
	if routes.Layout == "" {
		routes.Layout = "/:page/_layout"
	}
	if routes.Filters == "" {
		routes.Filters = "/:page/filters"
	}
	if routes.Reorder == "" {
		routes.Reorder = "/:page/reorder"
	}
	if routes.Refresh == "" {
		routes.Refresh = "/:page/refresh"
	}
	if routes.Theme == "" {
		routes.Theme = "/theme"
	}
	if routes.Notification == "" {
		routes.Notification = "/notification"
	}
	if routes.Export == "" {
		routes.Export = "/exports/:dataset"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws"
	}
	return routes
}
