package httpapi

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

const (
	// SessionCookie carries the viewer session id.
	SessionCookie = "salesroom_session"
	// SessionHeader lets API clients pass the session id explicitly.
	SessionHeader = "X-Session-ID"
	// ColorSchemeHeader is the client hint used to resolve the system theme.
	ColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"
)

// ViewerFromRequest reads the viewer identity, locale and color scheme hint.
// The session id is empty when the request carries none.
func ViewerFromRequest(r *http.Request) dashboard.ViewerContext {
	viewer := dashboard.ViewerContext{
		SessionID:   strings.TrimSpace(r.Header.Get(SessionHeader)),
		Locale:      strings.TrimSpace(r.URL.Query().Get("locale")),
		ColorScheme: strings.TrimSpace(r.Header.Get(ColorSchemeHeader)),
	}
	if viewer.SessionID == "" {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			viewer.SessionID = cookie.Value
		}
	}
	if viewer.Locale == "" {
		viewer.Locale = ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	}
	return viewer
}

// ViewerMiddleware attaches the viewer to the request context, issuing a new
// session cookie when the request has no session.
func ViewerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer := ViewerFromRequest(r)
		if viewer.SessionID == "" {
			viewer.SessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    viewer.SessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(dashboard.ContextWithViewer(r.Context(), viewer)))
	})
}

// ParseAcceptLanguage returns the supported locale preferred by an
// Accept-Language header, or "" when none applies.
func ParseAcceptLanguage(header string) string {
	return dashboard.MatchAcceptLanguage(header)
}
