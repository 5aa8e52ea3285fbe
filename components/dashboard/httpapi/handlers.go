package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/commands"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/queries"
)

// Handlers exposes HTTP endpoints backed by shared commands. Viewers are read
// from the request context, see ViewerMiddleware.
type Handlers struct {
	API Executor
	// CounterInterval is the frame spacing of counter streams.
	CounterInterval time.Duration
}

type filterPayload struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type reorderPayload struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

type themePayload struct {
	Theme string `json:"theme"`
}

func (h *Handlers) HandleSetFilter(w http.ResponseWriter, r *http.Request, page string) {
	var payload filterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	input := commands.SetFilterInput{
		Viewer: dashboard.ViewerFromContext(r.Context()),
		Page:   dashboard.PageID(page),
		Name:   payload.Name,
		Value:  payload.Value,
	}
	if err := h.API.SetFilter(r.Context(), input); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "applied"})
}

func (h *Handlers) HandleReorderWidgets(w http.ResponseWriter, r *http.Request, page string) {
	var payload reorderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	input := commands.ReorderWidgetsInput{
		Viewer:   dashboard.ViewerFromContext(r.Context()),
		Page:     dashboard.PageID(page),
		SourceID: payload.SourceID,
		TargetID: payload.TargetID,
	}
	if err := h.API.Reorder(r.Context(), input); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "reordered"})
}

func (h *Handlers) HandleRefresh(w http.ResponseWriter, r *http.Request, page string) {
	input := commands.RefreshPageInput{
		Viewer: dashboard.ViewerFromContext(r.Context()),
		Page:   dashboard.PageID(page),
	}
	if err := h.API.Refresh(r.Context(), input); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (h *Handlers) HandleDismissNotification(w http.ResponseWriter, r *http.Request) {
	input := commands.DismissNotificationInput{Viewer: dashboard.ViewerFromContext(r.Context())}
	if err := h.API.Dismiss(r.Context(), input); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleTheme reads the theme on GET and stores it on POST.
func (h *Handlers) HandleTheme(w http.ResponseWriter, r *http.Request) {
	viewer := dashboard.ViewerFromContext(r.Context())
	if r.Method == http.MethodPost {
		var payload themePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if err := h.API.SetTheme(r.Context(), commands.SetThemeInput{Viewer: viewer, Theme: payload.Theme}); err != nil {
			WriteError(w, err)
			return
		}
	}
	selection, err := h.API.Theme(r.Context(), viewer)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, selection)
}

// HandleExport streams a dataset as a CSV attachment.
func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request, dataset string) {
	file, err := h.API.Export(r.Context(), queries.ExportInput{Dataset: dataset})
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteExport(w, file)
}

// WriteExport writes file as a download.
func WriteExport(w http.ResponseWriter, file dashboard.ExportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", ContentDisposition(file.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}

// ContentDisposition builds an attachment header for filename.
func ContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", strings.ReplaceAll(filename, "\"", ""))
}

// NewMux mounts the handlers, the SSE stream and the WebSocket stream under
// base using net/http routing. The viewer middleware wraps every route.
func NewMux(base string, h *Handlers, broadcast *dashboard.BroadcastHook) http.Handler {
	base = strings.TrimRight(base, "/")
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+base+"/{page}/filters", func(w http.ResponseWriter, r *http.Request) {
		h.HandleSetFilter(w, r, r.PathValue("page"))
	})
	mux.HandleFunc("POST "+base+"/{page}/reorder", func(w http.ResponseWriter, r *http.Request) {
		h.HandleReorderWidgets(w, r, r.PathValue("page"))
	})
	mux.HandleFunc("POST "+base+"/{page}/refresh", func(w http.ResponseWriter, r *http.Request) {
		h.HandleRefresh(w, r, r.PathValue("page"))
	})
	mux.HandleFunc("GET "+base+"/exports/{dataset}", func(w http.ResponseWriter, r *http.Request) {
		h.HandleExport(w, r, r.PathValue("dataset"))
	})
	mux.HandleFunc("GET "+base+"/{page}/counters/{widget}", func(w http.ResponseWriter, r *http.Request) {
		h.HandleCounter(w, r, r.PathValue("page"), r.PathValue("widget"))
	})
	mux.HandleFunc("GET "+base+"/theme", h.HandleTheme)
	mux.HandleFunc("POST "+base+"/theme", h.HandleTheme)
	mux.HandleFunc("DELETE "+base+"/notification", h.HandleDismissNotification)
	if broadcast != nil {
		mux.HandleFunc("GET "+base+"/events", broadcast.ServeSSE)
		mux.HandleFunc("GET "+base+"/ws", broadcast.ServeWebSocket)
	}
	return ViewerMiddleware(mux)
}
