package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// StatusFor maps dashboard sentinel errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, dashboard.ErrUnknownPage),
		errors.Is(err, dashboard.ErrUnknownDataset),
		errors.Is(err, dashboard.ErrUnknownWidget):
		return http.StatusNotFound
	case errors.Is(err, dashboard.ErrInvalidTheme),
		errors.Is(err, dashboard.ErrInvalidFilter),
		errors.Is(err, dashboard.ErrMissingViewer),
		errors.Is(err, dashboard.ErrInvalidManifest):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrServiceClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": ...} using StatusFor.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusFor(err), map[string]string{"error": err.Error()})
}
