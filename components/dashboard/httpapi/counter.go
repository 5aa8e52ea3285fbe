package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/queries"
)

var counterUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// counterSummary is returned to clients that do not upgrade.
type counterSummary struct {
	Target     float64 `json:"target"`
	Final      string  `json:"final"`
	Prefix     string  `json:"prefix,omitempty"`
	Suffix     string  `json:"suffix,omitempty"`
	DurationMS int64   `json:"duration_ms"`
}

// HandleCounter streams count-up frames for one stat over a WebSocket. Plain
// GET requests receive the counter summary as JSON. The stat inside a stat
// group is picked with ?stat=.
func (h *Handlers) HandleCounter(w http.ResponseWriter, r *http.Request, page, widget string) {
	input := queries.CounterInput{
		Viewer:   dashboard.ViewerFromContext(r.Context()),
		Page:     dashboard.PageID(page),
		WidgetID: widget,
		StatID:   r.URL.Query().Get("stat"),
	}
	counter, err := h.API.Counter(r.Context(), input)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !websocket.IsWebSocketUpgrade(r) {
		WriteJSON(w, http.StatusOK, counterSummary{
			Target:     counter.Target,
			Final:      counter.Final(),
			Prefix:     counter.Prefix,
			Suffix:     counter.Suffix,
			DurationMS: counter.Duration.Milliseconds(),
		})
		return
	}
	conn, err := counterUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	interval := h.CounterInterval
	if interval <= 0 {
		interval = dashboard.DefaultCounterInterval
	}
	err = counter.Run(r.Context(), interval, func(frame dashboard.CounterFrame) error {
		return conn.WriteJSON(frame)
	})
	if err == nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
			time.Now().Add(time.Second))
	}
}
