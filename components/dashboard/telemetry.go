package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Telemetry records dashboard events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// ZapTelemetry writes each event as a structured log line.
type ZapTelemetry struct {
	logger *zap.Logger
}

// NewZapTelemetry wraps logger. A nil logger discards events.
func NewZapTelemetry(logger *zap.Logger) *ZapTelemetry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapTelemetry{logger: logger}
}

// Record implements Telemetry.
func (z *ZapTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, payload[k]))
	}
	z.logger.Info(event, fields...)
}

// PrometheusTelemetry counts events by name and page.
type PrometheusTelemetry struct {
	events *prometheus.CounterVec
}

// NewPrometheusTelemetry registers the event counter with reg.
func NewPrometheusTelemetry(reg prometheus.Registerer) (*PrometheusTelemetry, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salesroom",
		Subsystem: "dashboard",
		Name:      "events_total",
		Help:      "Dashboard events by name and page.",
	}, []string{"event", "page"})
	if reg != nil {
		if err := reg.Register(events); err != nil {
			return nil, err
		}
	}
	return &PrometheusTelemetry{events: events}, nil
}

// Record implements Telemetry.
func (p *PrometheusTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	page := ""
	if v, ok := payload["page"]; ok {
		page = fmt.Sprint(v)
	}
	p.events.WithLabelValues(event, page).Inc()
}

// Counter exposes the underlying counter vector.
func (p *PrometheusTelemetry) Counter() *prometheus.CounterVec {
	return p.events
}

// MultiTelemetry forwards events to several sinks.
type MultiTelemetry []Telemetry

// Record implements Telemetry.
func (m MultiTelemetry) Record(ctx context.Context, event string, payload map[string]any) {
	for _, t := range m {
		if t != nil {
			t.Record(ctx, event, payload)
		}
	}
}
