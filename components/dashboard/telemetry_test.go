package dashboard

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapTelemetryLogsEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	telemetry := NewZapTelemetry(zap.New(core))

	telemetry.Record(context.Background(), "dashboard.filter.set", map[string]any{"page": PageOverview, "name": "region"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "dashboard.filter.set", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "region", fields["name"])
}

func TestPrometheusTelemetryCountsByPage(t *testing.T) {
	reg := prometheus.NewRegistry()
	telemetry, err := NewPrometheusTelemetry(reg)
	require.NoError(t, err)

	telemetry.Record(context.Background(), "dashboard.page.view", map[string]any{"page": PageCustomers})
	telemetry.Record(context.Background(), "dashboard.page.view", map[string]any{"page": PageCustomers})
	telemetry.Record(context.Background(), "dashboard.export", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(telemetry.Counter().WithLabelValues("dashboard.page.view", "customers")))
	assert.Equal(t, 1.0, testutil.ToFloat64(telemetry.Counter().WithLabelValues("dashboard.export", "")))

	_, err = NewPrometheusTelemetry(reg)
	assert.Error(t, err, "duplicate registration must fail")
}

type recordingTelemetry struct {
	events []string
}

func (r *recordingTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	r.events = append(r.events, event)
}

func TestMultiTelemetryFansOut(t *testing.T) {
	a, b := &recordingTelemetry{}, &recordingTelemetry{}
	MultiTelemetry{a, nil, b}.Record(context.Background(), "x", nil)
	assert.Equal(t, []string{"x"}, a.events)
	assert.Equal(t, []string{"x"}, b.events)
	normalizeTelemetry(nil).Record(context.Background(), "ignored", nil)
}
