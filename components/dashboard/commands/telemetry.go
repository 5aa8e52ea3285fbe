package commands

import (
	"context"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// Telemetry is the dashboard event sink; zap, prometheus or both.
type Telemetry = dashboard.Telemetry

// EventCommandFailed is recorded whenever a command returns an error.
const EventCommandFailed = "dashboard.command.failed"

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// failed records err against command and returns it unchanged.
func failed(ctx context.Context, t Telemetry, command string, err error) error {
	t.Record(ctx, EventCommandFailed, map[string]any{"command": command, "error": err.Error()})
	return err
}
