package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	dashboard "github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// RefreshPageInput schedules a delayed reload of a viewer's page.
type RefreshPageInput struct {
	Viewer dashboard.ViewerContext `json:"-"`
	Page   dashboard.PageID        `json:"page"`
}

type refreshService interface {
	Refresh(ctx context.Context, viewer dashboard.ViewerContext, page dashboard.PageID) error
}

// RefreshPageCommand wraps Service.Refresh.
type RefreshPageCommand struct {
	service   refreshService
	telemetry Telemetry
}

// NewRefreshPageCommand creates the command.
func NewRefreshPageCommand(service refreshService, telemetry Telemetry) *RefreshPageCommand {
	return &RefreshPageCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RefreshPageInput] = (*RefreshPageCommand)(nil)

// Execute schedules the reload.
func (c *RefreshPageCommand) Execute(ctx context.Context, msg RefreshPageInput) error {
	if c.service == nil {
		return errors.New("refresh command requires service")
	}
	if err := c.service.Refresh(ctx, msg.Viewer, msg.Page); err != nil {
		return failed(ctx, c.telemetry, "refresh", err)
	}
	c.telemetry.Record(ctx, "dashboard.command.refresh", map[string]any{"page": msg.Page})
	return nil
}

// BroadcastEventInput forwards an event to the refresh hooks as is.
type BroadcastEventInput struct {
	Event dashboard.DashboardEvent
}

type eventNotifier interface {
	NotifyDashboardUpdated(ctx context.Context, event dashboard.DashboardEvent) error
}

// BroadcastEventCommand triggers refresh hooks without touching viewer state.
type BroadcastEventCommand struct {
	service   eventNotifier
	telemetry Telemetry
}

// NewBroadcastEventCommand creates the command.
func NewBroadcastEventCommand(service eventNotifier, telemetry Telemetry) *BroadcastEventCommand {
	return &BroadcastEventCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[BroadcastEventInput] = (*BroadcastEventCommand)(nil)

// Execute notifies the dashboard service's refresh hooks.
func (c *BroadcastEventCommand) Execute(ctx context.Context, msg BroadcastEventInput) error {
	if c.service == nil {
		return errors.New("broadcast command requires service")
	}
	if msg.Event.Reason == "" {
		return errors.New("broadcast command requires an event reason")
	}
	if err := c.service.NotifyDashboardUpdated(ctx, msg.Event); err != nil {
		return failed(ctx, c.telemetry, "broadcast", err)
	}
	c.telemetry.Record(ctx, "dashboard.command.broadcast", map[string]any{
		"page":   msg.Event.Page,
		"reason": msg.Event.Reason,
	})
	return nil
}
