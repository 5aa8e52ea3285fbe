package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	dashboard "github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// ReorderWidgetsInput contains the reorder payload.
type ReorderWidgetsInput struct {
	Viewer   dashboard.ViewerContext `json:"-"`
	Page     dashboard.PageID        `json:"page"`
	SourceID string                  `json:"source_id"`
	TargetID string                  `json:"target_id"`
}

type reorderService interface {
	ReorderWidgets(ctx context.Context, viewer dashboard.ViewerContext, page dashboard.PageID, source, target string) (dashboard.WidgetOrder, error)
}

// ReorderWidgetsCommand wraps Service.ReorderWidgets.
type ReorderWidgetsCommand struct {
	service   reorderService
	telemetry Telemetry
}

// NewReorderWidgetsCommand builds the command.
func NewReorderWidgetsCommand(service reorderService, telemetry Telemetry) *ReorderWidgetsCommand {
	return &ReorderWidgetsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ReorderWidgetsInput] = (*ReorderWidgetsCommand)(nil)

// Execute applies the new ordering.
func (c *ReorderWidgetsCommand) Execute(ctx context.Context, msg ReorderWidgetsInput) error {
	if c.service == nil {
		return errors.New("reorder command requires service")
	}
	if _, err := c.service.ReorderWidgets(ctx, msg.Viewer, msg.Page, msg.SourceID, msg.TargetID); err != nil {
		return failed(ctx, c.telemetry, "reorder", err)
	}
	c.telemetry.Record(ctx, "dashboard.command.reorder", map[string]any{
		"page":      msg.Page,
		"source_id": msg.SourceID,
		"target_id": msg.TargetID,
	})
	return nil
}
