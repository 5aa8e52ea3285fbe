package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	dashboard "github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// SetFilterInput selects one filter option for a viewer's page.
type SetFilterInput struct {
	Viewer dashboard.ViewerContext `json:"-"`
	Page   dashboard.PageID        `json:"page"`
	Name   string                  `json:"name"`
	Value  string                  `json:"value"`
}

type filterService interface {
	SetFilter(ctx context.Context, viewer dashboard.ViewerContext, page dashboard.PageID, name, value string) (dashboard.FilterSelection, error)
}

// SetFilterCommand wraps Service.SetFilter.
type SetFilterCommand struct {
	service   filterService
	telemetry Telemetry
}

// NewSetFilterCommand builds the command.
func NewSetFilterCommand(service filterService, telemetry Telemetry) *SetFilterCommand {
	return &SetFilterCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetFilterInput] = (*SetFilterCommand)(nil)

// Execute stores the selection.
func (c *SetFilterCommand) Execute(ctx context.Context, msg SetFilterInput) error {
	if c.service == nil {
		return errors.New("set filter command requires service")
	}
	if _, err := c.service.SetFilter(ctx, msg.Viewer, msg.Page, msg.Name, msg.Value); err != nil {
		return failed(ctx, c.telemetry, "filter", err)
	}
	c.telemetry.Record(ctx, "dashboard.command.filter", map[string]any{
		"page": msg.Page,
		"name": msg.Name,
	})
	return nil
}
