package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	dashboard "github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// SetThemeInput stores a viewer's theme preference.
type SetThemeInput struct {
	Viewer dashboard.ViewerContext `json:"-"`
	Theme  string                  `json:"theme"`
}

type themeService interface {
	SetTheme(ctx context.Context, viewer dashboard.ViewerContext, value string) (dashboard.ThemeSelection, error)
}

// SetThemeCommand wraps Service.SetTheme.
type SetThemeCommand struct {
	service   themeService
	telemetry Telemetry
}

// NewSetThemeCommand builds the command.
func NewSetThemeCommand(service themeService, telemetry Telemetry) *SetThemeCommand {
	return &SetThemeCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetThemeInput] = (*SetThemeCommand)(nil)

// Execute persists the preference.
func (c *SetThemeCommand) Execute(ctx context.Context, msg SetThemeInput) error {
	if c.service == nil {
		return errors.New("set theme command requires service")
	}
	selection, err := c.service.SetTheme(ctx, msg.Viewer, msg.Theme)
	if err != nil {
		return failed(ctx, c.telemetry, "theme", err)
	}
	c.telemetry.Record(ctx, "dashboard.command.theme", map[string]any{"theme": string(selection.Name)})
	return nil
}

// DismissNotificationInput hides the viewer's notification.
type DismissNotificationInput struct {
	Viewer dashboard.ViewerContext `json:"-"`
}

type notificationService interface {
	DismissNotification(ctx context.Context, viewer dashboard.ViewerContext) error
}

// DismissNotificationCommand wraps Service.DismissNotification.
type DismissNotificationCommand struct {
	service   notificationService
	telemetry Telemetry
}

// NewDismissNotificationCommand builds the command.
func NewDismissNotificationCommand(service notificationService, telemetry Telemetry) *DismissNotificationCommand {
	return &DismissNotificationCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DismissNotificationInput] = (*DismissNotificationCommand)(nil)

// Execute dismisses the notification.
func (c *DismissNotificationCommand) Execute(ctx context.Context, msg DismissNotificationInput) error {
	if c.service == nil {
		return errors.New("dismiss command requires service")
	}
	if err := c.service.DismissNotification(ctx, msg.Viewer); err != nil {
		return failed(ctx, c.telemetry, "dismiss", err)
	}
	c.telemetry.Record(ctx, "dashboard.command.dismiss", nil)
	return nil
}
