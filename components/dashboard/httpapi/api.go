package httpapi

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/commands"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/queries"
)

// Executor is the write/read surface transports call into.
type Executor interface {
	SetFilter(ctx context.Context, input commands.SetFilterInput) error
	Reorder(ctx context.Context, input commands.ReorderWidgetsInput) error
	Refresh(ctx context.Context, input commands.RefreshPageInput) error
	SetTheme(ctx context.Context, input commands.SetThemeInput) error
	Dismiss(ctx context.Context, input commands.DismissNotificationInput) error
	Theme(ctx context.Context, viewer dashboard.ViewerContext) (dashboard.ThemeSelection, error)
	Export(ctx context.Context, input queries.ExportInput) (dashboard.ExportFile, error)
	Counter(ctx context.Context, input queries.CounterInput) (dashboard.Counter, error)
}

// CommandExecutor adapts go-command commanders and queriers to Executor.
type CommandExecutor struct {
	SetFilterCmd gocommand.Commander[commands.SetFilterInput]
	ReorderCmd   gocommand.Commander[commands.ReorderWidgetsInput]
	RefreshCmd   gocommand.Commander[commands.RefreshPageInput]
	ThemeCmd     gocommand.Commander[commands.SetThemeInput]
	DismissCmd   gocommand.Commander[commands.DismissNotificationInput]
	ThemeQuery   gocommand.Querier[dashboard.ViewerContext, dashboard.ThemeSelection]
	ExportQuery  gocommand.Querier[queries.ExportInput, dashboard.ExportFile]
	CounterQuery gocommand.Querier[queries.CounterInput, dashboard.Counter]
}

// NewCommandExecutor wires every command and query to service.
func NewCommandExecutor(service *dashboard.Service, telemetry commands.Telemetry) *CommandExecutor {
	return &CommandExecutor{
		SetFilterCmd: commands.NewSetFilterCommand(service, telemetry),
		ReorderCmd:   commands.NewReorderWidgetsCommand(service, telemetry),
		RefreshCmd:   commands.NewRefreshPageCommand(service, telemetry),
		ThemeCmd:     commands.NewSetThemeCommand(service, telemetry),
		DismissCmd:   commands.NewDismissNotificationCommand(service, telemetry),
		ThemeQuery:   queries.NewThemeQuery(service),
		ExportQuery:  queries.NewExportQuery(service),
		CounterQuery: queries.NewCounterQuery(service),
	}
}

var _ Executor = (*CommandExecutor)(nil)

var errNotConfigured = errors.New("httpapi: handler not configured")

func (e *CommandExecutor) SetFilter(ctx context.Context, input commands.SetFilterInput) error {
	if e.SetFilterCmd == nil {
		return errNotConfigured
	}
	return e.SetFilterCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Reorder(ctx context.Context, input commands.ReorderWidgetsInput) error {
	if e.ReorderCmd == nil {
		return errNotConfigured
	}
	return e.ReorderCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Refresh(ctx context.Context, input commands.RefreshPageInput) error {
	if e.RefreshCmd == nil {
		return errNotConfigured
	}
	return e.RefreshCmd.Execute(ctx, input)
}

func (e *CommandExecutor) SetTheme(ctx context.Context, input commands.SetThemeInput) error {
	if e.ThemeCmd == nil {
		return errNotConfigured
	}
	return e.ThemeCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Dismiss(ctx context.Context, input commands.DismissNotificationInput) error {
	if e.DismissCmd == nil {
		return errNotConfigured
	}
	return e.DismissCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Theme(ctx context.Context, viewer dashboard.ViewerContext) (dashboard.ThemeSelection, error) {
	if e.ThemeQuery == nil {
		return dashboard.ThemeSelection{}, errNotConfigured
	}
	return e.ThemeQuery.Query(ctx, viewer)
}

func (e *CommandExecutor) Export(ctx context.Context, input queries.ExportInput) (dashboard.ExportFile, error) {
	if e.ExportQuery == nil {
		return dashboard.ExportFile{}, errNotConfigured
	}
	return e.ExportQuery.Query(ctx, input)
}

func (e *CommandExecutor) Counter(ctx context.Context, input queries.CounterInput) (dashboard.Counter, error) {
	if e.CounterQuery == nil {
		return dashboard.Counter{}, errNotConfigured
	}
	return e.CounterQuery.Query(ctx, input)
}
