package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	dashboard "github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// ExportInput names the dataset to export.
type ExportInput struct {
	Dataset string
}

type exportService interface {
	Export(ctx context.Context, dataset string) (dashboard.ExportFile, error)
}

// ExportQuery serializes a dataset to CSV.
type ExportQuery struct {
	service exportService
}

// NewExportQuery builds the query.
func NewExportQuery(service exportService) *ExportQuery {
	return &ExportQuery{service: service}
}

var _ gocommand.Querier[ExportInput, dashboard.ExportFile] = (*ExportQuery)(nil)

// Query exports the dataset.
func (q *ExportQuery) Query(ctx context.Context, input ExportInput) (dashboard.ExportFile, error) {
	return q.service.Export(ctx, input.Dataset)
}
