// Package dashboard is the public entry point for embedding the SalesRoom
// dashboard in another program.
package dashboard

import (
	core "github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// Service exposes the underlying components/dashboard.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

type (
	PageID         = core.PageID
	PageView       = core.PageView
	ViewerContext  = core.ViewerContext
	Theme          = core.Theme
	ThemeSelection = core.ThemeSelection
	DatasetID      = core.DatasetID
	ExportFile     = core.ExportFile
	Registry       = core.Registry
	Controller     = core.Controller
)

const (
	PageOverview  = core.PageOverview
	PageCustomers = core.PageCustomers
	PageProducts  = core.PageProducts
	PageMarketing = core.PageMarketing
)

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// NewRegistry returns a registry holding the built-in pages.
func NewRegistry() *Registry {
	return core.NewRegistry()
}

// NewController builds an HTML controller using the embedded templates.
func NewController(service *Service) (*Controller, error) {
	renderer, err := core.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	return core.NewController(core.ControllerOptions{Service: service, Renderer: renderer}), nil
}

// ResolveDataset maps a dataset id or alias to its canonical id.
func ResolveDataset(name string) (DatasetID, error) {
	return core.ResolveDataset(name)
}
