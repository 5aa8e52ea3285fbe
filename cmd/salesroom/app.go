package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// application groups the long-lived dashboard components of one process.
type application struct {
	service   *dashboard.Service
	broadcast *dashboard.BroadcastHook
	job       *dashboard.RefreshJob
	closers   []func() error
}

func newApplication(ctx context.Context, cfg Config, telemetry dashboard.Telemetry, logger *zap.Logger) (*application, error) {
	theme, err := dashboard.ParseTheme(cfg.DefaultTheme)
	if err != nil {
		return nil, err
	}

	registry := dashboard.NewRegistry()
	if err := dashboard.LoadManifests(registry, cfg.Manifests...); err != nil {
		return nil, err
	}

	store, closeStore, err := dashboard.OpenThemeStore(ctx, cfg.ThemeDB)
	if err != nil {
		return nil, fmt.Errorf("salesroom: open theme store: %w", err)
	}

	charts := dashboard.NewChartRenderer(
		dashboard.WithChartCache(dashboard.NewChartCache(cfg.ChartCacheTTL)),
		dashboard.WithChartAssetsHost(dashboard.EChartsAssetsHost(cfg.EChartsHost)),
	)

	broadcast := dashboard.NewBroadcastHook()
	hooks := dashboard.MultiHook{broadcast}
	if cfg.NotifyWebhook != "" {
		hooks = append(hooks, &dashboard.NotificationsHook{
			Client:  dashboard.NewWebhookClient(cfg.NotifyWebhook, 0),
			Channel: cfg.NotifyChannel,
		})
	}
	service := dashboard.NewService(dashboard.Options{
		Pages:             registry,
		ThemeStore:        store,
		DefaultTheme:      theme,
		Charts:            charts,
		RefreshHook:       hooks,
		Telemetry:         telemetry,
		NotificationDelay: cfg.NotificationDelay,
		ReloadDelay:       cfg.ReloadDelay,
		CounterDuration:   cfg.CounterDuration,
	})

	logger.Info("dashboard ready",
		zap.Int("pages", len(service.Pages())),
		zap.Strings("manifests", cfg.Manifests),
		zap.String("theme_db", cfg.ThemeDB),
		zap.Bool("notify_webhook", cfg.NotifyWebhook != ""),
	)

	return &application{
		service:   service,
		broadcast: broadcast,
		job:       dashboard.NewRefreshJob(service, cfg.RefreshInterval, telemetry),
		closers:   []func() error{service.Close, closeStore},
	}, nil
}

func (a *application) Close() error {
	a.job.Stop()
	var errs []error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
