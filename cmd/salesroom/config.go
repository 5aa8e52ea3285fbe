package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

// Config holds every setting the server reads. Values come from defaults,
// then the YAML file, then flags and environment variables.
type Config struct {
	Addr              string        `yaml:"addr"`
	OpsAddr           string        `yaml:"ops_addr"`
	BasePath          string        `yaml:"base_path"`
	ThemeDB           string        `yaml:"theme_db"`
	DefaultTheme      string        `yaml:"default_theme"`
	Manifests         []string      `yaml:"manifests"`
	ChartCacheTTL     time.Duration `yaml:"chart_cache_ttl"`
	RefreshInterval   time.Duration `yaml:"refresh_interval"`
	NotificationDelay time.Duration `yaml:"notification_delay"`
	ReloadDelay       time.Duration `yaml:"reload_delay"`
	CounterDuration   time.Duration `yaml:"counter_duration"`
	EChartsHost       string        `yaml:"echarts_host"`
	NotifyWebhook     string        `yaml:"notify_webhook"`
	NotifyChannel     string        `yaml:"notify_channel"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Addr:              ":8080",
		OpsAddr:           ":9090",
		BasePath:          "/dashboard",
		DefaultTheme:      string(dashboard.DefaultTheme),
		ChartCacheTTL:     dashboard.DefaultChartCacheTTL,
		RefreshInterval:   5 * time.Minute,
		NotificationDelay: dashboard.DefaultNotificationDelay,
		ReloadDelay:       dashboard.DefaultReloadDelay,
		CounterDuration:   dashboard.DefaultCounterDuration,
	}
}

// LoadConfig reads path over the defaults. A missing path is not an error
// when the caller did not ask for a specific file.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("salesroom: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("salesroom: parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if _, err := dashboard.ParseTheme(c.DefaultTheme); err != nil {
		errs = append(errs, err)
	}
	if c.RefreshInterval < 0 {
		errs = append(errs, errors.New("refresh_interval cannot be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("salesroom: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Overrides carries flag/env values; zero values leave the config untouched.
type Overrides struct {
	Addr            string        `help:"HTTP listen address." env:"SALESROOM_ADDR"`
	OpsAddr         string        `name:"ops-addr" help:"Listen address for /metrics and the net/http API." env:"SALESROOM_OPS_ADDR"`
	BasePath        string        `name:"base-path" help:"Mount path for dashboard routes." env:"SALESROOM_BASE_PATH"`
	ThemeDB         string        `name:"theme-db" type:"path" help:"SQLite file storing theme preferences (memory when empty)." env:"SALESROOM_THEME_DB"`
	Theme           string        `name:"theme" help:"Default theme (light, dark, system)." env:"SALESROOM_THEME"`
	Manifest        []string      `name:"manifest" type:"path" help:"Page manifest files (repeatable)." env:"SALESROOM_MANIFESTS"`
	RefreshInterval time.Duration `name:"refresh-interval" help:"Background refresh interval." env:"SALESROOM_REFRESH_INTERVAL"`
	EChartsHost     string        `name:"echarts-host" help:"Host serving the ECharts bundle." env:"SALESROOM_ECHARTS_CDN"`
	NotifyWebhook   string        `name:"notify-webhook" help:"URL receiving toast notifications as JSON." env:"SALESROOM_NOTIFY_WEBHOOK"`
}

// Apply copies non-zero overrides onto cfg.
func (o Overrides) Apply(cfg Config) Config {
	if o.Addr != "" {
		cfg.Addr = o.Addr
	}
	if o.OpsAddr != "" {
		cfg.OpsAddr = o.OpsAddr
	}
	if o.BasePath != "" {
		cfg.BasePath = o.BasePath
	}
	if o.ThemeDB != "" {
		cfg.ThemeDB = o.ThemeDB
	}
	if o.Theme != "" {
		cfg.DefaultTheme = o.Theme
	}
	if len(o.Manifest) > 0 {
		cfg.Manifests = append([]string(nil), o.Manifest...)
	}
	if o.RefreshInterval != 0 {
		cfg.RefreshInterval = o.RefreshInterval
	}
	if o.EChartsHost != "" {
		cfg.EChartsHost = o.EChartsHost
	}
	if o.NotifyWebhook != "" {
		cfg.NotifyWebhook = o.NotifyWebhook
	}
	return cfg
}
