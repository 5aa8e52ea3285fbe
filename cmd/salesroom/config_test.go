package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

func TestLoadConfigMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesroom.yaml")
	content := "addr: \":9999\"\ndefault_theme: dark\nrefresh_interval: 30s\nmanifests:\n  - pages.yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "dark", cfg.DefaultTheme)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, []string{"pages.yaml"}, cfg.Manifests)
	assert.Equal(t, "/dashboard", cfg.BasePath)
	assert.Equal(t, dashboard.DefaultReloadDelay, cfg.ReloadDelay)
}

func TestLoadConfigMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	cfg, err := LoadConfig(missing, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	if _, err := LoadConfig(missing, true); err == nil {
		t.Fatalf("expected error for required config file")
	}
}

func TestLoadConfigRejectsInvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_theme: sepia\n"), 0o644))
	_, err := LoadConfig(path, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, dashboard.ErrInvalidTheme)
}

func TestOverridesApply(t *testing.T) {
	cfg := Overrides{Addr: ":1", Theme: "light", Manifest: []string{"a.yaml"}, NotifyWebhook: "http://hooks.local/toast"}.Apply(DefaultConfig())
	assert.Equal(t, "http://hooks.local/toast", cfg.NotifyWebhook)
	assert.Equal(t, ":1", cfg.Addr)
	assert.Equal(t, "light", cfg.DefaultTheme)
	assert.Equal(t, []string{"a.yaml"}, cfg.Manifests)
	assert.Equal(t, ":9090", cfg.OpsAddr)
}

func TestWriteExport(t *testing.T) {
	file := dashboard.ExportFile{Filename: "social-media-performance-2024-01-01.csv", Data: []byte("a,b\n"), Rows: 1}

	var stdout bytes.Buffer
	require.NoError(t, writeExport(file, "", &stdout))
	assert.Equal(t, "a,b\n", stdout.String())

	dir := t.TempDir()
	require.NoError(t, writeExport(file, dir, &stdout))
	data, err := os.ReadFile(filepath.Join(dir, file.Filename))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}
