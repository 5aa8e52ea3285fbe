package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

func TestInitWritesBuiltInPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages", "salesroom.yaml")
	var out bytes.Buffer
	require.NoError(t, (&initCmd{ManifestPath: path, Name: "salesroom"}).Run(context.Background(), &out))
	assert.Contains(t, out.String(), "Wrote 4 pages")

	doc, err := dashboard.ReadManifest(path)
	require.NoError(t, err)
	page, ok := doc.Page(dashboard.PageMarketing)
	require.True(t, ok)
	assert.Equal(t, "stats", page.Order[0])

	if err := (&initCmd{ManifestPath: path}).Run(context.Background(), &out); err == nil {
		t.Fatalf("expected init to refuse overwriting without --overwrite")
	}
	require.NoError(t, (&initCmd{ManifestPath: path, Overwrite: true}).Run(context.Background(), &out))
}

func TestMoveUpdatesManifestOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesroom.yaml")
	var out bytes.Buffer
	require.NoError(t, (&initCmd{ManifestPath: path}).Run(context.Background(), &out))

	cmd := &moveCmd{ManifestPath: path, Page: "customers", Source: "feedback", Target: "acquisition"}
	require.NoError(t, cmd.Run(context.Background(), &out))

	doc, err := dashboard.ReadManifest(path)
	require.NoError(t, err)
	page, _ := doc.Page(dashboard.PageCustomers)
	assert.Equal(t, []string{"stats", "feedback", "acquisition", "retention", "engagement", "segments", "topCustomers"}, page.Order)
}

func TestMoveRejectsUnknownWidget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\npages: []\n"), 0o644))

	err := (&moveCmd{ManifestPath: path, Page: "products", Source: "sales", Target: "nope"}).Run(context.Background(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no widget "nope"`)

	err = (&moveCmd{ManifestPath: path, Page: "sales", Source: "a", Target: "b"}).Run(context.Background(), &bytes.Buffer{})
	assert.ErrorIs(t, err, dashboard.ErrUnknownPage)
}

func TestMoveWidgetStartsFromDefaultOrder(t *testing.T) {
	doc := &dashboard.PageManifestDocument{Version: dashboard.ManifestVersion}
	order, err := moveWidget(doc, dashboard.PageProducts, "performance", "stats")
	require.NoError(t, err)
	assert.Equal(t, "performance", order[0])
	page, ok := doc.Page(dashboard.PageProducts)
	require.True(t, ok)
	assert.Equal(t, []string(order), page.Order)
}
