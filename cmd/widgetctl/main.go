package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
)

type cli struct {
	Init initCmd `cmd:"" help:"Write a page manifest holding the built-in pages."`
	Move moveCmd `cmd:"" help:"Move a widget onto another widget's slot in a page manifest."`
	Show showCmd `cmd:"" help:"Print the widget order of every page in a manifest."`
}

type initCmd struct {
	ManifestPath string `arg:"" type:"path" help:"Path of the manifest YAML to create."`
	Name         string `default:"salesroom" help:"Manifest name."`
	Overwrite    bool   `help:"Replace an existing manifest."`
}

type moveCmd struct {
	ManifestPath string `arg:"" type:"path" help:"Path to the page manifest YAML."`
	Page         string `required:"" help:"Page id (overview, customers, products, marketing)."`
	Source       string `required:"" help:"Widget id to move."`
	Target       string `required:"" help:"Widget id whose slot receives the moved widget."`
}

type showCmd struct {
	ManifestPath string `arg:"" type:"path" help:"Path to the page manifest YAML."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Page manifest utility for the SalesRoom dashboard."),
		kong.UsageOnError(),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func (cmd *initCmd) Run(_ context.Context, out io.Writer) error {
	path, err := filepath.Abs(cmd.ManifestPath)
	if err != nil {
		return fmt.Errorf("widgetctl: resolve manifest path: %w", err)
	}
	if _, err := os.Stat(path); err == nil && !cmd.Overwrite {
		return fmt.Errorf("widgetctl: manifest %s already exists (use --overwrite to replace)", path)
	}
	doc := dashboard.ManifestFromPages(cmd.Name, dashboard.NewRegistry().Pages())
	if err := writeManifest(path, doc); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Wrote %d pages to %s\n", len(doc.Pages), path)
	return nil
}

func (cmd *moveCmd) Run(_ context.Context, out io.Writer) error {
	path, err := filepath.Abs(cmd.ManifestPath)
	if err != nil {
		return fmt.Errorf("widgetctl: resolve manifest path: %w", err)
	}
	doc, err := dashboard.ReadManifest(path)
	if err != nil {
		return err
	}
	page := dashboard.PageID(strcase.ToKebab(strings.TrimSpace(cmd.Page)))
	order, err := moveWidget(doc, page, cmd.Source, cmd.Target)
	if err != nil {
		return err
	}
	if err := dashboard.ApplyManifest(dashboard.NewRegistry(), doc); err != nil {
		return err
	}
	if err := writeManifest(path, doc); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ %s: %s\n", page, strings.Join(order, ", "))
	return nil
}

func (cmd *showCmd) Run(_ context.Context, out io.Writer) error {
	doc, err := dashboard.ReadManifest(cmd.ManifestPath)
	if err != nil {
		return err
	}
	for _, page := range doc.Pages {
		fmt.Fprintf(out, "%s\t%s\n", page.ID, strings.Join(page.Order, ", "))
	}
	return nil
}

// moveWidget reorders the page entry in place. Pages without an explicit
// order start from the built-in default order.
func moveWidget(doc *dashboard.PageManifestDocument, page dashboard.PageID, source, target string) (dashboard.WidgetOrder, error) {
	entry, ok := doc.Page(page)
	if !ok {
		def, known := dashboard.NewRegistry().Page(page)
		if !known {
			return nil, fmt.Errorf("%w: %s", dashboard.ErrUnknownPage, page)
		}
		doc.Pages = append(doc.Pages, dashboard.ManifestPage{ID: page, Order: append([]string(nil), def.DefaultOrder...)})
		entry, _ = doc.Page(page)
	}
	order := dashboard.NewWidgetOrder(entry.Order)
	if len(order) == 0 {
		def, known := dashboard.NewRegistry().Page(page)
		if !known {
			return nil, fmt.Errorf("%w: %s", dashboard.ErrUnknownPage, page)
		}
		order = dashboard.NewWidgetOrder(def.DefaultOrder)
	}
	for _, id := range []string{source, target} {
		if !order.Contains(id) {
			return nil, fmt.Errorf("widgetctl: page %s has no widget %q", page, id)
		}
	}
	order = order.Reorder(source, target)
	entry.Order = order
	return order, nil
}

func writeManifest(path string, doc *dashboard.PageManifestDocument) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("widgetctl: mkdir %s: %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("widgetctl: create manifest %s: %w", path, err)
	}
	defer file.Close()
	if err := dashboard.EncodeManifest(file, doc); err != nil {
		return fmt.Errorf("widgetctl: write manifest: %w", err)
	}
	return nil
}
