package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	router "github.com/goliatone/go-router"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aditya-majhi/SalesDashboard/components/dashboard"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/gorouter"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/httpapi"
	"github.com/aditya-majhi/SalesDashboard/components/dashboard/queries"
)

type globals struct {
	Config  string `short:"c" type:"path" help:"YAML config file." env:"SALESROOM_CONFIG"`
	EnvFile string `name:"env-file" default:".env" help:"Dotenv file loaded before flags are read."`
	Debug   bool   `help:"Enable debug logging." env:"SALESROOM_DEBUG"`
}

type cli struct {
	globals

	Serve  serveCmd  `cmd:"" default:"1" help:"Serve the dashboard over HTTP."`
	Export exportCmd `cmd:"" help:"Write a dataset as CSV."`
}

type serveCmd struct {
	Overrides `embed:""`
}

type exportCmd struct {
	Dataset string `arg:"" help:"Dataset id or alias (e.g. top-customers, campaigns)."`
	Out     string `short:"o" help:"Output file or directory; stdout when empty or '-'."`
}

func main() {
	loadEnvFile(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var root cli
	kctx := kong.Parse(&root,
		kong.Name("salesroom"),
		kong.Description("SalesRoom sales dashboard server and exporter."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run(&root.globals)
	kctx.FatalIfErrorf(err)
}

// loadEnvFile reads the dotenv file before kong resolves env tags. Only an
// explicit --env-file that cannot be read is reported.
func loadEnvFile(args []string) {
	path, explicit := ".env", false
	for i, arg := range args {
		switch {
		case arg == "--env-file" && i+1 < len(args):
			path, explicit = args[i+1], true
		case len(arg) > len("--env-file=") && arg[:len("--env-file=")] == "--env-file=":
			path, explicit = arg[len("--env-file="):], true
		}
	}
	if err := godotenv.Load(path); err != nil && explicit {
		fmt.Fprintf(os.Stderr, "salesroom: load %s: %v\n", path, err)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("salesroom: init logger: %w", err)
	}
	return logger, nil
}

func (cmd *serveCmd) Run(ctx context.Context, g *globals) error {
	cfg, err := LoadConfig(g.Config, g.Config != "")
	if err != nil {
		return err
	}
	cfg = cmd.Overrides.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(g.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	metrics := prometheus.NewRegistry()
	metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promTelemetry, err := dashboard.NewPrometheusTelemetry(metrics)
	if err != nil {
		return err
	}
	telemetry := dashboard.MultiTelemetry{dashboard.NewZapTelemetry(logger), promTelemetry}

	app, err := newApplication(ctx, cfg, telemetry, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	renderer, err := dashboard.NewTemplateRenderer()
	if err != nil {
		return err
	}
	controller := dashboard.NewController(dashboard.ControllerOptions{Service: app.service, Renderer: renderer, BasePath: cfg.BasePath})
	executor := httpapi.NewCommandExecutor(app.service, telemetry)

	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:     server.Router(),
		Controller: controller,
		API:        executor,
		Broadcast:  app.broadcast,
		BasePath:   cfg.BasePath,
	}); err != nil {
		return err
	}
	metricsHandler := promhttp.HandlerFor(metrics, promhttp.HandlerOpts{Registry: metrics})
	server.WrappedRouter().Get("/metrics", adaptor.HTTPHandler(metricsHandler))

	var ops *http.Server
	if cfg.OpsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metricsHandler)
		mux.Handle(cfg.BasePath+"/", httpapi.NewMux(cfg.BasePath, &httpapi.Handlers{API: executor}, app.broadcast))
		ops = &http.Server{Addr: cfg.OpsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := ops.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("ops server", zap.Error(err))
			}
		}()
	}

	if err := app.job.Start(); err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving dashboard", zap.String("addr", cfg.Addr), zap.String("base_path", cfg.BasePath), zap.String("ops_addr", cfg.OpsAddr))
		errc <- server.Serve(cfg.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if ops != nil {
		_ = ops.Shutdown(shutdownCtx)
	}
	return server.Shutdown(shutdownCtx)
}

func (cmd *exportCmd) Run(ctx context.Context, g *globals) error {
	logger, err := newLogger(g.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	service := dashboard.NewService(dashboard.Options{Telemetry: dashboard.NewZapTelemetry(logger)})
	defer service.Close()

	file, err := queries.NewExportQuery(service).Query(ctx, queries.ExportInput{Dataset: cmd.Dataset})
	if err != nil {
		return err
	}
	return writeExport(file, cmd.Out, os.Stdout)
}

// writeExport writes to stdout, to a file, or into a directory using the
// export's own filename.
func writeExport(file dashboard.ExportFile, out string, stdout io.Writer) error {
	if out == "" || out == "-" {
		_, err := stdout.Write(file.Data)
		return err
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		out = filepath.Join(out, file.Filename)
	}
	if err := os.WriteFile(out, file.Data, 0o644); err != nil {
		return fmt.Errorf("salesroom: write export: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Wrote %d rows to %s\n", file.Rows, out)
	return nil
}
