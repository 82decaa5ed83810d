package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"remote-control/config"
	"remote-control/internal/application"
	"remote-control/internal/infra/httppanel"
	"remote-control/internal/infra/pushover"
	"remote-control/internal/infra/telemetry"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file; empty uses the built-in layout")
	demo := flag.Bool("demo", false, "run the demo button sequence and exit")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Error("setting up tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("flushing traces", "error", err)
		}
	}()

	ctrl, home, err := application.BuildRemote(ctx, cfg, logger)
	if err != nil {
		logger.Error("building remote", "error", err)
		os.Exit(1)
	}

	var notifier application.Notifier
	if cfg.Pushover.Enabled {
		notifier = pushover.NewClient(cfg.Pushover.Token, cfg.Pushover.UserKey)
	} else {
		notifier = &application.NoopNotifier{}
	}

	panel := application.NewPanel(ctrl, home, notifier, logger)

	if *demo {
		if err := panel.RunDemo(ctx, application.DemoScript); err != nil {
			logger.Error("demo failed", "error", err)
			os.Exit(1)
		}
		fmt.Print(panel.String())
		fmt.Print(home.Summary())
		return
	}

	if err := serve(ctx, cfg.HTTP, panel, logger); err != nil {
		logger.Error("panel error", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func serve(ctx context.Context, cfg config.HTTPConfig, panel *application.Panel, logger *slog.Logger) error {
	server := httppanel.NewServer(cfg.Addr, cfg.AuthToken, panel, logger)
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting HTTP panel: %w", err)
	}

	logger.Info("remote control ready", "addr", cfg.Addr)
	<-ctx.Done()

	return server.Stop()
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
