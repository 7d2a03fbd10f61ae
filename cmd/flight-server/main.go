package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/quanb-duy/gooddata-go-sdk/internal/api"
	"github.com/quanb-duy/gooddata-go-sdk/internal/config"
	"github.com/quanb-duy/gooddata-go-sdk/internal/logging"
	"github.com/quanb-duy/gooddata-go-sdk/internal/telemetry"
)

// Version info for the flight server
// These variables are injected at build time via ldflags
var (
	// Version is the current version of the flight server
	Version = "dev"

	// BuildTime is the time at which the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit that was compiled
	GitCommit = "unknown"
)

// configFiles collects repeated --config flags in order
type configFiles []string

func (f *configFiles) String() string { return "" }

func (f *configFiles) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	var files configFiles
	flag.Var(&files, "config", "Path to a settings file (may be repeated; later files win)")
	showVersion := flag.Bool("version", false, "Display version information")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if *showVersion {
		log.Printf("gooddata-flight-server v%s\n", Version)
		log.Printf("Git commit: %s\n", GitCommit)
		log.Printf("Build time: %s\n", BuildTime)
		return
	}

	cfg, err := config.Read(files...)
	if err != nil {
		log.Printf("Failed to read configuration: %v", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Options{
		Level:     *logLevel,
		EventKey:  cfg.LogEventKeyName,
		TraceKeys: cfg.LogTraceKeys,
	})
	if err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting flight server",
		zap.String("version", Version),
		zap.String("commit", GitCommit),
	)

	shutdownTelemetry, metrics, err := telemetry.InitMetrics(cfg.Otel, Version)
	if err != nil {
		logger.Error("failed to initialize metrics", zap.Error(err))
		os.Exit(1)
	}

	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Error("failed to shutdown telemetry", zap.Error(err))
		}
	}()

	server := api.NewServer(cfg, logger, metrics, Version)

	// Start server in a goroutine so it doesn't block signal handling
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer scancel()

	if err := server.Shutdown(sctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
