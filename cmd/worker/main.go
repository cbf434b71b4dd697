package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"filesmanager/internal/app"
	"filesmanager/internal/config"
	"filesmanager/internal/logging"
)

const shutdownTimeout = 15 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.Location()).With("component", "thumbnail_worker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log, "files-manager-worker")
	if err != nil {
		log.Error("startup_failed", "error", err.Error())
		return 1
	}

	metricsSrv := app.NewMetricsServer(a.DB, a.Registry)
	go func() {
		if err := metricsSrv.Listen(":" + cfg.Thumbnail.MetricsPort); err != nil {
			log.Error("metrics_server_failed", "error", err.Error())
		}
	}()

	log.Info("worker_started",
		"concurrency", cfg.Thumbnail.Concurrency,
		"poll_interval_ms", cfg.Thumbnail.PollInterval.Milliseconds(),
		"max_attempts", cfg.Thumbnail.MaxAttempts,
		"lease_ms", cfg.Thumbnail.Lease.Milliseconds(),
	)

	// Run returns once ctx is cancelled and in-flight jobs are recorded.
	exitCode := 0
	if err := a.Worker().Run(ctx); err != nil {
		log.Error("worker_failed", "error", err.Error())
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := metricsSrv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("metrics_shutdown_failed", "error", err.Error())
	}
	if err := a.Close(shutdownCtx); err != nil {
		exitCode = 1
	}
	log.Info("shutdown_complete")
	return exitCode
}
