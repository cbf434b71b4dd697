// Package app owns the process context shared by the API and the worker:
// connections opened at start and released, in reverse order, by Close.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"filesmanager/internal/config"
	"filesmanager/internal/database"
	"filesmanager/internal/database/migration"
	"filesmanager/internal/http/handler"
	"filesmanager/internal/metrics"
	"filesmanager/internal/otel"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository/postgres"
	"filesmanager/internal/service"
	"filesmanager/internal/session"
	"filesmanager/internal/storage"
	"filesmanager/internal/thumbnail"
)

// jobTimeout bounds one thumbnail job. Decoding and resizing a large image
// takes far longer than a metadata round trip.
const jobTimeout = 2 * time.Minute

type closer struct {
	name string
	fn   func(context.Context) error
}

// App holds the clients every process needs.
type App struct {
	Config   *config.AppConfig
	Log      *slog.Logger
	DB       *sql.DB
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Storage  storage.Storage
	Files    *postgres.FilePostgres
	Users    *postgres.UserPostgres
	Queue    *queue.PostgresQueue

	closers []closer
}

// New starts tracing, connects to Postgres, applies the schema and opens blob storage.
// On failure everything opened so far is released.
func New(ctx context.Context, cfg *config.AppConfig, log *slog.Logger, serviceName string) (*App, error) {
	a := &App{Config: cfg, Log: log}

	shutdown, err := otel.Init(ctx, log, serviceName)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	a.onClose("tracing", shutdown)

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := a.attach(ctx, db); err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	return a, nil
}

func (a *App) attach(ctx context.Context, db *sql.DB) error {
	a.DB = db
	a.onClose("database", func(context.Context) error { return db.Close() })

	if err := migration.EnsureMigrated(ctx, db, a.Log, a.Config.Database.Host); err != nil {
		return err
	}

	store, err := storage.New(a.Config.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	a.Storage = store

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.Metrics, err = metrics.New(a.Registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	a.Files = postgres.NewFilePostgres(db)
	a.Users = postgres.NewUserPostgres(db)
	a.Queue = queue.NewPostgresQueue(db, a.Config.Thumbnail.Lease)
	return nil
}

// API opens the session cache, starts the thumbnail dispatcher and builds the
// services behind the HTTP routes. The dispatcher is drained before the
// session cache and the database are closed.
func (a *App) API() (handler.Dependencies, error) {
	sessions, err := session.OpenBadger(a.Config.Session)
	if err != nil {
		return handler.Dependencies{}, err
	}
	a.onClose("sessions", func(context.Context) error { return sessions.Close() })

	timeout := a.Config.BackendTimeout
	dispatcher := queue.NewDispatcher(a.Queue, a.Log, a.Config.Thumbnail.Buffer, timeout, a.Metrics)
	a.onClose("dispatcher", dispatcher.Close)

	auth := service.NewAuthorizer(sessions, a.Users)
	return handler.Dependencies{
		DB:       a.DB,
		Sessions: sessions,
		Files:    service.NewFileService(a.Files, a.Storage, auth, dispatcher, a.Metrics, timeout),
		Users:    service.NewUserService(a.Users, auth, timeout),
		Auth:     service.NewAuthService(a.Users, sessions, auth, timeout),
		Stats:    service.NewStatsService(a.DB, sessions, a.Users, a.Files, timeout),
	}, nil
}

// Worker builds the thumbnail worker pool over the shared queue and storage.
func (a *App) Worker() *thumbnail.Worker {
	proc := thumbnail.NewProcessor(a.Files, a.Storage)
	return thumbnail.NewWorker(a.Queue, proc, a.Log, a.Config.Thumbnail, jobTimeout, a.Metrics)
}

func (a *App) onClose(name string, fn func(context.Context) error) {
	a.closers = append(a.closers, closer{name: name, fn: fn})
}

// Close releases resources in reverse order of acquisition. It is safe to call more than once.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.fn(ctx); err != nil {
			a.Log.Error("shutdown_failed", "component", c.name, "error", err.Error())
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
