package app

import (
	"database/sql"
	"log/slog"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"filesmanager/internal/http/handler"
	"filesmanager/internal/http/middleware"
)

// bodyLimit leaves room for base64 uploads of a few tens of megabytes.
const bodyLimit = 64 << 20

// NewServer builds the API's Fiber app: tracing, request ids, request logs and
// metrics around every route, plus /metrics for the registry.
func NewServer(d handler.Dependencies, reg *prometheus.Registry, log *slog.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler(),
		BodyLimit:    bodyLimit,
	})

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get("/metrics", metricsHandler(reg))
	handler.RegisterRoutes(app, d)
	return app, nil
}

// NewMetricsServer serves the worker's metrics and probes.
func NewMetricsServer(db *sql.DB, reg *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handler.ErrorHandler(),
		DisableStartupMessage: true,
	})
	app.Get("/metrics", metricsHandler(reg))
	app.Get("/healthz", handler.LivenessProbe())
	app.Get("/health", handler.HealthCheck(db, nil))
	return app
}

func metricsHandler(reg *prometheus.Registry) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
}
