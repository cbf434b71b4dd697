package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"filesmanager/internal/service"
	"filesmanager/internal/session"
)

// HealthCheck checks DB and session cache connectivity.
//
// @Summary Readiness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB, cache session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a backward-compatible simple liveness probe.
//
// @Summary Liveness probe
// @Tags system
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// GetStatus reports backend reachability.
//
// @Summary Backend status
// @Tags system
// @Produce json
// @Success 200 {object} service.Status
// @Router /status [get]
func GetStatus(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Status(c.UserContext()))
	}
}

// GetStats reports user and file counts.
//
// @Summary Record counts
// @Tags system
// @Produce json
// @Success 200 {object} service.Stats
// @Failure 500 {object} errorPayload
// @Router /stats [get]
func GetStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}
