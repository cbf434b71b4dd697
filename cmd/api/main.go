package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"

	"filesmanager/docs"
	"filesmanager/internal/app"
	"filesmanager/internal/config"
	"filesmanager/internal/logging"
)

const shutdownTimeout = 15 * time.Second

// @title Files Manager API
// @version 1.0
// @description Personal file storage: folders, files and images with thumbnails.
// @BasePath /
func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log, "files-manager-api")
	if err != nil {
		log.Error("startup_failed", "error", err.Error())
		return 1
	}

	deps, err := a.API()
	if err != nil {
		log.Error("startup_failed", "error", err.Error())
		_ = a.Close(context.Background())
		return 1
	}

	srv, err := app.NewServer(deps, a.Registry, log)
	if err != nil {
		log.Error("startup_failed", "error", err.Error())
		_ = a.Close(context.Background())
		return 1
	}

	// Swagger UI with dynamic host and scheme
	srv.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(":" + cfg.Port)
	}()

	exitCode := 0
	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server_failed", "error", err.Error())
			exitCode = 1
		}
	case <-ctx.Done():
		log.Info("shutdown_started")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server_shutdown_failed", "error", err.Error())
	}
	// Drains queued thumbnail jobs before the database goes away.
	if err := a.Close(shutdownCtx); err != nil {
		exitCode = 1
	}
	log.Info("shutdown_complete")
	return exitCode
}
