package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"filesmanager/internal/service"
	"filesmanager/internal/session"
)

// TokenHeader carries the session token returned by /connect.
const TokenHeader = "X-Token"

// Dependencies are the collaborators the HTTP layer needs.
type Dependencies struct {
	DB       *sql.DB
	Sessions session.Store
	Files    service.FileService
	Users    service.UserService
	Auth     service.AuthService
	Stats    service.StatsService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate HTTP to service calls; all rules live in the services.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	app.Get("/health", HealthCheck(d.DB, d.Sessions))
	app.Get("/healthz", LivenessProbe())
	app.Get("/status", GetStatus(d.Stats))
	app.Get("/stats", GetStats(d.Stats))

	app.Get("/connect", Connect(d.Auth))
	app.Get("/disconnect", Disconnect(d.Auth))

	app.Post("/users", PostUser(d.Users))
	app.Get("/users/me", GetMe(d.Users))

	app.Post("/files", PostFile(d.Files))
	app.Get("/files", ListFiles(d.Files))
	app.Get("/files/:id", GetFile(d.Files))
	app.Put("/files/:id/publish", PublishFile(d.Files))
	app.Put("/files/:id/unpublish", UnpublishFile(d.Files))
	app.Get("/files/:id/data", GetFileData(d.Files))
}

func tokenFrom(c *fiber.Ctx) string {
	return c.Get(TokenHeader)
}

// decodeBody unmarshals a JSON body into v. An empty body leaves v untouched.
func decodeBody(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, v)
}
