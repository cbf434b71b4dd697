package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDHeader   = "X-Request-ID"
	RequestIDLocalKey = "request_id"
	// ErrorLocalKey holds an internal error a handler chose not to expose to the client.
	ErrorLocalKey = "internal_error"
)

// RequestID tags every request with an id: the caller's X-Request-ID when sent,
// a fresh UUID otherwise. The id is echoed in the response header and kept in
// locals so error bodies and the request log can carry it.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// RequestIDFrom returns the id set by RequestID, or "" outside of it.
func RequestIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDLocalKey).(string)
	return id
}

// RecordError keeps err for the request log line without exposing it in the response.
func RecordError(c *fiber.Ctx, err error) {
	c.Locals(ErrorLocalKey, err)
}
