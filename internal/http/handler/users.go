package handler

import (
	"github.com/gofiber/fiber/v2"

	"filesmanager/internal/service"
)

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// PostUser registers a new user.
//
// @Summary Register
// @Tags users
// @Accept json
// @Produce json
// @Param body body service.RegisterInput true "credentials"
// @Success 201 {object} userResponse
// @Failure 400 {object} errorPayload
// @Router /users [post]
func PostUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RegisterInput
		if err := decodeBody(c, &in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}

		u, err := svc.Register(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(userResponse{ID: u.ID, Email: u.Email})
	}
}

// GetMe returns the user owning the session token.
//
// @Summary Current user
// @Tags users
// @Produce json
// @Param X-Token header string true "session token"
// @Success 200 {object} userResponse
// @Failure 401 {object} errorPayload
// @Router /users/me [get]
func GetMe(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Me(c.UserContext(), tokenFrom(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(userResponse{ID: u.ID, Email: u.Email})
	}
}

// Connect exchanges Basic credentials for a session token.
//
// @Summary Sign in
// @Tags auth
// @Produce json
// @Param Authorization header string true "Basic base64(email:password)"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} errorPayload
// @Router /connect [get]
func Connect(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.Connect(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tokenResponse{Token: token})
	}
}

// Disconnect ends the session.
//
// @Summary Sign out
// @Tags auth
// @Param X-Token header string true "session token"
// @Success 204
// @Failure 401 {object} errorPayload
// @Router /disconnect [get]
func Disconnect(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Disconnect(c.UserContext(), tokenFrom(c)); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
