package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"filesmanager/internal/http/middleware"
	"filesmanager/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiError struct {
	status  int
	code    string
	message string
}

var serviceErrors = []struct {
	err error
	apiError
}{
	{service.ErrUnauthorized, apiError{fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized"}},
	{service.ErrMissingName, apiError{fiber.StatusBadRequest, "MISSING_NAME", "Missing name"}},
	{service.ErrMissingType, apiError{fiber.StatusBadRequest, "MISSING_TYPE", "Missing type"}},
	{service.ErrMissingData, apiError{fiber.StatusBadRequest, "MISSING_DATA", "Missing data"}},
	{service.ErrInvalidData, apiError{fiber.StatusBadRequest, "INVALID_DATA", "Invalid data"}},
	{service.ErrInvalidBody, apiError{fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body"}},
	{service.ErrParentNotFound, apiError{fiber.StatusBadRequest, "PARENT_NOT_FOUND", "Parent not found"}},
	{service.ErrParentNotAFolder, apiError{fiber.StatusBadRequest, "PARENT_NOT_A_FOLDER", "Parent is not a folder"}},
	{service.ErrInvalidID, apiError{fiber.StatusBadRequest, "INVALID_ID", "Invalid id"}},
	{service.ErrNotFound, apiError{fiber.StatusNotFound, "NOT_FOUND", "Not found"}},
	{service.ErrFolderHasNoContent, apiError{fiber.StatusBadRequest, "FOLDER_HAS_NO_CONTENT", "A folder doesn't have content"}},
	{service.ErrMissingEmail, apiError{fiber.StatusBadRequest, "MISSING_EMAIL", "Missing email"}},
	{service.ErrMissingPassword, apiError{fiber.StatusBadRequest, "MISSING_PASSWORD", "Missing password"}},
	{service.ErrUserExists, apiError{fiber.StatusBadRequest, "ALREADY_EXISTS", "Already exist"}},
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps a service error to its response. Unknown errors are
// backend faults: the client gets a 500 and the cause is left for the request log.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			return writeError(c, se.status, se.code, se.message)
		}
	}
	middleware.RecordError(c, err)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			middleware.RecordError(c, err)
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
