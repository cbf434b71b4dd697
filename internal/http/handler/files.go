package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"filesmanager/internal/service"
)

// PostFile creates a folder, file or image.
//
// @Summary Create a file
// @Tags files
// @Accept json
// @Produce json
// @Param X-Token header string true "session token"
// @Param body body service.CreateFileInput true "file to create"
// @Success 201 {object} model.File
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /files [post]
func PostFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// The service checks the token before it parses the body.
		f, err := svc.CreateJSON(c.UserContext(), tokenFrom(c), c.Body())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// GetFile returns one of the caller's files.
//
// @Summary Show a file
// @Tags files
// @Produce json
// @Param X-Token header string true "session token"
// @Param id path string true "file id"
// @Success 200 {object} model.File
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /files/{id} [get]
func GetFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := svc.Get(c.UserContext(), tokenFrom(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// ListFiles returns a page of the caller's files under a parent folder.
//
// @Summary List files
// @Tags files
// @Produce json
// @Param X-Token header string true "session token"
// @Param parentId query string false "parent folder id, 0 for the root"
// @Param page query int false "page number, 20 entries per page"
// @Success 200 {array} model.File
// @Failure 401 {object} errorPayload
// @Router /files [get]
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// A page that does not parse is the first page.
		page, err := strconv.Atoi(c.Query("page", "0"))
		if err != nil {
			page = 0
		}

		files, err := svc.List(c.UserContext(), tokenFrom(c), c.Query("parentId", "0"), page)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(files)
	}
}

// PublishFile makes a file public.
//
// @Summary Publish a file
// @Tags files
// @Produce json
// @Param X-Token header string true "session token"
// @Param id path string true "file id"
// @Success 200 {object} model.File
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /files/{id}/publish [put]
func PublishFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := svc.Publish(c.UserContext(), tokenFrom(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// UnpublishFile makes a file private.
//
// @Summary Unpublish a file
// @Tags files
// @Produce json
// @Param X-Token header string true "session token"
// @Param id path string true "file id"
// @Success 200 {object} model.File
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /files/{id}/unpublish [put]
func UnpublishFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := svc.Unpublish(c.UserContext(), tokenFrom(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// GetFileData serves the content of a file or of one of its thumbnails.
//
// @Summary File content
// @Tags files
// @Produce octet-stream
// @Param X-Token header string false "session token, not needed for public files"
// @Param id path string true "file id"
// @Param size query int false "thumbnail width: 500, 250 or 100"
// @Success 200 {file} binary
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /files/{id}/data [get]
func GetFileData(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := svc.Content(c.UserContext(), tokenFrom(c), c.Params("id"), c.Query("size"))
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentType, content.MimeType)
		return c.Status(fiber.StatusOK).Send(content.Data)
	}
}
