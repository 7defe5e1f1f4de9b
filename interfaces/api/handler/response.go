// interfaces/api/handler/response.go
package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
)

var (
	errInvalidID      = errors.New("invalid id")
	errPersonNotFound = errors.New("person not found")
)

func ok(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(dto.NewResponse(data))
}

func okPage(c *fiber.Ctx, data interface{}, total int64, offset, perPage int) error {
	return c.Status(fiber.StatusOK).JSON(dto.NewPageResponse(data, total, offset, perPage))
}

func okMessage(c *fiber.Ctx, message string) error {
	return ok(c, dto.MessageData{Message: message})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(dto.NewErrorResponse(errorCode(err), err.Error()))
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(dto.NewErrorResponse("invalid_request", "cannot parse request body"))
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.NewErrorResponse("internal_error", err.Error()))
}

func errorCode(err error) string {
	switch {
	case strings.Contains(err.Error(), "not found"):
		return "not_found"
	default:
		return "invalid_request"
	}
}
