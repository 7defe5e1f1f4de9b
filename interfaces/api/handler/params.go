// interfaces/api/handler/params.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

func parsePaging(c *fiber.Ctx) (offset, perPage int) {
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	perPage = c.QueryInt("perPage", defaultPerPage)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return offset, perPage
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
