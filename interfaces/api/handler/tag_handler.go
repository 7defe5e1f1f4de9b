// interfaces/api/handler/tag_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

// TagHandler - free-standing tags
type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// Create - idempotent tag creation
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	tag, err := h.tagService.CreateTag(req.Tag)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, dto.TagData{ID: tag.ID, Tag: tag.Tag})
}

// List - tags matching an optional text filter
func (h *TagHandler) List(c *fiber.Ctx) error {
	offset, perPage := parsePaging(c)
	tags, total, err := h.tagService.ListTags(c.Query("tag"), offset, perPage)
	if err != nil {
		return serverError(c, err)
	}

	out := make([]dto.TagData, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.TagData{ID: t.ID, Tag: t.Tag})
	}
	return okPage(c, out, total, offset, perPage)
}

// Delete - remove a tag by id (?id=)
func (h *TagHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	if err := h.tagService.DeleteTag(id); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "tag deleted")
}
