// interfaces/api/handler/post_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

// PostHandler - wall posts and the public feed
type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Add - publish a post on the current person's wall
func (h *PostHandler) Add(c *fiber.Ctx) error {
	var req dto.AddPostRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	post, err := h.postService.AddPost(middleware.GetUserUUID(c), req)
	if err != nil {
		return badRequest(c, err)
	}

	data, err := h.postService.GetByID(post.ID)
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, data)
}

// AddToWall - publish a post on another person's wall
func (h *PostHandler) AddToWall(c *fiber.Ctx) error {
	personID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	var req dto.AddPostRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	post, err := h.postService.AddPost(personID, req)
	if err != nil {
		return badRequest(c, err)
	}

	data, err := h.postService.GetByID(post.ID)
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, data)
}

// GetByID - single post with author and comment tree
func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	data, err := h.postService.GetByID(id)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, data)
}

// GetWall - posts of one person, newest first
func (h *PostHandler) GetWall(c *fiber.Ctx) error {
	personID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	offset, perPage := parsePaging(c)
	posts, total, err := h.postService.GetWall(personID, offset, perPage)
	if err != nil {
		return serverError(c, err)
	}
	return okPage(c, posts, total, offset, perPage)
}

// GetFeed - posts of everyone, newest first
func (h *PostHandler) GetFeed(c *fiber.Ctx) error {
	offset, perPage := parsePaging(c)
	posts, total, err := h.postService.GetFeed(offset, perPage)
	if err != nil {
		return serverError(c, err)
	}
	return okPage(c, posts, total, offset, perPage)
}

// Edit - update title, text and tags of a post
func (h *PostHandler) Edit(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	var req dto.EditPostRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	data, err := h.postService.EditPost(id, req)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, data)
}

// Delete - soft-delete a post
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	if err := h.postService.DeletePost(id); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "post deleted")
}

// Recover - undo a soft delete
func (h *PostHandler) Recover(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	if err := h.postService.RecoverPost(id); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "post recovered")
}

// Report - file a complaint against a post
func (h *PostHandler) Report(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	if err := h.postService.ComplaintPost(id); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "complaint registered")
}
