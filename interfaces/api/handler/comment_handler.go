// interfaces/api/handler/comment_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

// CommentHandler - comments under a post
type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Add - comment on a post, optionally replying to another comment
func (h *CommentHandler) Add(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	comment, err := h.commentService.AddComment(postID, middleware.GetUserUUID(c), req)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, dto.NewCommentData(comment))
}

// GetByPost - comment tree of a post
func (h *CommentHandler) GetByPost(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	comments, err := h.commentService.GetByPost(postID)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, comments)
}

// Edit - replace the text of a comment
func (h *CommentHandler) Edit(c *fiber.Ctx) error {
	commentID, err := parseUUIDParam(c, "commentId")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	var req dto.EditCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	comment, err := h.commentService.EditComment(commentID, req.CommentText)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, dto.NewCommentData(comment))
}

// Delete - block a comment out of the tree
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	commentID, err := parseUUIDParam(c, "commentId")
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	if err := h.commentService.DeleteComment(commentID); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "comment deleted")
}

// Report - file a complaint against a comment
func (h *CommentHandler) Report(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	commentID, err := parseUUIDParam(c, "commentId")
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	if err := h.commentService.ComplaintComment(postID, commentID); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "complaint registered")
}
