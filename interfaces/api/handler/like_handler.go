// interfaces/api/handler/like_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

var (
	errUnknownLikeType = errors.New("unknown like type")
	errDuplicateLike   = errors.New("like already exists")
)

// LikeHandler - likes on posts and comments
type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Put - like an item; liking it twice is rejected
func (h *LikeHandler) Put(c *fiber.Ctx) error {
	var req dto.PutLikeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}
	if !req.Type.Valid() {
		return badRequest(c, errUnknownLikeType)
	}

	created, err := h.likeService.PutLike(middleware.GetUserUUID(c), req.ItemID, req.Type)
	if err != nil {
		return badRequest(c, err)
	}
	if !created {
		return badRequest(c, errDuplicateLike)
	}
	return h.likeSummary(c, req.ItemID, req.Type)
}

// Get - likes summary of an item
func (h *LikeHandler) Get(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Query("item_id"))
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	likeType := dto.LikeType(c.Query("type"))
	if !likeType.Valid() {
		return badRequest(c, errUnknownLikeType)
	}
	return h.likeSummary(c, itemID, likeType)
}

// Delete - remove the current person's like; absent likes are a no-op
func (h *LikeHandler) Delete(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Query("item_id"))
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	likeType := dto.LikeType(c.Query("type"))
	if !likeType.Valid() {
		return badRequest(c, errUnknownLikeType)
	}

	if err := h.likeService.RemoveLike(middleware.GetUserUUID(c), itemID, likeType); err != nil {
		return badRequest(c, err)
	}
	return h.likeSummary(c, itemID, likeType)
}

func (h *LikeHandler) likeSummary(c *fiber.Ctx, itemID uuid.UUID, likeType dto.LikeType) error {
	users, err := h.likeService.GetUsersOfLike(itemID, likeType)
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, dto.LikeData{Likes: len(users), Users: users})
}
