// interfaces/api/handler/friendship_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

// FriendshipHandler - friend lists, requests and recommendations
type FriendshipHandler struct {
	friendshipService service.FriendshipService
}

func NewFriendshipHandler(friendshipService service.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{friendshipService: friendshipService}
}

// GetFriends - confirmed friends, optionally filtered by name
func (h *FriendshipHandler) GetFriends(c *fiber.Ctx) error {
	offset, perPage := parsePaging(c)
	persons, total, err := h.friendshipService.GetFriendList(
		middleware.GetUserUUID(c), c.Query("name"), offset, perPage)
	if err != nil {
		return serverError(c, err)
	}
	return okPage(c, dto.NewPersonDataList(persons), total, offset, perPage)
}

// GetRequests - incoming friend requests
func (h *FriendshipHandler) GetRequests(c *fiber.Ctx) error {
	offset, perPage := parsePaging(c)
	persons, total, err := h.friendshipService.GetFriendRequestList(
		middleware.GetUserUUID(c), c.Query("name"), offset, perPage)
	if err != nil {
		return serverError(c, err)
	}
	return okPage(c, dto.NewPersonDataList(persons), total, offset, perPage)
}

// GetRecommendations - friends of friends, newest persons as fallback
func (h *FriendshipHandler) GetRecommendations(c *fiber.Ctx) error {
	offset, perPage := parsePaging(c)
	persons, total, err := h.friendshipService.GetFriendRecommendationList(
		middleware.GetUserUUID(c), offset, perPage)
	if err != nil {
		return serverError(c, err)
	}
	return okPage(c, dto.NewPersonDataList(persons), total, offset, perPage)
}

// Add - send a friend request or accept a pending one
func (h *FriendshipHandler) Add(c *fiber.Ctx) error {
	friendID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	done, err := h.friendshipService.AddFriend(middleware.GetUserUUID(c), friendID)
	if err != nil {
		return badRequest(c, err)
	}
	if !done {
		return badRequest(c, errPersonNotFound)
	}
	return okMessage(c, "friend request processed")
}

// Delete - dissolve a friendship; the other side keeps a subscription
func (h *FriendshipHandler) Delete(c *fiber.Ctx) error {
	friendID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	done, err := h.friendshipService.DeleteFriend(middleware.GetUserUUID(c), friendID)
	if err != nil {
		return badRequest(c, err)
	}
	if !done {
		return badRequest(c, errors.New("friendship not found"))
	}
	return okMessage(c, "friend deleted")
}

// IsFriends - friendship status of the current person towards candidates
func (h *FriendshipHandler) IsFriends(c *fiber.Ctx) error {
	var req dto.IsFriendsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	statuses, err := h.friendshipService.IsFriend(middleware.GetUserUUID(c), req.UserIDs)
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, statuses)
}

// Block - block a person
func (h *FriendshipHandler) Block(c *fiber.Ctx) error {
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	if err := h.friendshipService.BlockPerson(middleware.GetUserUUID(c), targetID); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "person blocked")
}

// Unblock - lift a block
func (h *FriendshipHandler) Unblock(c *fiber.Ctx) error {
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	if err := h.friendshipService.UnblockPerson(middleware.GetUserUUID(c), targetID); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "person unblocked")
}
