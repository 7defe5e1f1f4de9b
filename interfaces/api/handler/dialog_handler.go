// interfaces/api/handler/dialog_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

var errNotDialogMember = errors.New("person is not a member of this dialog")

// DialogHandler - dialogs and their messages
type DialogHandler struct {
	dialogService service.DialogService
}

func NewDialogHandler(dialogService service.DialogService) *DialogHandler {
	return &DialogHandler{dialogService: dialogService}
}

// Create - open a dialog with the listed members
func (h *DialogHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDialogRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	dialog, err := h.dialogService.CreateDialog(middleware.GetUserUUID(c), req.UserIDs)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, fiber.Map{"id": dialog.ID, "invite_code": dialog.InviteCode})
}

// List - dialogs of the current person with unread counters
func (h *DialogHandler) List(c *fiber.Ctx) error {
	offset, perPage := parsePaging(c)
	dialogs, total, err := h.dialogService.GetDialogs(middleware.GetUserUUID(c), offset, perPage)
	if err != nil {
		return serverError(c, err)
	}
	return okPage(c, dialogs, total, offset, perPage)
}

// SendMessage - post a message into a dialog
func (h *DialogHandler) SendMessage(c *fiber.Ctx) error {
	dialogID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	msg, err := h.dialogService.SendMessage(dialogID, middleware.GetUserUUID(c), req.MessageText)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, msg)
}

// ListMessages - page through a dialog's messages
func (h *DialogHandler) ListMessages(c *fiber.Ctx) error {
	dialogID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	member, err := h.dialogService.PersonInDialog(middleware.GetUserUUID(c), dialogID)
	if err != nil {
		return serverError(c, err)
	}
	if !member {
		return badRequest(c, errNotDialogMember)
	}

	offset, perPage := parsePaging(c)
	messages, total, err := h.dialogService.ListMessages(dialogID, offset, perPage)
	if err != nil {
		return serverError(c, err)
	}
	return okPage(c, messages, total, offset, perPage)
}

// EditMessage - replace the text of a message
func (h *DialogHandler) EditMessage(c *fiber.Ctx) error {
	messageID, err := parseUUIDParam(c, "messageId")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	var req dto.EditMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	msg, err := h.dialogService.EditMessage(messageID, req.MessageText)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, msg)
}

// DeleteMessage - soft-delete a message
func (h *DialogHandler) DeleteMessage(c *fiber.Ctx) error {
	messageID, err := parseUUIDParam(c, "messageId")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	id, err := h.dialogService.RemoveMessage(messageID)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, fiber.Map{"message_id": id})
}

// MarkRead - flip the person's unread messages in a dialog to READ
func (h *DialogHandler) MarkRead(c *fiber.Ctx) error {
	dialogID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	if err := h.dialogService.MarkDialogRead(dialogID, middleware.GetUserUUID(c)); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "dialog read")
}

// Activity - presence of the other dialog participant
func (h *DialogHandler) Activity(c *fiber.Ctx) error {
	dialogID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	activity, err := h.dialogService.GetActivity(c.Context(), middleware.GetUserUUID(c), dialogID)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, activity)
}

// Unreaded - total unread messages of the current person
func (h *DialogHandler) Unreaded(c *fiber.Ctx) error {
	count, err := h.dialogService.UnreadTotal(middleware.GetUserUUID(c))
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, dto.UnreadedData{Count: count})
}
