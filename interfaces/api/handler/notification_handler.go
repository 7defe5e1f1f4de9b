// interfaces/api/handler/notification_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

// NotificationHandler - unread notifications and per-type settings
type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List - unread notifications, most recent first
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	offset, perPage := parsePaging(c)
	notifications, total, err := h.notificationService.GetNotifications(
		middleware.GetUserUUID(c), offset, perPage)
	if err != nil {
		return serverError(c, err)
	}
	return okPage(c, notifications, total, offset, perPage)
}

// Read - mark one notification (?id=) or everything (?all=true) as read
func (h *NotificationHandler) Read(c *fiber.Ctx) error {
	personID := middleware.GetUserUUID(c)

	if c.QueryBool("all") {
		if err := h.notificationService.ReadAll(personID); err != nil {
			return serverError(c, err)
		}
		return okMessage(c, "all notifications read")
	}

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return badRequest(c, errInvalidID)
	}
	if err := h.notificationService.ReadByID(personID, id); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "notification read")
}

// GetSettings - per-type enable flags of the current person
func (h *NotificationHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.notificationService.GetSettings(middleware.GetUserUUID(c))
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, settings)
}

// SaveSettings - toggle one notification type
func (h *NotificationHandler) SaveSettings(c *fiber.Ctx) error {
	var req dto.NotificationSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	if err := h.notificationService.SaveSettings(middleware.GetUserUUID(c), req.Type, req.Enable); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "settings saved")
}
