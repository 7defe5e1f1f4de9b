// interfaces/api/routes/dialog_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
)

// SetupDialogRoutes registers dialogs and their messages.
func SetupDialogRoutes(router fiber.Router, dialogHandler *handler.DialogHandler) {
	dialogs := router.Group("/dialogs")
	dialogs.Use(middleware.Protected())

	dialogs.Get("/", dialogHandler.List)
	dialogs.Post("/", dialogHandler.Create)
	dialogs.Get("/unreaded", dialogHandler.Unreaded)

	dialogs.Get("/:id/messages", dialogHandler.ListMessages)
	dialogs.Post("/:id/messages", dialogHandler.SendMessage)
	dialogs.Put("/:id/messages/:messageId", dialogHandler.EditMessage)
	dialogs.Delete("/:id/messages/:messageId", dialogHandler.DeleteMessage)

	dialogs.Put("/:id/read", dialogHandler.MarkRead)
	dialogs.Get("/:id/activity", dialogHandler.Activity)
}
