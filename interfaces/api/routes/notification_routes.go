// interfaces/api/routes/notification_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
)

// SetupNotificationRoutes registers notifications and their settings.
func SetupNotificationRoutes(router fiber.Router, notificationHandler *handler.NotificationHandler) {
	notifications := router.Group("/notifications")
	notifications.Use(middleware.Protected())

	notifications.Get("/", notificationHandler.List)
	notifications.Put("/", notificationHandler.Read)

	notifications.Get("/settings", notificationHandler.GetSettings)
	notifications.Put("/settings", notificationHandler.SaveSettings)
}
