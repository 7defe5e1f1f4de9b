// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
)

// SetupRoutes registers every API route of the application.
func SetupRoutes(
	app *fiber.App,
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,

	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
	likeHandler *handler.LikeHandler,
	tagHandler *handler.TagHandler,

	friendshipHandler *handler.FriendshipHandler,
	dialogHandler *handler.DialogHandler,
	notificationHandler *handler.NotificationHandler,
	storageHandler *handler.StorageHandler,
) {
	api := app.Group("/api/v1")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is running",
		})
	})

	SetupAuthRoutes(api, authHandler)
	SetupAccountRoutes(api, accountHandler)

	SetupPostRoutes(api, postHandler, commentHandler)
	SetupLikeRoutes(api, likeHandler)
	SetupTagRoutes(api, tagHandler)

	SetupFriendshipRoutes(api, friendshipHandler)
	SetupDialogRoutes(api, dialogHandler)
	SetupNotificationRoutes(api, notificationHandler)
	SetupStorageRoutes(api, storageHandler)
}
