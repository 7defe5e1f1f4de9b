// interfaces/api/routes/storage_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
)

// SetupStorageRoutes registers the file upload route.
func SetupStorageRoutes(router fiber.Router, storageHandler *handler.StorageHandler) {
	storage := router.Group("/storage")
	storage.Use(middleware.Protected())

	storage.Post("/", storageHandler.Upload)
}
