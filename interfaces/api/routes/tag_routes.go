// interfaces/api/routes/tag_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
)

// SetupTagRoutes registers the tag routes.
func SetupTagRoutes(router fiber.Router, tagHandler *handler.TagHandler) {
	tags := router.Group("/tags")
	tags.Use(middleware.Protected())

	tags.Get("/", tagHandler.List)
	tags.Post("/", tagHandler.Create)
	tags.Delete("/", tagHandler.Delete)
}
