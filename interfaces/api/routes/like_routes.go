// interfaces/api/routes/like_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
)

// SetupLikeRoutes registers the like routes.
func SetupLikeRoutes(router fiber.Router, likeHandler *handler.LikeHandler) {
	likes := router.Group("/likes")
	likes.Use(middleware.Protected())

	likes.Get("/", likeHandler.Get)
	likes.Put("/", likeHandler.Put)
	likes.Delete("/", likeHandler.Delete)
}
