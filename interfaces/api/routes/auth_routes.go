// interfaces/api/routes/auth_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
)

// SetupAuthRoutes registers login and logout.
func SetupAuthRoutes(router fiber.Router, authHandler *handler.AuthHandler) {
	auth := router.Group("/auth")

	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", middleware.Protected(), authHandler.Logout)
}
