// interfaces/api/routes/account_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
)

// SetupAccountRoutes registers registration, credentials and profile routes.
func SetupAccountRoutes(router fiber.Router, accountHandler *handler.AccountHandler) {
	account := router.Group("/account")

	// Public routes
	account.Post("/register", accountHandler.Register)
	account.Put("/password/recovery", accountHandler.RecoverPassword)

	// Protected routes
	account.Put("/password/set", middleware.Protected(), accountHandler.SetPassword)
	account.Put("/email", middleware.Protected(), accountHandler.ChangeEmail)
	account.Get("/me", middleware.Protected(), accountHandler.Me)
	account.Put("/me", middleware.Protected(), accountHandler.UpdateMe)
	account.Delete("/me", middleware.Protected(), accountHandler.DeleteMe)
	account.Get("/search", middleware.Protected(), accountHandler.Search)
	account.Put("/lock/:id", middleware.Protected(), accountHandler.ChangeLockStatus)
}
