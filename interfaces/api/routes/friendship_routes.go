// interfaces/api/routes/friendship_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
)

// SetupFriendshipRoutes registers friend lists, requests and blocking.
func SetupFriendshipRoutes(router fiber.Router, friendshipHandler *handler.FriendshipHandler) {
	friends := router.Group("/friends")
	friends.Use(middleware.Protected())

	friends.Get("/", friendshipHandler.GetFriends)
	friends.Get("/request", friendshipHandler.GetRequests)
	friends.Get("/recommendations", friendshipHandler.GetRecommendations)

	friends.Post("/:id", friendshipHandler.Add)
	friends.Delete("/:id", friendshipHandler.Delete)

	friends.Put("/block/:id", friendshipHandler.Block)
	friends.Delete("/block/:id", friendshipHandler.Unblock)

	router.Post("/is/friends", middleware.Protected(), friendshipHandler.IsFriends)
}
