// interfaces/api/routes/post_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
)

// SetupPostRoutes registers the feed, wall, post and comment routes.
func SetupPostRoutes(router fiber.Router, postHandler *handler.PostHandler, commentHandler *handler.CommentHandler) {
	router.Get("/feed", middleware.Protected(), postHandler.GetFeed)

	post := router.Group("/post")
	post.Use(middleware.Protected())

	post.Post("/", postHandler.Add)
	post.Get("/:id", postHandler.GetByID)
	post.Put("/:id", postHandler.Edit)
	post.Delete("/:id", postHandler.Delete)
	post.Put("/:id/recover", postHandler.Recover)
	post.Post("/:id/report", postHandler.Report)

	post.Get("/:id/comments", commentHandler.GetByPost)
	post.Post("/:id/comments", commentHandler.Add)
	post.Put("/:id/comments/:commentId", commentHandler.Edit)
	post.Delete("/:id/comments/:commentId", commentHandler.Delete)
	post.Post("/:id/comments/:commentId/report", commentHandler.Report)

	users := router.Group("/users")
	users.Use(middleware.Protected())

	users.Get("/:id/wall", postHandler.GetWall)
	users.Post("/:id/wall", postHandler.AddToWall)
}
