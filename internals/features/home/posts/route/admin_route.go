package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postController "modaly_backend/internals/features/home/posts/controller"
	"modaly_backend/internals/helpers/oss"
)

// BlogPostAdminRoutes mounts the post management endpoints under /api/a.
func BlogPostAdminRoutes(router fiber.Router, db *gorm.DB, storage *oss.OSSService) {
	ctrl := postController.NewBlogPostController(db, storage)

	posts := router.Group("/posts")
	posts.Get("/", ctrl.GetAllPosts)
	posts.Get("/:id", ctrl.GetPostByID)
	posts.Post("/", ctrl.CreatePost)
	posts.Put("/:id", ctrl.UpdatePost)
	posts.Delete("/:id", ctrl.DeletePost)
}
