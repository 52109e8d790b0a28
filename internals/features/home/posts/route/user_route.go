package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postController "modaly_backend/internals/features/home/posts/controller"
	"modaly_backend/internals/helpers/oss"
)

// BlogPostPublicRoutes mounts the read-only post endpoints under /api/public.
func BlogPostPublicRoutes(router fiber.Router, db *gorm.DB, storage *oss.OSSService) {
	ctrl := postController.NewBlogPostController(db, storage)

	posts := router.Group("/posts")
	posts.Get("/", ctrl.GetPublishedPosts)
	posts.Get("/:id", ctrl.GetPublishedPostByID)
}
