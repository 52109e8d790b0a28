package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messageController "modaly_backend/internals/features/home/messages/controller"
	"modaly_backend/internals/middlewares"
)

// ContactMessagePublicRoutes mounts the contact form under /api/public.
func ContactMessagePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := messageController.NewContactMessageController(db)

	router.Post("/messages", middlewares.ContactRateLimiter(), ctrl.CreateMessage)
}
