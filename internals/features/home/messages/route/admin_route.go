package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messageController "modaly_backend/internals/features/home/messages/controller"
)

// ContactMessageAdminRoutes mounts message management under /api/a.
func ContactMessageAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := messageController.NewContactMessageController(db)

	messages := router.Group("/messages")
	messages.Get("/", ctrl.GetAllMessages)
	messages.Put("/:id/read", ctrl.MarkAsRead)
	messages.Delete("/:id", ctrl.DeleteMessage)
}
