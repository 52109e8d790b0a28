package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignController "modaly_backend/internals/features/media/campaigns/controller"
	"modaly_backend/internals/features/media/campaigns/service"
)

// CampaignPublicRoutes mounts read-only campaign endpoints under /api/public.
func CampaignPublicRoutes(router fiber.Router, db *gorm.DB, files service.FileStorage) {
	ctrl := campaignController.NewCampaignUserController(db, files)

	campaigns := router.Group("/campaigns")
	campaigns.Get("/", ctrl.GetPublishedCampaigns)
	campaigns.Get("/:id", ctrl.GetPublishedCampaignByID)
}
