package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignController "modaly_backend/internals/features/media/campaigns/controller"
	"modaly_backend/internals/features/media/campaigns/service"
)

// CampaignAdminRoutes mounts campaign management under /api/a.
func CampaignAdminRoutes(router fiber.Router, db *gorm.DB, files service.FileStorage) {
	ctrl := campaignController.NewCampaignAdminController(db, files)

	campaigns := router.Group("/campaigns")
	campaigns.Get("/", ctrl.GetAllCampaigns)
	campaigns.Get("/:id", ctrl.GetCampaignByID)
	campaigns.Post("/", ctrl.CreateCampaign)
	campaigns.Put("/:id", ctrl.UpdateCampaign)
	campaigns.Delete("/:id", ctrl.DeleteCampaign)

	campaigns.Delete("/:id/images/:imageId", ctrl.DeleteImage)
	campaigns.Put("/:id/images/:imageId/primary", ctrl.SetPrimaryImage)
	campaigns.Delete("/:id/videos/:videoId", ctrl.DeleteVideo)
}
