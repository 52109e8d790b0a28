package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationRoute "modaly_backend/internals/features/donations/donations/route"
	dashboardRoute "modaly_backend/internals/features/home/dashboard/route"
	messageRoute "modaly_backend/internals/features/home/messages/route"
	postRoute "modaly_backend/internals/features/home/posts/route"
	campaignRoute "modaly_backend/internals/features/media/campaigns/route"
	"modaly_backend/internals/features/media/campaigns/service"
	"modaly_backend/internals/helpers/oss"
)

// AdminRoutes mounts everything behind the admin JWT group.
func AdminRoutes(api fiber.Router, db *gorm.DB, storage *oss.OSSService, files service.FileStorage) {
	dashboardRoute.DashboardAdminRoutes(api, db)
	campaignRoute.CampaignAdminRoutes(api, db, files)
	postRoute.BlogPostAdminRoutes(api, db, storage)
	messageRoute.ContactMessageAdminRoutes(api, db)
	donationRoute.DonationAdminRoutes(api, db)
}
