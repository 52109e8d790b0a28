package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationRoute "modaly_backend/internals/features/donations/donations/route"
	messageRoute "modaly_backend/internals/features/home/messages/route"
	postRoute "modaly_backend/internals/features/home/posts/route"
	campaignRoute "modaly_backend/internals/features/media/campaigns/route"
	"modaly_backend/internals/features/media/campaigns/service"
	"modaly_backend/internals/helpers/oss"
)

// PublicRoutes mounts everything reachable without a token.
func PublicRoutes(api fiber.Router, db *gorm.DB, storage *oss.OSSService, files service.FileStorage) {
	campaignRoute.CampaignPublicRoutes(api, db, files)
	postRoute.BlogPostPublicRoutes(api, db, storage)
	messageRoute.ContactMessagePublicRoutes(api, db)
	donationRoute.DonationPublicRoutes(api, db)
}
