package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "modaly_backend/internals/features/donations/donations/controller"
)

// DonationPublicRoutes mounts the public donation endpoint under /api/public.
func DonationPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)

	router.Post("/donations", ctrl.CreateDonation)
}
