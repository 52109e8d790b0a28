package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "modaly_backend/internals/features/donations/donations/controller"
)

// DonationAdminRoutes mounts donation management under /api/a.
func DonationAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)

	donations := router.Group("/donations")
	donations.Get("/", ctrl.GetAllDonations)
	donations.Get("/summary", ctrl.GetDonationSummary)
}
