package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "modaly_backend/internals/features/home/dashboard/controller"
)

// DashboardAdminRoutes mounts the admin dashboard endpoint under /api/a.
func DashboardAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	router.Get("/dashboard", ctrl.GetDashboard)
}
