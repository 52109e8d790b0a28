package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"modaly_backend/internals/features/media/campaigns/service"
	"modaly_backend/internals/helpers/oss"
	authMiddleware "modaly_backend/internals/middlewares/auth"
	routeDetails "modaly_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes wires every route group. storage may be nil when object storage
// is not configured; upload endpoints then degrade (covers skipped, campaign
// asset uploads rejected by the storage guard).
func SetupRoutes(app *fiber.App, db *gorm.DB, storage *oss.OSSService) {
	startTime = time.Now()

	var files service.FileStorage
	if storage != nil {
		files = storage
	} else {
		files = unconfiguredStorage{}
	}

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.PublicRoutes(public, db, storage, files)

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a", authMiddleware.RequireAdmin())
	routeDetails.AdminRoutes(admin, db, storage, files)
}
