package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "modaly_backend/internals/features/users/auth/controller"
	"modaly_backend/internals/middlewares"
	authMiddleware "modaly_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth. Login is rate-limited harder than the rest of
// the API; /me requires a valid token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", authMiddleware.RequireAdmin(), ctrl.Me)
}
