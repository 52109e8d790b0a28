package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Registering global middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
