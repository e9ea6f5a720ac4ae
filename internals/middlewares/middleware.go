package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "barterku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar aplikasi (urutan penting:
// recovery paling luar, lalu CORS, limiter, logger).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(loggerMw.LoggerMiddleware())
}
