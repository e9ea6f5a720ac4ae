package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"barterku_backend/internals/configs"
)

// LoggerMiddleware mencatat semua request. Timezone diambil dari APP_TIMEZONE
// supaya log lokal dan log produksi bisa disamakan.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   configs.GetEnv("APP_TIMEZONE", "UTC"),
		Format:     "[${time}] ${ip} ${method} ${path} - ${status} - ${latency}\n",
	})
}
