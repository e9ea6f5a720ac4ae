package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barterku_backend/internals/features/users/auth/controller"
	"barterku_backend/internals/middlewares"
	authMiddleware "barterku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	api.Post("/refresh", authCtrl.RefreshToken)

	api.Get("/me", authMiddleware.AuthMiddleware(db), authCtrl.Me)
}
