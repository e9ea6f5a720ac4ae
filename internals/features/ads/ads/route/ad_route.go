package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barterku_backend/internals/features/ads/ads/controller"
)

// AdPublicRoutes: listing iklan, tanpa auth.
func AdPublicRoutes(api fiber.Router, db *gorm.DB) {
	adCtrl := controller.NewAdController(db)

	public := api.Group("/ads")
	public.Get("/", adCtrl.GetAllAds)
}

// AdUserRoutes: mutasi iklan, wajib login (group sudah pakai AuthMiddleware).
func AdUserRoutes(api fiber.Router, db *gorm.DB) {
	adCtrl := controller.NewAdController(db)

	user := api.Group("/ads")
	user.Post("/", adCtrl.CreateAd)
	user.Patch("/:id", adCtrl.UpdateAd)
	user.Delete("/:id", adCtrl.DeleteAd)
}
