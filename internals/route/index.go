// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adRoute "barterku_backend/internals/features/ads/ads/route"
	proposalRoute "barterku_backend/internals/features/ads/proposals/route"
	authRoute "barterku_backend/internals/features/users/auth/route"
	authMiddleware "barterku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa auth (listing)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib access token
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Ad routes...")
	adRoute.AdPublicRoutes(public, db)
	adRoute.AdUserRoutes(private, db)

	log.Println("[INFO] Mounting Proposal routes...")
	proposalRoute.ProposalPublicRoutes(public, db)
	proposalRoute.ProposalUserRoutes(private, db)
}
