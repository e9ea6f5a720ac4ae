package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barterku_backend/internals/features/ads/proposals/controller"
)

// ProposalPublicRoutes: listing proposal, tanpa auth.
func ProposalPublicRoutes(api fiber.Router, db *gorm.DB) {
	proposalCtrl := controller.NewProposalController(db)

	public := api.Group("/proposals")
	public.Get("/", proposalCtrl.GetAllProposals)
}

// ProposalUserRoutes: mutasi proposal, wajib login (group sudah pakai AuthMiddleware).
func ProposalUserRoutes(api fiber.Router, db *gorm.DB) {
	proposalCtrl := controller.NewProposalController(db)

	user := api.Group("/proposals")
	user.Post("/", proposalCtrl.CreateProposal)
	user.Patch("/:id", proposalCtrl.UpdateProposalStatus)
	user.Delete("/:id", proposalCtrl.DeleteProposal)
}
