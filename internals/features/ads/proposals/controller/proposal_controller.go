package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barterku_backend/internals/features/ads/proposals/dto"
	"barterku_backend/internals/features/ads/proposals/repository"
	"barterku_backend/internals/features/ads/proposals/service"
	helper "barterku_backend/internals/helpers"
)

var validateProposal = validator.New()

type ProposalController struct {
	Service *service.ProposalService
}

func NewProposalController(db *gorm.DB) *ProposalController {
	return &ProposalController{Service: service.NewProposalService(repository.NewProposalRepository(db))}
}

// =======================
// 📄 Get All Proposals (public, paginated)
// Query: ?ad_sender=&ad_receiver=&status=&page=1&per_page=10
// =======================
func (ctrl *ProposalController) GetAllProposals(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	var filter repository.ProposalListFilter
	if raw := c.Query("ad_sender"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ad_sender is not a valid UUID")
		}
		filter.AdSenderID = &id
	}
	if raw := c.Query("ad_receiver"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ad_receiver is not a valid UUID")
		}
		filter.AdReceiverID = &id
	}
	filter.Status = c.Query("status")

	proposals, total, err := ctrl.Service.List(filter, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve proposals")
	}

	resp := dto.ToExchangeProposalDTOs(proposals)
	return helper.JsonList(c, "Proposals retrieved", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(resp)))
}

// =======================
// ➕ Create Proposal (auth required)
// =======================
func (ctrl *ProposalController) CreateProposal(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateProposalRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProposal.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	proposal, err := ctrl.Service.Create(userID, body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Proposal created", dto.ToExchangeProposalDTO(*proposal))
}

// =======================
// ✏️ Update Proposal Status (receiver owner only)
// Body harus persis {"proposal_status": "..."}
// =======================
func (ctrl *ProposalController) UpdateProposalStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	proposalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid proposal id")
	}

	// Body dibaca sebagai map supaya aturan "persis satu field" bisa dicek.
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	proposal, err := ctrl.Service.UpdateStatus(userID, proposalID, body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Proposal status updated", dto.ToExchangeProposalDTO(*proposal))
}

// =======================
// 🗑️ Delete Proposal (sender owner only)
// =======================
func (ctrl *ProposalController) DeleteProposal(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	proposalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid proposal id")
	}

	if err := ctrl.Service.Delete(userID, proposalID); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c)
}
