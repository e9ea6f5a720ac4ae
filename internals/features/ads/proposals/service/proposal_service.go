package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barterku_backend/internals/constants"
	adModel "barterku_backend/internals/features/ads/ads/model"
	"barterku_backend/internals/features/ads/proposals/dto"
	"barterku_backend/internals/features/ads/proposals/model"
	"barterku_backend/internals/features/ads/proposals/repository"
)

// AllowedStatusField: satu-satunya field yang boleh dikirim saat PATCH status.
const AllowedStatusField = "proposal_status"

type ProposalService struct {
	repo repository.ProposalRepository
}

func NewProposalService(repo repository.ProposalRepository) *ProposalService {
	return &ProposalService{repo: repo}
}

// Predikat otorisasi proposal: delete milik pemilik iklan sender,
// ubah status milik pemilik iklan receiver.
func isSenderOwner(userID uuid.UUID, senderAd *adModel.AdModel) bool {
	return senderAd.AdUserID == userID
}

func isReceiverOwner(userID uuid.UUID, receiverAd *adModel.AdModel) bool {
	return receiverAd.AdUserID == userID
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return err
}

// =======================
// 📄 List
// =======================
func (s *ProposalService) List(f repository.ProposalListFilter, limit, offset int) ([]model.ExchangeProposalModel, int64, error) {
	return s.repo.List(f, limit, offset)
}

// =======================
// ➕ Create (status awal selalu pending)
// =======================
func (s *ProposalService) Create(userID uuid.UUID, req dto.CreateProposalRequest) (*model.ExchangeProposalModel, error) {
	senderID, err := uuid.Parse(req.ProposalAdSenderID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "proposal_ad_sender_id is not a valid UUID")
	}
	receiverID, err := uuid.Parse(req.ProposalAdReceiverID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "proposal_ad_receiver_id is not a valid UUID")
	}

	if senderID == receiverID {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Sender and receiver must be different ads")
	}

	senderAd, err := s.repo.FindAdByID(senderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Sender ad does not exist")
		}
		return nil, err
	}
	if _, err := s.repo.FindAdByID(receiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Receiver ad does not exist")
		}
		return nil, err
	}

	if !isSenderOwner(userID, senderAd) {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only send proposals from your own ad")
	}

	proposal := model.ExchangeProposalModel{
		ProposalAdSenderID:   senderID,
		ProposalAdReceiverID: receiverID,
		ProposalComment:      req.ProposalComment,
		ProposalStatus:       constants.ProposalStatusPending,
	}

	if err := s.repo.Create(&proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// =======================
// ✏️ Update status (receiver owner only)
// Body: harus persis satu field, dan field itu AllowedStatusField.
// =======================
func (s *ProposalService) UpdateStatus(userID, proposalID uuid.UUID, body map[string]any) (*model.ExchangeProposalModel, error) {
	var out *model.ExchangeProposalModel

	err := s.repo.InTx(func(r repository.ProposalRepository) error {
		proposal, err := r.FindByID(proposalID)
		if err != nil {
			return notFoundOr(err, "Proposal not found")
		}

		receiverAd, err := r.FindAdByID(proposal.ProposalAdReceiverID)
		if err != nil {
			return err
		}
		if !isReceiverOwner(userID, receiverAd) {
			return fiber.NewError(fiber.StatusForbidden, "You cannot update the status of this proposal")
		}

		if len(body) != 1 {
			return fiber.NewError(fiber.StatusBadRequest, "You may only update the field: "+AllowedStatusField)
		}
		raw, ok := body[AllowedStatusField]
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "You may only update the field: "+AllowedStatusField)
		}
		status, ok := raw.(string)
		if !ok || !constants.IsValidProposalStatus(status) {
			return fiber.NewError(fiber.StatusBadRequest, "proposal_status must be one of: pending, accepted, rejected")
		}

		// accepted/rejected bersifat final
		if proposal.ProposalStatus != constants.ProposalStatusPending {
			return fiber.NewError(fiber.StatusBadRequest, "Proposal has already been finalized")
		}

		if err := r.UpdateStatus(proposalID, status); err != nil {
			return err
		}
		proposal.ProposalStatus = status
		out = proposal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// =======================
// 🗑️ Delete (sender owner only)
// =======================
func (s *ProposalService) Delete(userID, proposalID uuid.UUID) error {
	return s.repo.InTx(func(r repository.ProposalRepository) error {
		proposal, err := r.FindByID(proposalID)
		if err != nil {
			return notFoundOr(err, "Proposal not found")
		}

		senderAd, err := r.FindAdByID(proposal.ProposalAdSenderID)
		if err != nil {
			return err
		}
		if !isSenderOwner(userID, senderAd) {
			return fiber.NewError(fiber.StatusForbidden, "You cannot delete someone else's proposal")
		}

		return r.Delete(proposalID)
	})
}
