package dto

import (
	"time"

	"barterku_backend/internals/features/ads/proposals/model"
)

// ============================
// Response DTO
// ============================

type ExchangeProposalDTO struct {
	ProposalID           string    `json:"proposal_id"`
	ProposalAdSenderID   string    `json:"proposal_ad_sender_id"`
	ProposalAdReceiverID string    `json:"proposal_ad_receiver_id"`
	ProposalComment      string    `json:"proposal_comment"`
	ProposalStatus       string    `json:"proposal_status"`
	ProposalCreatedAt    time.Time `json:"proposal_created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateProposalRequest struct {
	ProposalAdSenderID   string `json:"proposal_ad_sender_id" validate:"required,uuid"`
	ProposalAdReceiverID string `json:"proposal_ad_receiver_id" validate:"required,uuid"`
	ProposalComment      string `json:"proposal_comment" validate:"required"`
}

// ============================
// Converter
// ============================

func ToExchangeProposalDTO(m model.ExchangeProposalModel) ExchangeProposalDTO {
	return ExchangeProposalDTO{
		ProposalID:           m.ProposalID.String(),
		ProposalAdSenderID:   m.ProposalAdSenderID.String(),
		ProposalAdReceiverID: m.ProposalAdReceiverID.String(),
		ProposalComment:      m.ProposalComment,
		ProposalStatus:       m.ProposalStatus,
		ProposalCreatedAt:    m.ProposalCreatedAt,
	}
}

func ToExchangeProposalDTOs(models []model.ExchangeProposalModel) []ExchangeProposalDTO {
	out := make([]ExchangeProposalDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToExchangeProposalDTO(m))
	}
	return out
}
