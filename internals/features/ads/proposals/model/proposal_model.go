package model

import (
	"time"

	"github.com/google/uuid"
)

type ExchangeProposalModel struct {
	ProposalID           uuid.UUID `gorm:"column:proposal_id;type:uuid;default:gen_random_uuid();primaryKey" json:"proposal_id"`
	ProposalAdSenderID   uuid.UUID `gorm:"column:proposal_ad_sender_id;type:uuid;not null;index" json:"proposal_ad_sender_id"`
	ProposalAdReceiverID uuid.UUID `gorm:"column:proposal_ad_receiver_id;type:uuid;not null;index" json:"proposal_ad_receiver_id"`
	ProposalComment      string    `gorm:"column:proposal_comment;type:text;not null" json:"proposal_comment"`
	ProposalStatus       string    `gorm:"column:proposal_status;size:50;not null;default:'pending'" json:"proposal_status"`
	ProposalCreatedAt    time.Time `gorm:"column:proposal_created_at;autoCreateTime" json:"proposal_created_at"`
}

// TableName sets the name of the table
func (ExchangeProposalModel) TableName() string {
	return "exchange_proposals"
}
