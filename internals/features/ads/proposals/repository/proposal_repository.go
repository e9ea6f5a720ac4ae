// internals/features/ads/proposals/repository/proposal_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	adModel "barterku_backend/internals/features/ads/ads/model"
	"barterku_backend/internals/features/ads/proposals/model"
)

// ProposalListFilter: filter opsional untuk listing proposal.
type ProposalListFilter struct {
	AdSenderID   *uuid.UUID
	AdReceiverID *uuid.UUID
	Status       string
}

type ProposalRepository interface {
	// InTx menjalankan fn dalam satu transaksi database.
	InTx(fn func(r ProposalRepository) error) error

	FindByID(id uuid.UUID) (*model.ExchangeProposalModel, error)
	List(f ProposalListFilter, limit, offset int) ([]model.ExchangeProposalModel, int64, error)
	Create(p *model.ExchangeProposalModel) error
	UpdateStatus(id uuid.UUID, status string) error
	Delete(id uuid.UUID) error

	// FindAdByID dipakai untuk cek pemilik iklan sender/receiver.
	FindAdByID(id uuid.UUID) (*adModel.AdModel, error)
}

type gormProposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &gormProposalRepository{db: db}
}

func (r *gormProposalRepository) InTx(fn func(tr ProposalRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormProposalRepository{db: tx})
	})
}

func (r *gormProposalRepository) FindByID(id uuid.UUID) (*model.ExchangeProposalModel, error) {
	var proposal model.ExchangeProposalModel
	if err := r.db.First(&proposal, "proposal_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *gormProposalRepository) List(f ProposalListFilter, limit, offset int) ([]model.ExchangeProposalModel, int64, error) {
	q := r.db.Model(&model.ExchangeProposalModel{})

	if f.AdSenderID != nil {
		q = q.Where("proposal_ad_sender_id = ?", *f.AdSenderID)
	}
	if f.AdReceiverID != nil {
		q = q.Where("proposal_ad_receiver_id = ?", *f.AdReceiverID)
	}
	if f.Status != "" {
		q = q.Where("proposal_status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var proposals []model.ExchangeProposalModel
	if err := q.
		Order("proposal_created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&proposals).Error; err != nil {
		return nil, 0, err
	}

	return proposals, total, nil
}

func (r *gormProposalRepository) Create(p *model.ExchangeProposalModel) error {
	return r.db.Create(p).Error
}

func (r *gormProposalRepository) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&model.ExchangeProposalModel{}).
		Where("proposal_id = ?", id).
		Update("proposal_status", status).Error
}

func (r *gormProposalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.ExchangeProposalModel{}, "proposal_id = ?", id).Error
}

func (r *gormProposalRepository) FindAdByID(id uuid.UUID) (*adModel.AdModel, error) {
	var ad adModel.AdModel
	if err := r.db.First(&ad, "ad_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}
