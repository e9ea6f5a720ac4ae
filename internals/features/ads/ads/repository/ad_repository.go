// internals/features/ads/ads/repository/ad_repository.go
package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"barterku_backend/internals/features/ads/ads/model"
	proposalModel "barterku_backend/internals/features/ads/proposals/model"
)

// AdListFilter: filter opsional untuk listing iklan.
type AdListFilter struct {
	Query     string // contains (case-insensitive) pada title/description
	Category  string // exact match
	Condition string // exact match
}

type AdRepository interface {
	// InTx menjalankan fn dalam satu transaksi database.
	InTx(fn func(r AdRepository) error) error

	FindByID(id uuid.UUID) (*model.AdModel, error)
	List(f AdListFilter, limit, offset int) ([]model.AdModel, int64, error)
	Create(ad *model.AdModel) error
	Save(ad *model.AdModel) error
	Delete(id uuid.UUID) error
	// DeleteProposalsByAd menghapus semua proposal yang memakai iklan ini
	// sebagai sender ATAU receiver (cascade eksplisit).
	DeleteProposalsByAd(adID uuid.UUID) error
}

type gormAdRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) AdRepository {
	return &gormAdRepository{db: db}
}

func (r *gormAdRepository) InTx(fn func(tr AdRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormAdRepository{db: tx})
	})
}

func (r *gormAdRepository) FindByID(id uuid.UUID) (*model.AdModel, error) {
	var ad model.AdModel
	if err := r.db.First(&ad, "ad_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *gormAdRepository) List(f AdListFilter, limit, offset int) ([]model.AdModel, int64, error) {
	q := r.db.Model(&model.AdModel{})

	if s := strings.TrimSpace(f.Query); s != "" {
		pattern := "%" + s + "%"
		q = q.Where("ad_title ILIKE ? OR ad_description ILIKE ?", pattern, pattern)
	}
	if f.Category != "" {
		q = q.Where("ad_category = ?", f.Category)
	}
	if f.Condition != "" {
		q = q.Where("ad_condition = ?", f.Condition)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ads []model.AdModel
	if err := q.
		Order("ad_created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ads).Error; err != nil {
		return nil, 0, err
	}

	return ads, total, nil
}

func (r *gormAdRepository) Create(ad *model.AdModel) error {
	return r.db.Create(ad).Error
}

func (r *gormAdRepository) Save(ad *model.AdModel) error {
	return r.db.Save(ad).Error
}

func (r *gormAdRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.AdModel{}, "ad_id = ?", id).Error
}

func (r *gormAdRepository) DeleteProposalsByAd(adID uuid.UUID) error {
	return r.db.
		Where("proposal_ad_sender_id = ? OR proposal_ad_receiver_id = ?", adID, adID).
		Delete(&proposalModel.ExchangeProposalModel{}).Error
}
