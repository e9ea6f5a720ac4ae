package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barterku_backend/internals/constants"
	"barterku_backend/internals/features/ads/ads/dto"
	"barterku_backend/internals/features/ads/ads/model"
	"barterku_backend/internals/features/ads/ads/repository"
)

type AdService struct {
	repo repository.AdRepository
}

func NewAdService(repo repository.AdRepository) *AdService {
	return &AdService{repo: repo}
}

// isOwner: satu-satunya predikat otorisasi untuk iklan.
func isOwner(userID uuid.UUID, ad *model.AdModel) bool {
	return ad.AdUserID == userID
}

// normalizeImageURL: string kosong diperlakukan sama dengan tidak diisi (NULL).
func normalizeImageURL(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	return p
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
func (s *AdService) List(f repository.AdListFilter, limit, offset int) ([]model.AdModel, int64, error) {
	return s.repo.List(f, limit, offset)
}

// =======================
// ➕ Create
// =======================
func (s *AdService) Create(userID uuid.UUID, req dto.CreateAdRequest) (*model.AdModel, error) {
	if !constants.IsValidCondition(req.AdCondition) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ad_condition must be one of: new, used")
	}

	ad := model.AdModel{
		AdUserID:      userID,
		AdTitle:       req.AdTitle,
		AdDescription: req.AdDescription,
		AdImageURL:    normalizeImageURL(req.AdImageURL),
		AdCategory:    req.AdCategory,
		AdCondition:   req.AdCondition,
	}

	if err := s.repo.Create(&ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

// =======================
// ✏️ Update (partial, owner only)
// =======================
func (s *AdService) Update(userID, adID uuid.UUID, req dto.UpdateAdRequest) (*model.AdModel, error) {
	var out *model.AdModel

	err := s.repo.InTx(func(r repository.AdRepository) error {
		ad, err := r.FindByID(adID)
		if err != nil {
			return notFoundOr(err, "Ad not found")
		}
		if !isOwner(userID, ad) {
			return fiber.NewError(fiber.StatusForbidden, "You cannot modify someone else's ad")
		}

		if req.AdTitle != nil {
			ad.AdTitle = *req.AdTitle
		}
		if req.AdDescription != nil {
			ad.AdDescription = *req.AdDescription
		}
		if req.AdImageURL != nil {
			ad.AdImageURL = normalizeImageURL(req.AdImageURL)
		}
		if req.AdCategory != nil {
			ad.AdCategory = *req.AdCategory
		}
		if req.AdCondition != nil {
			if !constants.IsValidCondition(*req.AdCondition) {
				return fiber.NewError(fiber.StatusBadRequest, "ad_condition must be one of: new, used")
			}
			ad.AdCondition = *req.AdCondition
		}

		if err := r.Save(ad); err != nil {
			return err
		}
		out = ad
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// =======================
// 🗑️ Delete (owner only, cascade ke proposals)
// =======================
func (s *AdService) Delete(userID, adID uuid.UUID) error {
	return s.repo.InTx(func(r repository.AdRepository) error {
		ad, err := r.FindByID(adID)
		if err != nil {
			return notFoundOr(err, "Ad not found")
		}
		if !isOwner(userID, ad) {
			return fiber.NewError(fiber.StatusForbidden, "You cannot delete someone else's ad")
		}

		// cascade: proposal yang memakai iklan ini (sender/receiver) ikut terhapus
		if err := r.DeleteProposalsByAd(adID); err != nil {
			return err
		}
		return r.Delete(adID)
	})
}
