package dto

import (
	"time"

	"barterku_backend/internals/features/ads/ads/model"
)

// ============================
// Response DTO
// ============================

type AdDTO struct {
	AdID          string    `json:"ad_id"`
	AdUserID      string    `json:"ad_user_id"`
	AdTitle       string    `json:"ad_title"`
	AdDescription string    `json:"ad_description"`
	AdImageURL    *string   `json:"ad_image_url"` // nullable
	AdCategory    string    `json:"ad_category"`
	AdCondition   string    `json:"ad_condition"`
	AdCreatedAt   time.Time `json:"ad_created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateAdRequest struct {
	AdTitle       string  `json:"ad_title" validate:"required,max=255"`
	AdDescription string  `json:"ad_description" validate:"required"`
	AdImageURL    *string `json:"ad_image_url" validate:"omitempty,url"` // optional
	AdCategory    string  `json:"ad_category" validate:"required,max=50"`
	AdCondition   string  `json:"ad_condition" validate:"required,oneof=new used"`
}

// ============================
// Update Request DTO (partial)
// ============================

type UpdateAdRequest struct {
	AdTitle       *string `json:"ad_title" validate:"omitempty,min=1,max=255"`
	AdDescription *string `json:"ad_description" validate:"omitempty,min=1"`
	AdImageURL    *string `json:"ad_image_url" validate:"omitempty,url"`
	AdCategory    *string `json:"ad_category" validate:"omitempty,min=1,max=50"`
	AdCondition   *string `json:"ad_condition" validate:"omitempty,oneof=new used"`
}

// ============================
// Converter
// ============================

func ToAdDTO(m model.AdModel) AdDTO {
	return AdDTO{
		AdID:          m.AdID.String(),
		AdUserID:      m.AdUserID.String(),
		AdTitle:       m.AdTitle,
		AdDescription: m.AdDescription,
		AdImageURL:    m.AdImageURL,
		AdCategory:    m.AdCategory,
		AdCondition:   m.AdCondition,
		AdCreatedAt:   m.AdCreatedAt,
	}
}

func ToAdDTOs(models []model.AdModel) []AdDTO {
	out := make([]AdDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToAdDTO(m))
	}
	return out
}
