package dto

import (
	"time"

	"barterku_backend/internals/features/users/auth/model"
)

// ============================
// Request DTO
// ============================

type RegisterRequest struct {
	UserName string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	UserName string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ============================
// Response DTO
// ============================

type UserDTO struct {
	ID        string    `json:"id"`
	UserName  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token,omitempty"`
	User         UserDTO `json:"user"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.ID.String(),
		UserName:  m.UserName,
		CreatedAt: m.CreatedAt,
	}
}
