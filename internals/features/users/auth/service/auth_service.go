package service

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"barterku_backend/internals/configs"
	authDTO "barterku_backend/internals/features/users/auth/dto"
	authHelper "barterku_backend/internals/features/users/auth/helper"
	userModel "barterku_backend/internals/features/users/auth/model"
	authRepo "barterku_backend/internals/features/users/auth/repository"
	helpers "barterku_backend/internals/helpers"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

var validateAuth = validator.New()

type AuthService struct {
	repo authRepo.AuthRepository
}

func NewAuthService(repo authRepo.AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

/* ==========================
   REGISTER
========================== */

func (s *AuthService) Register(c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.UserName = strings.TrimSpace(input.UserName)

	if err := validateAuth.Struct(&input); err != nil {
		return helpers.JsonValidationError(c, helpers.FormatValidationErrors(err))
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName: input.UserName,
		Password: passwordHash,
	}

	if err := s.repo.CreateUser(&user); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Username already taken")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", authDTO.ToUserDTO(user))
}

/* ==========================
   LOGIN (username + password)
========================== */

func (s *AuthService) Login(c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.UserName = strings.TrimSpace(input.UserName)

	if err := validateAuth.Struct(&input); err != nil {
		return helpers.JsonValidationError(c, helpers.FormatValidationErrors(err))
	}

	user, err := s.repo.FindUserByUsername(input.UserName)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	return issueTokens(c, *user)
}

/* ==========================
   REFRESH TOKEN
========================== */

func (s *AuthService) RefreshToken(c *fiber.Ctx) error {
	var input authDTO.RefreshRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if strings.TrimSpace(input.RefreshToken) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "refresh_token wajib diisi")
	}

	secret, err := getRefreshSecret()
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(input.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	accessToken, err := signAccessToken(*user)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	return helpers.JsonOK(c, "Token refreshed", authDTO.TokenResponse{
		AccessToken: accessToken,
		User:        authDTO.ToUserDTO(*user),
	})
}

/* ==========================
   ME
========================== */

func (s *AuthService) Me(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helpers.JsonOK(c, "ok", authDTO.ToUserDTO(*user))
}

/* ==========================
   ISSUE TOKENS + Response
========================== */

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func signAccessToken(user userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, nowUTC()))
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	return signed, nil
}

func signRefreshToken(userID uuid.UUID) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(userID, nowUTC()))
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	return signed, nil
}

func issueTokens(c *fiber.Ctx, user userModel.UserModel) error {
	accessToken, err := signAccessToken(user)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	refreshToken, err := signRefreshToken(user.ID)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	return helpers.JsonOK(c, "Login successful", authDTO.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         authDTO.ToUserDTO(user),
	})
}
