package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barterku_backend/internals/features/users/auth/repository"
	"barterku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: service.NewAuthService(repository.NewAuthRepository(db))}
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	return ac.Service.Me(c)
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return ac.Service.Register(c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return ac.Service.Login(c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return ac.Service.RefreshToken(c)
}
