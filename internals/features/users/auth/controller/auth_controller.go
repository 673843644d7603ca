// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "igrejaku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (h *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(h.DB, c)
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(h.DB, c)
}

func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(h.DB, c)
}

func (h *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(h.DB, c)
}

func (h *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(h.DB, c)
}
