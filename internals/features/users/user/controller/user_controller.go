// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	authService "igrejaku_backend/internals/features/users/auth/service"
	userDTO "igrejaku_backend/internals/features/users/user/dto"
	userModel "igrejaku_backend/internals/features/users/user/model"
	helper "igrejaku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

/* ===================== PERFIL (/api/u) ===================== */

// GET /api/u/users/me
func (h *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := h.findByID(userID)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", userDTO.NewUserResponse(user))
}

// PATCH /api/u/users/me
func (h *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req userDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := h.findByID(userID)
	if err != nil {
		return err
	}
	if req.UserName != nil {
		user.UserName = strings.TrimSpace(*req.UserName)
	}
	if err := h.DB.Save(user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar o perfil")
	}
	return helper.Success(c, "Perfil atualizado ✅", userDTO.NewUserResponse(user))
}

// POST /api/u/users/me/password
func (h *UserController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req userDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := authService.ValidatePasswordStrength(req.NewPassword); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := h.findByID(userID)
	if err != nil {
		return err
	}
	if err := authService.CheckPasswordHash(user.UserPassword, req.CurrentPassword); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Senha atual incorreta")
	}

	hash, err := authService.HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao processar a senha")
	}
	if err := h.DB.Model(user).Update("user_password", hash).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao trocar a senha")
	}
	return helper.Success(c, "Senha alterada ✅", nil)
}

/* ===================== ADMIN (/api/a) ===================== */

// GET /api/a/users: usuários da igreja no escopo
func (h *UserController) List(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&userModel.UserModel{}).Where("user_church_id = ?", churchID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar usuários")
	}

	var users []userModel.UserModel
	if err := q.Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar usuários")
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      userDTO.NewUserResponseList(users),
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// PATCH /api/a/users/:id/role
func (h *UserController) ChangeRole(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	target, err := h.findScoped(c, churchID)
	if err != nil {
		return err
	}

	var req userDTO.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	// superadmin é role de plataforma, nunca concedido por admin de igreja
	if !constants.IsValidRole(req.UserRole) || req.UserRole == constants.RoleSuperadmin {
		return fiber.NewError(fiber.StatusBadRequest, "Role inválido")
	}

	if err := h.DB.Model(target).Update("user_role", req.UserRole).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao alterar role")
	}
	target.UserRole = req.UserRole
	return helper.Success(c, "Role atualizado ✅", userDTO.NewUserResponse(target))
}

// PATCH /api/a/users/:id/active: ativa/desativa a conta
func (h *UserController) SetActive(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	target, err := h.findScoped(c, churchID)
	if err != nil {
		return err
	}

	var req struct {
		UserIsActive *bool `json:"user_is_active"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserIsActive == nil {
		return fiber.NewError(fiber.StatusBadRequest, "user_is_active é obrigatório")
	}

	if err := h.DB.Model(target).Update("user_is_active", *req.UserIsActive).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar a conta")
	}
	target.UserIsActive = *req.UserIsActive
	msg := "Conta reativada ✅"
	if !target.UserIsActive {
		msg = "Conta desativada"
	}
	return helper.Success(c, msg, userDTO.NewUserResponse(target))
}

/* ===================== INTERNAL ===================== */

func (h *UserController) findByID(userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar usuário")
	}
	return &user, nil
}

// findScoped garante que o alvo pertence à igreja do escopo da sessão.
func (h *UserController) findScoped(c *fiber.Ctx, churchID uuid.UUID) (*userModel.UserModel, error) {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	var user userModel.UserModel
	if err := h.DB.First(&user, "user_id = ? AND user_church_id = ?", targetID, churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado nesta igreja")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar usuário")
	}
	return &user, nil
}
