// internals/features/churches/tenancy/controller/church_view_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tenancyDTO "igrejaku_backend/internals/features/churches/tenancy/dto"
	tenancyService "igrejaku_backend/internals/features/churches/tenancy/service"
	helper "igrejaku_backend/internals/helpers"
)

type ChurchViewController struct {
	ScopeSvc *tenancyService.ScopeService
	Validate *validator.Validate
}

func NewChurchViewController(db *gorm.DB) *ChurchViewController {
	return &ChurchViewController{
		ScopeSvc: tenancyService.NewScopeService(db),
		Validate: validator.New(),
	}
}

func profileFromCtx(c *fiber.Ctx) (tenancyService.Profile, error) {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return tenancyService.Profile{}, err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return tenancyService.Profile{}, err
	}
	return tenancyService.Profile{
		UserID:   userID,
		Role:     role,
		ChurchID: helper.GetProfileChurchID(c),
	}, nil
}

// POST /api/o/church-view: superadmin entra na visão de uma igreja
func (h *ChurchViewController) Enter(c *fiber.Ctx) error {
	p, err := profileFromCtx(c)
	if err != nil {
		return err
	}

	var req tenancyDTO.EnterChurchViewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	churchID, err := uuid.Parse(req.ChurchID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "church_id inválido")
	}

	override, err := h.ScopeSvc.SwitchChurch(p, churchID)
	if err != nil {
		return helper.FromDomainError(err)
	}
	return helper.Success(c, "Visualizando igreja "+override.ChurchName, override)
}

// GET /api/o/church-view: override vigente (ou null)
func (h *ChurchViewController) Current(c *fiber.Ctx) error {
	p, err := profileFromCtx(c)
	if err != nil {
		return err
	}

	override, err := h.ScopeSvc.CurrentOverride(p.UserID)
	if err != nil {
		return helper.FromDomainError(err)
	}
	return helper.Success(c, "OK", override)
}

// DELETE /api/o/church-view: volta para a visão de plataforma
func (h *ChurchViewController) Exit(c *fiber.Ctx) error {
	p, err := profileFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.ScopeSvc.ExitChurchView(p); err != nil {
		return helper.FromDomainError(err)
	}
	return helper.Success(c, "Visão de plataforma restaurada", nil)
}
