// internals/features/membership/members/controller/member_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberDTO "igrejaku_backend/internals/features/membership/members/dto"
	memberModel "igrejaku_backend/internals/features/membership/members/model"
	helper "igrejaku_backend/internals/helpers"
)

type MemberController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db, Validate: validator.New()}
}

// POST /api/a/members
func (h *MemberController) Create(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	var req memberDTO.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	member := req.ToModel(churchID)
	if err := h.DB.Create(member).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao cadastrar membro")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Membro cadastrado ✅", member)
}

// GET /api/a/members
func (h *MemberController) List(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&memberModel.MemberModel{}).Where("member_church_id = ?", churchID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("member_full_name ILIKE ?", "%"+search+"%")
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("member_status = ?", strings.ToLower(status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar membros")
	}

	var members []memberModel.MemberModel
	if err := q.Order("member_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar membros")
	}

	return helper.Success(c, "OK", fiber.Map{
		"members":    members,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/a/members/:id
func (h *MemberController) Detail(c *fiber.Ctx) error {
	member, err := h.findScoped(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", member)
}

// PATCH /api/a/members/:id
func (h *MemberController) Update(c *fiber.Ctx) error {
	member, err := h.findScoped(c)
	if err != nil {
		return err
	}

	var req memberDTO.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(member)
	if err := h.DB.Save(member).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar membro")
	}
	return helper.Success(c, "Membro atualizado ✅", member)
}

// DELETE /api/a/members/:id (soft delete)
func (h *MemberController) Delete(c *fiber.Ctx) error {
	member, err := h.findScoped(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(member).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover membro")
	}
	return helper.Success(c, "Membro removido", nil)
}

func (h *MemberController) findScoped(c *fiber.Ctx) (*memberModel.MemberModel, error) {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return nil, err
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var member memberModel.MemberModel
	if err := h.DB.First(&member, "member_id = ? AND member_church_id = ?", memberID, churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Membro não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar membro")
	}
	return &member, nil
}
