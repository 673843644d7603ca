// internals/features/membership/ministries/controller/ministry_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "igrejaku_backend/internals/features/membership/members/model"
	ministryDTO "igrejaku_backend/internals/features/membership/ministries/dto"
	ministryModel "igrejaku_backend/internals/features/membership/ministries/model"
	helper "igrejaku_backend/internals/helpers"
)

type MinistryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMinistryController(db *gorm.DB) *MinistryController {
	return &MinistryController{DB: db, Validate: validator.New()}
}

// POST /api/a/ministries
func (h *MinistryController) Create(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	var req ministryDTO.CreateMinistryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ministry := req.ToModel(churchID)
	if err := h.DB.Create(ministry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar ministério")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Ministério criado ✅", ministry)
}

// GET /api/a/ministries
func (h *MinistryController) List(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&ministryModel.MinistryModel{}).Where("ministry_church_id = ?", churchID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("ministry_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar ministérios")
	}

	var ministries []ministryModel.MinistryModel
	if err := q.Order("ministry_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ministries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar ministérios")
	}

	return helper.Success(c, "OK", fiber.Map{
		"ministries": ministries,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/a/ministries/:id: detalhe com os membros vinculados
func (h *MinistryController) Detail(c *fiber.Ctx) error {
	ministry, err := h.findScoped(c)
	if err != nil {
		return err
	}

	var links []ministryModel.MinistryMemberModel
	if err := h.DB.Where("ministry_member_ministry_id = ?", ministry.MinistryID).
		Find(&links).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar membros do ministério")
	}

	return helper.Success(c, "OK", fiber.Map{
		"ministry": ministry,
		"members":  links,
	})
}

// PATCH /api/a/ministries/:id
func (h *MinistryController) Update(c *fiber.Ctx) error {
	ministry, err := h.findScoped(c)
	if err != nil {
		return err
	}

	var req ministryDTO.UpdateMinistryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(ministry)
	if err := h.DB.Save(ministry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar ministério")
	}
	return helper.Success(c, "Ministério atualizado ✅", ministry)
}

// DELETE /api/a/ministries/:id
func (h *MinistryController) Delete(c *fiber.Ctx) error {
	ministry, err := h.findScoped(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(ministry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover ministério")
	}
	return helper.Success(c, "Ministério removido", nil)
}

// POST /api/a/ministries/:id/members
func (h *MinistryController) AddMember(c *fiber.Ctx) error {
	ministry, err := h.findScoped(c)
	if err != nil {
		return err
	}

	var req ministryDTO.AddMinistryMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "member_id inválido")
	}

	// membro precisa ser da mesma igreja do ministério
	var count int64
	if err := h.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ? AND member_church_id = ?", memberID, ministry.MinistryChurchID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao validar membro")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Membro não encontrado nesta igreja")
	}

	link := ministryModel.MinistryMemberModel{
		MinistryMemberMinistryID: ministry.MinistryID,
		MinistryMemberMemberID:   memberID,
		MinistryMemberRole:       req.Role,
	}
	if err := h.DB.Create(&link).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Membro já está neste ministério")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao vincular membro")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Membro vinculado ✅", link)
}

// DELETE /api/a/ministries/:id/members/:memberId
func (h *MinistryController) RemoveMember(c *fiber.Ctx) error {
	ministry, err := h.findScoped(c)
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where(
		"ministry_member_ministry_id = ? AND ministry_member_member_id = ?",
		ministry.MinistryID, memberID,
	).Delete(&ministryModel.MinistryMemberModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao desvincular membro")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Vínculo não encontrado")
	}
	return helper.Success(c, "Membro desvinculado", nil)
}

func (h *MinistryController) findScoped(c *fiber.Ctx) (*ministryModel.MinistryModel, error) {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return nil, err
	}
	ministryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var ministry ministryModel.MinistryModel
	if err := h.DB.First(&ministry, "ministry_id = ? AND ministry_church_id = ?", ministryID, churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ministério não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar ministério")
	}
	return &ministry, nil
}
