// internals/features/membership/cells/controller/cell_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cellDTO "igrejaku_backend/internals/features/membership/cells/dto"
	cellModel "igrejaku_backend/internals/features/membership/cells/model"
	memberModel "igrejaku_backend/internals/features/membership/members/model"
	helper "igrejaku_backend/internals/helpers"
)

type CellController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCellController(db *gorm.DB) *CellController {
	return &CellController{DB: db, Validate: validator.New()}
}

// POST /api/a/cells
func (h *CellController) Create(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	var req cellDTO.CreateCellRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cell := req.ToModel(churchID)
	if err := h.DB.Create(cell).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar célula")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Célula criada ✅", cell)
}

// GET /api/a/cells
func (h *CellController) List(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&cellModel.CellModel{}).Where("cell_church_id = ?", churchID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("cell_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar células")
	}

	var cells []cellModel.CellModel
	if err := q.Order("cell_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&cells).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar células")
	}

	return helper.Success(c, "OK", fiber.Map{
		"cells":      cells,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/a/cells/:id
func (h *CellController) Detail(c *fiber.Ctx) error {
	cell, err := h.findScoped(c)
	if err != nil {
		return err
	}

	var links []cellModel.CellMemberModel
	if err := h.DB.Where("cell_member_cell_id = ?", cell.CellID).Find(&links).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar membros da célula")
	}

	return helper.Success(c, "OK", fiber.Map{
		"cell":    cell,
		"members": links,
	})
}

// PATCH /api/a/cells/:id
func (h *CellController) Update(c *fiber.Ctx) error {
	cell, err := h.findScoped(c)
	if err != nil {
		return err
	}

	var req cellDTO.UpdateCellRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(cell)
	if err := h.DB.Save(cell).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar célula")
	}
	return helper.Success(c, "Célula atualizada ✅", cell)
}

// DELETE /api/a/cells/:id
func (h *CellController) Delete(c *fiber.Ctx) error {
	cell, err := h.findScoped(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(cell).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover célula")
	}
	return helper.Success(c, "Célula removida", nil)
}

// POST /api/a/cells/:id/members
func (h *CellController) AddMember(c *fiber.Ctx) error {
	cell, err := h.findScoped(c)
	if err != nil {
		return err
	}

	var req cellDTO.AddCellMemberRequest
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

	var count int64
	if err := h.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ? AND member_church_id = ?", memberID, cell.CellChurchID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao validar membro")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Membro não encontrado nesta igreja")
	}

	link := cellModel.CellMemberModel{
		CellMemberCellID:   cell.CellID,
		CellMemberMemberID: memberID,
	}
	if err := h.DB.Create(&link).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Membro já está nesta célula")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao vincular membro")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Membro vinculado ✅", link)
}

// DELETE /api/a/cells/:id/members/:memberId
func (h *CellController) RemoveMember(c *fiber.Ctx) error {
	cell, err := h.findScoped(c)
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where(
		"cell_member_cell_id = ? AND cell_member_member_id = ?",
		cell.CellID, memberID,
	).Delete(&cellModel.CellMemberModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao desvincular membro")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Vínculo não encontrado")
	}
	return helper.Success(c, "Membro desvinculado", nil)
}

func (h *CellController) findScoped(c *fiber.Ctx) (*cellModel.CellModel, error) {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return nil, err
	}
	cellID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var cell cellModel.CellModel
	if err := h.DB.First(&cell, "cell_id = ? AND cell_church_id = ?", cellID, churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Célula não encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar célula")
	}
	return &cell, nil
}
