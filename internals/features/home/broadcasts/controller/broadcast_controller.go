// internals/features/home/broadcasts/controller/broadcast_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	broadcastDTO "igrejaku_backend/internals/features/home/broadcasts/dto"
	broadcastModel "igrejaku_backend/internals/features/home/broadcasts/model"
	helper "igrejaku_backend/internals/helpers"
)

type BroadcastController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBroadcastController(db *gorm.DB) *BroadcastController {
	return &BroadcastController{DB: db, Validate: validator.New()}
}

// POST /api/a/broadcasts
func (h *BroadcastController) Create(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	var req broadcastDTO.CreateBroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	for _, role := range req.BroadcastTargetRoles {
		if !constants.IsValidRole(role) {
			return fiber.NewError(fiber.StatusBadRequest, "Role destinatário inválido: "+role)
		}
	}

	var createdBy *uuid.UUID
	if userID, err := helper.GetUserID(c); err == nil {
		createdBy = &userID
	}

	broadcast := req.ToModel(churchID, createdBy)
	if err := h.DB.Create(broadcast).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao publicar comunicado")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Comunicado publicado 🚀", broadcast)
}

// GET /api/a/broadcasts: todos os comunicados da igreja
func (h *BroadcastController) List(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&broadcastModel.BroadcastModel{}).Where("broadcast_church_id = ?", churchID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("broadcast_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar comunicados")
	}

	var broadcasts []broadcastModel.BroadcastModel
	if err := q.Order("broadcast_pinned DESC, broadcast_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&broadcasts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar comunicados")
	}

	return helper.Success(c, "OK", fiber.Map{
		"broadcasts": broadcasts,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/u/broadcasts: feed do usuário: sem destinatário (igreja inteira) ou
// com o role dele no array
func (h *BroadcastController) Feed(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	var broadcasts []broadcastModel.BroadcastModel
	if err := h.DB.
		Where("broadcast_church_id = ?", churchID).
		Where("broadcast_target_roles IS NULL OR cardinality(broadcast_target_roles) = 0 OR ? = ANY(broadcast_target_roles)", role).
		Order("broadcast_pinned DESC, broadcast_created_at DESC").
		Limit(50).
		Find(&broadcasts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar comunicados")
	}
	return helper.Success(c, "OK", broadcasts)
}

// PATCH /api/a/broadcasts/:id
func (h *BroadcastController) Update(c *fiber.Ctx) error {
	broadcast, err := h.findScoped(c)
	if err != nil {
		return err
	}

	var req broadcastDTO.UpdateBroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	for _, role := range req.BroadcastTargetRoles {
		if !constants.IsValidRole(role) {
			return fiber.NewError(fiber.StatusBadRequest, "Role destinatário inválido: "+role)
		}
	}

	req.ApplyToModel(broadcast)
	if err := h.DB.Save(broadcast).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar comunicado")
	}
	return helper.Success(c, "Comunicado atualizado ✅", broadcast)
}

// DELETE /api/a/broadcasts/:id
func (h *BroadcastController) Delete(c *fiber.Ctx) error {
	broadcast, err := h.findScoped(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(broadcast).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover comunicado")
	}
	return helper.Success(c, "Comunicado removido", nil)
}

func (h *BroadcastController) findScoped(c *fiber.Ctx) (*broadcastModel.BroadcastModel, error) {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return nil, err
	}
	broadcastID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var broadcast broadcastModel.BroadcastModel
	if err := h.DB.First(&broadcast, "broadcast_id = ? AND broadcast_church_id = ?", broadcastID, churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Comunicado não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar comunicado")
	}
	return &broadcast, nil
}
