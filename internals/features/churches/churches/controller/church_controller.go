// internals/features/churches/churches/controller/church_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cDTO "igrejaku_backend/internals/features/churches/churches/dto"
	cModel "igrejaku_backend/internals/features/churches/churches/model"
	helper "igrejaku_backend/internals/helpers"
)

type ChurchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewChurchController(db *gorm.DB) *ChurchController {
	return &ChurchController{DB: db, Validate: validator.New()}
}

/* ===================== HANDLERS ===================== */

// POST /api/o/churches (onboarding, superadmin)
func (h *ChurchController) Create(c *fiber.Ctx) error {
	var req cDTO.CreateChurchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()

	base := m.ChurchName
	if req.ChurchSlug != nil && strings.TrimSpace(*req.ChurchSlug) != "" {
		base = *req.ChurchSlug
	}
	slug, err := helper.GenerateUniqueSlug(h.DB, helper.SlugOptions{
		Table:            "churches",
		SlugColumn:       "church_slug",
		SoftDeleteColumn: "church_deleted_at",
		DefaultBase:      "igreja",
	}, base)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao gerar slug")
	}
	m.ChurchSlug = slug

	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar igreja")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Igreja criada", cDTO.NewChurchResponse(m))
}

// PATCH /api/a/church: admin edita a própria igreja (escopo efetivo)
func (h *ChurchController) UpdateScoped(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	return h.update(c, churchID)
}

// PATCH /api/o/churches/:id: superadmin edita qualquer igreja
func (h *ChurchController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	return h.update(c, id)
}

func (h *ChurchController) update(c *fiber.Ctx, id uuid.UUID) error {
	var req cDTO.UpdateChurchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findByID(id, false)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)

	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar igreja")
	}

	return helper.Success(c, "Igreja atualizada", cDTO.NewChurchResponse(m))
}

// POST /api/a/church/logo: upload do logo (convertido para webp)
func (h *ChurchController) UploadLogo(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Arquivo 'logo' obrigatório")
	}

	m, err := h.findByID(churchID, false)
	if err != nil {
		return err
	}

	url, objectKey, err := helper.UploadLogoWebp("churches/"+churchID.String(), fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	// remove o logo antigo do bucket (best effort)
	if m.ChurchLogoObjectKey != nil {
		_ = helper.DeleteFromSupabase("logos", *m.ChurchLogoObjectKey)
	}

	m.ChurchLogoURL = &url
	m.ChurchLogoObjectKey = &objectKey
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar logo")
	}

	return helper.Success(c, "Logo atualizado", cDTO.NewChurchResponse(m))
}

// DELETE /api/o/churches/:id (soft delete; ?hard=true é destrutivo)
func (h *ChurchController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	hard := strings.EqualFold(c.Query("hard"), "true")

	m, err := h.findByID(id, hard)
	if err != nil {
		return err
	}

	if hard {
		if err := h.DB.Unscoped().Delete(&cModel.ChurchModel{}, "church_id = ?", m.ChurchID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir permanentemente")
		}
		return helper.Success(c, "Igreja excluída permanentemente", fiber.Map{"id": m.ChurchID})
	}

	if err := h.DB.Delete(&cModel.ChurchModel{}, "church_id = ?", m.ChurchID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao excluir igreja")
	}
	return helper.Success(c, "Igreja excluída", fiber.Map{"id": m.ChurchID})
}

// POST /api/o/churches/:id/restore
func (h *ChurchController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	m, err := h.findByID(id, true)
	if err != nil {
		return err
	}
	if !m.ChurchDeletedAt.Valid {
		return fiber.NewError(fiber.StatusBadRequest, "Igreja não está excluída")
	}

	if err := h.DB.Unscoped().
		Model(&cModel.ChurchModel{}).
		Where("church_id = ?", id).
		Update("church_deleted_at", nil).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao restaurar igreja")
	}

	return helper.Success(c, "Igreja restaurada", cDTO.NewChurchResponse(m))
}

// GET /api/a/church: detalhe do escopo efetivo
func (h *ChurchController) DetailScoped(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	m, err := h.findByID(churchID, false)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", cDTO.NewChurchResponse(m))
}

// GET /api/public/churches/:slug: perfil público por slug
func (h *ChurchController) DetailBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Slug obrigatório")
	}

	var m cModel.ChurchModel
	if err := h.DB.First(&m, "lower(church_slug) = lower(?)", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Igreja não encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar igreja")
	}
	return helper.Success(c, "OK", cDTO.NewChurchResponse(&m))
}

// GET /api/o/churches: listagem da plataforma, paginada + busca
func (h *ChurchController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&cModel.ChurchModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("church_name ILIKE ? OR church_slug ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar igrejas")
	}

	var rows []cModel.ChurchModel
	if err := q.Order("church_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar igrejas")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      cDTO.NewChurchResponseList(rows),
		"pagination": helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
	})
}

/* ===================== INTERNAL ===================== */

func (h *ChurchController) findByID(id uuid.UUID, unscoped bool) (*cModel.ChurchModel, error) {
	var m cModel.ChurchModel
	q := h.DB
	if unscoped {
		q = q.Unscoped()
	}
	if err := q.First(&m, "church_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Igreja não encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar igreja")
	}
	return &m, nil
}
