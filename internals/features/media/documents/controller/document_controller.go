// internals/features/media/documents/controller/document_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	documentModel "igrejaku_backend/internals/features/media/documents/model"
	helper "igrejaku_backend/internals/helpers"
)

type DocumentController struct {
	DB *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

// POST /api/a/documents: multipart: file + title (+ category)
func (h *DocumentController) Upload(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title é obrigatório")
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Arquivo ausente (campo file)")
	}

	fileURL, objectKey, err := helper.UploadDocument("churches/"+churchID.String(), fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	var uploadedBy *uuid.UUID
	if userID, err := helper.GetUserID(c); err == nil {
		uploadedBy = &userID
	}
	var category *string
	if cat := strings.TrimSpace(c.FormValue("category")); cat != "" {
		category = &cat
	}

	doc := documentModel.DocumentModel{
		DocumentChurchID:   churchID,
		DocumentTitle:      title,
		DocumentCategory:   category,
		DocumentFileURL:    fileURL,
		DocumentObjectKey:  objectKey,
		DocumentMimeType:   fileHeader.Header.Get("Content-Type"),
		DocumentSizeBytes:  fileHeader.Size,
		DocumentUploadedBy: uploadedBy,
	}
	if err := h.DB.Create(&doc).Error; err != nil {
		// arquivo órfão no storage é tolerável; o registro é a fonte de verdade
		log.Println("[ERROR] Falha ao salvar documento, removendo objeto:", err)
		_ = helper.DeleteFromSupabase("documents", objectKey)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar documento")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Documento enviado ✅", doc)
}

// GET /api/a/documents
func (h *DocumentController) List(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&documentModel.DocumentModel{}).Where("document_church_id = ?", churchID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("document_title ILIKE ?", "%"+search+"%")
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("document_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar documentos")
	}

	var docs []documentModel.DocumentModel
	if err := q.Order("document_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&docs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar documentos")
	}

	return helper.Success(c, "OK", fiber.Map{
		"documents":  docs,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/a/documents/:id
func (h *DocumentController) Detail(c *fiber.Ctx) error {
	doc, err := h.findScoped(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", doc)
}

// DELETE /api/a/documents/:id: remove o registro e o objeto no storage
func (h *DocumentController) Delete(c *fiber.Ctx) error {
	doc, err := h.findScoped(c)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(doc).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover documento")
	}
	if err := helper.DeleteFromSupabase("documents", doc.DocumentObjectKey); err != nil {
		log.Println("[WARN] Falha ao remover objeto do storage:", err)
	}
	return helper.Success(c, "Documento removido", nil)
}

func (h *DocumentController) findScoped(c *fiber.Ctx) (*documentModel.DocumentModel, error) {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return nil, err
	}
	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var doc documentModel.DocumentModel
	if err := h.DB.First(&doc, "document_id = ? AND document_church_id = ?", docID, churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Documento não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar documento")
	}
	return &doc, nil
}
