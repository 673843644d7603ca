// internals/features/agenda/events/controller/event_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventDTO "igrejaku_backend/internals/features/agenda/events/dto"
	eventModel "igrejaku_backend/internals/features/agenda/events/model"
	helper "igrejaku_backend/internals/helpers"
)

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validate: validator.New()}
}

// POST /api/a/events
func (h *EventController) Create(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	var req eventDTO.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.EventEndsAt != nil && req.EventEndsAt.Before(req.EventStartsAt) {
		return fiber.NewError(fiber.StatusBadRequest, "event_ends_at não pode ser antes do início")
	}

	var createdBy *uuid.UUID
	if userID, err := helper.GetUserID(c); err == nil {
		createdBy = &userID
	}

	event := req.ToModel(churchID, createdBy)
	if err := h.DB.Create(event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar evento")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Evento criado ✅", event)
}

// GET /api/a/events: agenda da igreja (?from=&to=&search=)
func (h *EventController) List(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&eventModel.EventModel{}).Where("event_church_id = ?", churchID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("event_title ILIKE ?", "%"+search+"%")
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("event_starts_at >= ?", t)
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("event_starts_at < ?", t.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar eventos")
	}

	var events []eventModel.EventModel
	if err := q.Order("event_starts_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&events).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar eventos")
	}

	return helper.Success(c, "OK", fiber.Map{
		"events":     events,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/u/events/upcoming: próximos eventos da igreja do usuário
func (h *EventController) Upcoming(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	var events []eventModel.EventModel
	if err := h.DB.
		Where("event_church_id = ? AND event_starts_at >= ?", churchID, time.Now().UTC()).
		Order("event_starts_at ASC").
		Limit(20).
		Find(&events).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar eventos")
	}
	return helper.Success(c, "OK", events)
}

// GET /api/a/events/:id
func (h *EventController) Detail(c *fiber.Ctx) error {
	event, err := h.findScoped(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", event)
}

// PATCH /api/a/events/:id
func (h *EventController) Update(c *fiber.Ctx) error {
	event, err := h.findScoped(c)
	if err != nil {
		return err
	}

	var req eventDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(event)
	if event.EventEndsAt != nil && event.EventEndsAt.Before(event.EventStartsAt) {
		return fiber.NewError(fiber.StatusBadRequest, "event_ends_at não pode ser antes do início")
	}
	if err := h.DB.Save(event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar evento")
	}
	return helper.Success(c, "Evento atualizado ✅", event)
}

// DELETE /api/a/events/:id
func (h *EventController) Delete(c *fiber.Ctx) error {
	event, err := h.findScoped(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover evento")
	}
	return helper.Success(c, "Evento removido", nil)
}

func (h *EventController) findScoped(c *fiber.Ctx) (*eventModel.EventModel, error) {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return nil, err
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var event eventModel.EventModel
	if err := h.DB.First(&event, "event_id = ? AND event_church_id = ?", eventID, churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Evento não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar evento")
	}
	return &event, nil
}
