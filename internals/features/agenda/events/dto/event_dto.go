// internals/features/agenda/events/dto/event_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	eventModel "igrejaku_backend/internals/features/agenda/events/model"
)

type CreateEventRequest struct {
	EventTitle       string     `json:"event_title" validate:"required,min=3,max=150"`
	EventDescription *string    `json:"event_description"`
	EventLocation    *string    `json:"event_location" validate:"omitempty,max=255"`
	EventStartsAt    time.Time  `json:"event_starts_at" validate:"required"`
	EventEndsAt      *time.Time `json:"event_ends_at"`
	EventIsPublic    *bool      `json:"event_is_public"`
}

type UpdateEventRequest struct {
	EventTitle       *string    `json:"event_title" validate:"omitempty,min=3,max=150"`
	EventDescription *string    `json:"event_description"`
	EventLocation    *string    `json:"event_location" validate:"omitempty,max=255"`
	EventStartsAt    *time.Time `json:"event_starts_at"`
	EventEndsAt      *time.Time `json:"event_ends_at"`
	EventIsPublic    *bool      `json:"event_is_public"`
}

func (r *CreateEventRequest) ToModel(churchID uuid.UUID, createdBy *uuid.UUID) *eventModel.EventModel {
	m := &eventModel.EventModel{
		EventChurchID:    churchID,
		EventTitle:       strings.TrimSpace(r.EventTitle),
		EventDescription: r.EventDescription,
		EventLocation:    r.EventLocation,
		EventStartsAt:    r.EventStartsAt,
		EventEndsAt:      r.EventEndsAt,
		EventCreatedBy:   createdBy,
	}
	if r.EventIsPublic != nil {
		m.EventIsPublic = *r.EventIsPublic
	}
	return m
}

func (r *UpdateEventRequest) ApplyToModel(m *eventModel.EventModel) {
	if r.EventTitle != nil {
		m.EventTitle = strings.TrimSpace(*r.EventTitle)
	}
	if r.EventDescription != nil {
		m.EventDescription = r.EventDescription
	}
	if r.EventLocation != nil {
		m.EventLocation = r.EventLocation
	}
	if r.EventStartsAt != nil {
		m.EventStartsAt = *r.EventStartsAt
	}
	if r.EventEndsAt != nil {
		m.EventEndsAt = r.EventEndsAt
	}
	if r.EventIsPublic != nil {
		m.EventIsPublic = *r.EventIsPublic
	}
}
