// internals/features/agenda/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:event_id" json:"event_id"`

	EventChurchID uuid.UUID `gorm:"type:uuid;not null;index;column:event_church_id" json:"event_church_id"`

	EventTitle       string  `gorm:"size:150;not null;column:event_title" json:"event_title"`
	EventDescription *string `gorm:"type:text;column:event_description" json:"event_description,omitempty"`
	EventLocation    *string `gorm:"size:255;column:event_location" json:"event_location,omitempty"`

	EventStartsAt time.Time  `gorm:"not null;index;column:event_starts_at" json:"event_starts_at"`
	EventEndsAt   *time.Time `gorm:"column:event_ends_at" json:"event_ends_at,omitempty"`

	// eventos públicos aparecem na página aberta da igreja
	EventIsPublic bool `gorm:"not null;default:false;column:event_is_public" json:"event_is_public"`

	EventCreatedBy *uuid.UUID `gorm:"type:uuid;column:event_created_by" json:"event_created_by,omitempty"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt *time.Time     `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at,omitempty"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }
