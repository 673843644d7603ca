// internals/features/home/broadcasts/model/broadcast_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BroadcastModel é um comunicado da liderança para grupos de roles da igreja.
type BroadcastModel struct {
	BroadcastID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:broadcast_id" json:"broadcast_id"`

	BroadcastChurchID uuid.UUID `gorm:"type:uuid;not null;index;column:broadcast_church_id" json:"broadcast_church_id"`

	BroadcastTitle string `gorm:"size:150;not null;column:broadcast_title" json:"broadcast_title"`
	BroadcastBody  string `gorm:"type:text;not null;column:broadcast_body" json:"broadcast_body"`

	// roles destinatários; vazio = igreja inteira
	BroadcastTargetRoles pq.StringArray `gorm:"type:text[];column:broadcast_target_roles" json:"broadcast_target_roles"`

	// anexos/links/botões em formato livre do frontend
	BroadcastPayload datatypes.JSON `gorm:"column:broadcast_payload" json:"broadcast_payload,omitempty"`

	BroadcastPinned bool `gorm:"not null;default:false;column:broadcast_pinned" json:"broadcast_pinned"`

	BroadcastCreatedBy *uuid.UUID `gorm:"type:uuid;column:broadcast_created_by" json:"broadcast_created_by,omitempty"`

	BroadcastCreatedAt time.Time      `gorm:"column:broadcast_created_at;autoCreateTime" json:"broadcast_created_at"`
	BroadcastUpdatedAt *time.Time     `gorm:"column:broadcast_updated_at;autoUpdateTime" json:"broadcast_updated_at,omitempty"`
	BroadcastDeletedAt gorm.DeletedAt `gorm:"column:broadcast_deleted_at;index" json:"broadcast_deleted_at,omitempty"`
}

func (BroadcastModel) TableName() string { return "broadcasts" }
