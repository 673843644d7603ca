// internals/features/home/broadcasts/dto/broadcast_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	broadcastModel "igrejaku_backend/internals/features/home/broadcasts/model"
)

type CreateBroadcastRequest struct {
	BroadcastTitle       string         `json:"broadcast_title" validate:"required,min=3,max=150"`
	BroadcastBody        string         `json:"broadcast_body" validate:"required"`
	BroadcastTargetRoles []string       `json:"broadcast_target_roles"`
	BroadcastPayload     datatypes.JSON `json:"broadcast_payload"`
	BroadcastPinned      *bool          `json:"broadcast_pinned"`
}

type UpdateBroadcastRequest struct {
	BroadcastTitle       *string        `json:"broadcast_title" validate:"omitempty,min=3,max=150"`
	BroadcastBody        *string        `json:"broadcast_body"`
	BroadcastTargetRoles []string       `json:"broadcast_target_roles"`
	BroadcastPayload     datatypes.JSON `json:"broadcast_payload"`
	BroadcastPinned      *bool          `json:"broadcast_pinned"`
}

func (r *CreateBroadcastRequest) ToModel(churchID uuid.UUID, createdBy *uuid.UUID) *broadcastModel.BroadcastModel {
	m := &broadcastModel.BroadcastModel{
		BroadcastChurchID:    churchID,
		BroadcastTitle:       strings.TrimSpace(r.BroadcastTitle),
		BroadcastBody:        r.BroadcastBody,
		BroadcastTargetRoles: pq.StringArray(r.BroadcastTargetRoles),
		BroadcastPayload:     r.BroadcastPayload,
		BroadcastCreatedBy:   createdBy,
	}
	if r.BroadcastPinned != nil {
		m.BroadcastPinned = *r.BroadcastPinned
	}
	return m
}

func (r *UpdateBroadcastRequest) ApplyToModel(m *broadcastModel.BroadcastModel) {
	if r.BroadcastTitle != nil {
		m.BroadcastTitle = strings.TrimSpace(*r.BroadcastTitle)
	}
	if r.BroadcastBody != nil {
		m.BroadcastBody = *r.BroadcastBody
	}
	if r.BroadcastTargetRoles != nil {
		m.BroadcastTargetRoles = pq.StringArray(r.BroadcastTargetRoles)
	}
	if r.BroadcastPayload != nil {
		m.BroadcastPayload = r.BroadcastPayload
	}
	if r.BroadcastPinned != nil {
		m.BroadcastPinned = *r.BroadcastPinned
	}
}
