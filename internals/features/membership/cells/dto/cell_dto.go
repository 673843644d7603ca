// internals/features/membership/cells/dto/cell_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	cellModel "igrejaku_backend/internals/features/membership/cells/model"
)

type CreateCellRequest struct {
	CellName           string  `json:"cell_name" validate:"required,min=3,max=120"`
	CellAddress        *string `json:"cell_address" validate:"omitempty,max=255"`
	CellMeetingWeekday *int    `json:"cell_meeting_weekday" validate:"omitempty,min=0,max=6"`
	CellMeetingTime    *string `json:"cell_meeting_time" validate:"omitempty,len=5"`
	CellLeaderMemberID *string `json:"cell_leader_member_id" validate:"omitempty,uuid"`
}

type UpdateCellRequest struct {
	CellName           *string `json:"cell_name" validate:"omitempty,min=3,max=120"`
	CellAddress        *string `json:"cell_address" validate:"omitempty,max=255"`
	CellMeetingWeekday *int    `json:"cell_meeting_weekday" validate:"omitempty,min=0,max=6"`
	CellMeetingTime    *string `json:"cell_meeting_time" validate:"omitempty,len=5"`
	CellLeaderMemberID *string `json:"cell_leader_member_id" validate:"omitempty,uuid"`
	CellIsActive       *bool   `json:"cell_is_active"`
}

type AddCellMemberRequest struct {
	MemberID string `json:"member_id" validate:"required,uuid"`
}

func (r *CreateCellRequest) ToModel(churchID uuid.UUID) *cellModel.CellModel {
	m := &cellModel.CellModel{
		CellChurchID:       churchID,
		CellName:           strings.TrimSpace(r.CellName),
		CellAddress:        r.CellAddress,
		CellMeetingWeekday: r.CellMeetingWeekday,
		CellMeetingTime:    r.CellMeetingTime,
		CellIsActive:       true,
	}
	if r.CellLeaderMemberID != nil {
		if id, err := uuid.Parse(*r.CellLeaderMemberID); err == nil {
			m.CellLeaderMemberID = &id
		}
	}
	return m
}

func (r *UpdateCellRequest) ApplyToModel(m *cellModel.CellModel) {
	if r.CellName != nil {
		m.CellName = strings.TrimSpace(*r.CellName)
	}
	if r.CellAddress != nil {
		m.CellAddress = r.CellAddress
	}
	if r.CellMeetingWeekday != nil {
		m.CellMeetingWeekday = r.CellMeetingWeekday
	}
	if r.CellMeetingTime != nil {
		m.CellMeetingTime = r.CellMeetingTime
	}
	if r.CellLeaderMemberID != nil {
		if id, err := uuid.Parse(*r.CellLeaderMemberID); err == nil {
			m.CellLeaderMemberID = &id
		}
	}
	if r.CellIsActive != nil {
		m.CellIsActive = *r.CellIsActive
	}
}
