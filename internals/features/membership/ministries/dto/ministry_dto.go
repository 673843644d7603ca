// internals/features/membership/ministries/dto/ministry_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	ministryModel "igrejaku_backend/internals/features/membership/ministries/model"
)

type CreateMinistryRequest struct {
	MinistryName           string  `json:"ministry_name" validate:"required,min=3,max=120"`
	MinistryDescription    *string `json:"ministry_description"`
	MinistryLeaderMemberID *string `json:"ministry_leader_member_id" validate:"omitempty,uuid"`
}

type UpdateMinistryRequest struct {
	MinistryName           *string `json:"ministry_name" validate:"omitempty,min=3,max=120"`
	MinistryDescription    *string `json:"ministry_description"`
	MinistryLeaderMemberID *string `json:"ministry_leader_member_id" validate:"omitempty,uuid"`
	MinistryIsActive       *bool   `json:"ministry_is_active"`
}

type AddMinistryMemberRequest struct {
	MemberID string  `json:"member_id" validate:"required,uuid"`
	Role     *string `json:"role" validate:"omitempty,max=80"`
}

func (r *CreateMinistryRequest) ToModel(churchID uuid.UUID) *ministryModel.MinistryModel {
	m := &ministryModel.MinistryModel{
		MinistryChurchID:    churchID,
		MinistryName:        strings.TrimSpace(r.MinistryName),
		MinistryDescription: r.MinistryDescription,
		MinistryIsActive:    true,
	}
	if r.MinistryLeaderMemberID != nil {
		if id, err := uuid.Parse(*r.MinistryLeaderMemberID); err == nil {
			m.MinistryLeaderMemberID = &id
		}
	}
	return m
}

func (r *UpdateMinistryRequest) ApplyToModel(m *ministryModel.MinistryModel) {
	if r.MinistryName != nil {
		m.MinistryName = strings.TrimSpace(*r.MinistryName)
	}
	if r.MinistryDescription != nil {
		m.MinistryDescription = r.MinistryDescription
	}
	if r.MinistryLeaderMemberID != nil {
		if id, err := uuid.Parse(*r.MinistryLeaderMemberID); err == nil {
			m.MinistryLeaderMemberID = &id
		}
	}
	if r.MinistryIsActive != nil {
		m.MinistryIsActive = *r.MinistryIsActive
	}
}
