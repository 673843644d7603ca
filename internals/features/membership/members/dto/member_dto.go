// internals/features/membership/members/dto/member_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	memberModel "igrejaku_backend/internals/features/membership/members/model"
)

type CreateMemberRequest struct {
	MemberFullName  string     `json:"member_full_name" validate:"required,min=3,max=150"`
	MemberEmail     *string    `json:"member_email" validate:"omitempty,email"`
	MemberPhone     *string    `json:"member_phone" validate:"omitempty,max=30"`
	MemberBirthDate *time.Time `json:"member_birth_date"`
	MemberAddress   *string    `json:"member_address" validate:"omitempty,max=255"`
	MemberStatus    *string    `json:"member_status" validate:"omitempty,oneof=ativo inativo visitante transferido"`
	MemberJoinedAt  *time.Time `json:"member_joined_at"`
	MemberBaptized  *bool      `json:"member_baptized"`
	MemberUserID    *string    `json:"member_user_id" validate:"omitempty,uuid"`
}

type UpdateMemberRequest struct {
	MemberFullName  *string    `json:"member_full_name" validate:"omitempty,min=3,max=150"`
	MemberEmail     *string    `json:"member_email" validate:"omitempty,email"`
	MemberPhone     *string    `json:"member_phone" validate:"omitempty,max=30"`
	MemberBirthDate *time.Time `json:"member_birth_date"`
	MemberAddress   *string    `json:"member_address" validate:"omitempty,max=255"`
	MemberStatus    *string    `json:"member_status" validate:"omitempty,oneof=ativo inativo visitante transferido"`
	MemberJoinedAt  *time.Time `json:"member_joined_at"`
	MemberBaptized  *bool      `json:"member_baptized"`
}

func (r *CreateMemberRequest) ToModel(churchID uuid.UUID) *memberModel.MemberModel {
	m := &memberModel.MemberModel{
		MemberChurchID:  churchID,
		MemberFullName:  strings.TrimSpace(r.MemberFullName),
		MemberEmail:     r.MemberEmail,
		MemberPhone:     r.MemberPhone,
		MemberBirthDate: r.MemberBirthDate,
		MemberAddress:   r.MemberAddress,
		MemberStatus:    memberModel.MemberVisitante,
		MemberJoinedAt:  r.MemberJoinedAt,
	}
	if r.MemberStatus != nil {
		m.MemberStatus = memberModel.MemberStatus(*r.MemberStatus)
	}
	if r.MemberBaptized != nil {
		m.MemberBaptized = *r.MemberBaptized
	}
	if r.MemberUserID != nil {
		if id, err := uuid.Parse(*r.MemberUserID); err == nil {
			m.MemberUserID = &id
		}
	}
	return m
}

func (r *UpdateMemberRequest) ApplyToModel(m *memberModel.MemberModel) {
	if r.MemberFullName != nil {
		m.MemberFullName = strings.TrimSpace(*r.MemberFullName)
	}
	if r.MemberEmail != nil {
		m.MemberEmail = r.MemberEmail
	}
	if r.MemberPhone != nil {
		m.MemberPhone = r.MemberPhone
	}
	if r.MemberBirthDate != nil {
		m.MemberBirthDate = r.MemberBirthDate
	}
	if r.MemberAddress != nil {
		m.MemberAddress = r.MemberAddress
	}
	if r.MemberStatus != nil {
		m.MemberStatus = memberModel.MemberStatus(*r.MemberStatus)
	}
	if r.MemberJoinedAt != nil {
		m.MemberJoinedAt = r.MemberJoinedAt
	}
	if r.MemberBaptized != nil {
		m.MemberBaptized = *r.MemberBaptized
	}
}
