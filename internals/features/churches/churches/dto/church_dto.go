// internals/features/churches/churches/dto/church_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	cModel "igrejaku_backend/internals/features/churches/churches/model"
)

/* ===================== REQUESTS ===================== */

type CreateChurchRequest struct {
	ChurchName string  `json:"church_name" validate:"required,min=2,max=150"`
	ChurchSlug *string `json:"church_slug" validate:"omitempty,min=3,max=120"`

	ChurchEmail     *string `json:"church_email" validate:"omitempty,email"`
	ChurchPhone     *string `json:"church_phone" validate:"omitempty,max=30"`
	ChurchAddress   *string `json:"church_address" validate:"omitempty"`
	ChurchCity      *string `json:"church_city" validate:"omitempty"`
	ChurchState     *string `json:"church_state" validate:"omitempty,len=2"`
	ChurchZipCode   *string `json:"church_zip_code" validate:"omitempty,max=12"`
	ChurchSiteURL   *string `json:"church_site_url" validate:"omitempty,url"`
	ChurchInstagram *string `json:"church_instagram" validate:"omitempty,url"`
}

func (r *CreateChurchRequest) ToModel() *cModel.ChurchModel {
	return &cModel.ChurchModel{
		ChurchName:      r.ChurchName,
		ChurchEmail:     r.ChurchEmail,
		ChurchPhone:     r.ChurchPhone,
		ChurchAddress:   r.ChurchAddress,
		ChurchCity:      r.ChurchCity,
		ChurchState:     r.ChurchState,
		ChurchZipCode:   r.ChurchZipCode,
		ChurchSiteURL:   r.ChurchSiteURL,
		ChurchInstagram: r.ChurchInstagram,
	}
}

type UpdateChurchRequest struct {
	ChurchName *string `json:"church_name" validate:"omitempty,min=2,max=150"`

	ChurchEmail     *string `json:"church_email" validate:"omitempty,email"`
	ChurchPhone     *string `json:"church_phone" validate:"omitempty,max=30"`
	ChurchAddress   *string `json:"church_address" validate:"omitempty"`
	ChurchCity      *string `json:"church_city" validate:"omitempty"`
	ChurchState     *string `json:"church_state" validate:"omitempty,len=2"`
	ChurchZipCode   *string `json:"church_zip_code" validate:"omitempty,max=12"`
	ChurchSiteURL   *string `json:"church_site_url" validate:"omitempty,url"`
	ChurchInstagram *string `json:"church_instagram" validate:"omitempty,url"`

	ChurchIsActive *bool `json:"church_is_active" validate:"omitempty"`
}

func (r *UpdateChurchRequest) ApplyToModel(m *cModel.ChurchModel) {
	if r.ChurchName != nil {
		m.ChurchName = *r.ChurchName
	}
	if r.ChurchEmail != nil {
		m.ChurchEmail = r.ChurchEmail
	}
	if r.ChurchPhone != nil {
		m.ChurchPhone = r.ChurchPhone
	}
	if r.ChurchAddress != nil {
		m.ChurchAddress = r.ChurchAddress
	}
	if r.ChurchCity != nil {
		m.ChurchCity = r.ChurchCity
	}
	if r.ChurchState != nil {
		m.ChurchState = r.ChurchState
	}
	if r.ChurchZipCode != nil {
		m.ChurchZipCode = r.ChurchZipCode
	}
	if r.ChurchSiteURL != nil {
		m.ChurchSiteURL = r.ChurchSiteURL
	}
	if r.ChurchInstagram != nil {
		m.ChurchInstagram = r.ChurchInstagram
	}
	if r.ChurchIsActive != nil {
		m.ChurchIsActive = *r.ChurchIsActive
	}
}

/* ===================== RESPONSES ===================== */

type ChurchResponse struct {
	ChurchID   uuid.UUID `json:"church_id"`
	ChurchName string    `json:"church_name"`
	ChurchSlug string    `json:"church_slug"`

	ChurchLogoURL *string `json:"church_logo_url,omitempty"`

	ChurchEmail     *string `json:"church_email,omitempty"`
	ChurchPhone     *string `json:"church_phone,omitempty"`
	ChurchAddress   *string `json:"church_address,omitempty"`
	ChurchCity      *string `json:"church_city,omitempty"`
	ChurchState     *string `json:"church_state,omitempty"`
	ChurchZipCode   *string `json:"church_zip_code,omitempty"`
	ChurchSiteURL   *string `json:"church_site_url,omitempty"`
	ChurchInstagram *string `json:"church_instagram,omitempty"`

	ChurchIsActive  bool      `json:"church_is_active"`
	ChurchCreatedAt time.Time `json:"church_created_at"`
}

func NewChurchResponse(m *cModel.ChurchModel) *ChurchResponse {
	return &ChurchResponse{
		ChurchID:        m.ChurchID,
		ChurchName:      m.ChurchName,
		ChurchSlug:      m.ChurchSlug,
		ChurchLogoURL:   m.ChurchLogoURL,
		ChurchEmail:     m.ChurchEmail,
		ChurchPhone:     m.ChurchPhone,
		ChurchAddress:   m.ChurchAddress,
		ChurchCity:      m.ChurchCity,
		ChurchState:     m.ChurchState,
		ChurchZipCode:   m.ChurchZipCode,
		ChurchSiteURL:   m.ChurchSiteURL,
		ChurchInstagram: m.ChurchInstagram,
		ChurchIsActive:  m.ChurchIsActive,
		ChurchCreatedAt: m.ChurchCreatedAt,
	}
}

func NewChurchResponseList(ms []cModel.ChurchModel) []ChurchResponse {
	out := make([]ChurchResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewChurchResponse(&ms[i]))
	}
	return out
}
