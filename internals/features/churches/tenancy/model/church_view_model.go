// internals/features/churches/tenancy/model/church_view_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ChurchViewSession é o override "visualizar como igreja" de um superadmin.
// Escopo de sessão: uma linha por usuário, limpa no exit/logout, com expiração
// própria, nunca compartilhada entre superadmins.
type ChurchViewSession struct {
	ChurchViewID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:church_view_id" json:"church_view_id"`

	ChurchViewUserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:church_view_user_id" json:"church_view_user_id"`
	ChurchViewChurchID   uuid.UUID `gorm:"type:uuid;not null;column:church_view_church_id" json:"church_view_church_id"`
	ChurchViewChurchName string    `gorm:"type:varchar(150);not null;column:church_view_church_name" json:"church_view_church_name"`

	ChurchViewExpiresAt time.Time `gorm:"not null;column:church_view_expires_at" json:"church_view_expires_at"`

	ChurchViewCreatedAt time.Time  `gorm:"column:church_view_created_at;autoCreateTime" json:"church_view_created_at"`
	ChurchViewUpdatedAt *time.Time `gorm:"column:church_view_updated_at;autoUpdateTime" json:"church_view_updated_at,omitempty"`
}

func (ChurchViewSession) TableName() string { return "church_view_sessions" }
