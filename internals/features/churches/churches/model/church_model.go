// internals/features/churches/churches/model/church_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChurchModel struct {
	// PK
	ChurchID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:church_id" json:"church_id"`

	// Identidade
	ChurchName string `gorm:"type:varchar(150);not null;column:church_name" json:"church_name"`
	ChurchSlug string `gorm:"type:varchar(120);unique;not null;column:church_slug" json:"church_slug"`

	// Logo (object key guardado para permitir troca/limpeza no bucket)
	ChurchLogoURL       *string `gorm:"column:church_logo_url" json:"church_logo_url,omitempty"`
	ChurchLogoObjectKey *string `gorm:"column:church_logo_object_key" json:"-"`

	// Contato & endereço
	ChurchEmail    *string `gorm:"type:varchar(120);column:church_email" json:"church_email,omitempty"`
	ChurchPhone    *string `gorm:"type:varchar(30);column:church_phone" json:"church_phone,omitempty"`
	ChurchAddress  *string `gorm:"column:church_address" json:"church_address,omitempty"`
	ChurchCity     *string `gorm:"column:church_city" json:"church_city,omitempty"`
	ChurchState    *string `gorm:"type:varchar(2);column:church_state" json:"church_state,omitempty"`
	ChurchZipCode  *string `gorm:"type:varchar(12);column:church_zip_code" json:"church_zip_code,omitempty"`
	ChurchSiteURL  *string `gorm:"column:church_site_url" json:"church_site_url,omitempty"`
	ChurchInstagram *string `gorm:"column:church_instagram" json:"church_instagram,omitempty"`

	// Status
	ChurchIsActive bool `gorm:"not null;default:true;column:church_is_active" json:"church_is_active"`

	// Audit
	ChurchCreatedAt time.Time      `gorm:"column:church_created_at;autoCreateTime" json:"church_created_at"`
	ChurchUpdatedAt *time.Time     `gorm:"column:church_updated_at;autoUpdateTime" json:"church_updated_at,omitempty"`
	ChurchDeletedAt gorm.DeletedAt `gorm:"column:church_deleted_at;index" json:"church_deleted_at,omitempty"`
}

func (ChurchModel) TableName() string { return "churches" }
