// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel representa a tabela users. Todo usuário (exceto superadmin da
// plataforma) pertence a exatamente uma igreja.
type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserName  string `gorm:"size:80;not null;column:user_name" json:"user_name" validate:"required,min=3,max=80"`
	UserEmail string `gorm:"size:255;unique;not null;column:user_email" json:"user_email" validate:"required,email"`

	// hash bcrypt, nunca serializado
	UserPassword string  `gorm:"not null;column:user_password" json:"-"`
	UserGoogleID *string `gorm:"size:255;unique;column:user_google_id" json:"-"`

	UserRole string `gorm:"type:varchar(24);not null;default:'membro';column:user_role" json:"user_role"`

	// nula apenas para superadmin (equipe da plataforma)
	UserChurchID *uuid.UUID `gorm:"type:uuid;index;column:user_church_id" json:"user_church_id,omitempty"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
