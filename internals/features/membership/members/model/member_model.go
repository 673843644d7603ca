// internals/features/membership/members/model/member_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Situação do membro na igreja (enum do banco: member_status_enum)
type MemberStatus string

const (
	MemberAtivo     MemberStatus = "ativo"
	MemberInativo   MemberStatus = "inativo"
	MemberVisitante MemberStatus = "visitante"
	MemberTransferido MemberStatus = "transferido"
)

func (s *MemberStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = MemberStatus(strings.ToLower(v))
	case []byte:
		*s = MemberStatus(strings.ToLower(string(v)))
	default:
		return fmt.Errorf("tipo inválido para MemberStatus: %T", value)
	}
	return nil
}

func (s MemberStatus) Value() (driver.Value, error) {
	return strings.ToLower(string(s)), nil
}

// MemberModel é a ficha de membro; conta de acesso (users) é opcional e
// vinculada por member_user_id.
type MemberModel struct {
	MemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`

	MemberChurchID uuid.UUID  `gorm:"type:uuid;not null;index;column:member_church_id" json:"member_church_id"`
	MemberUserID   *uuid.UUID `gorm:"type:uuid;index;column:member_user_id" json:"member_user_id,omitempty"`

	MemberFullName  string     `gorm:"size:150;not null;column:member_full_name" json:"member_full_name"`
	MemberEmail     *string    `gorm:"size:255;column:member_email" json:"member_email,omitempty"`
	MemberPhone     *string    `gorm:"size:30;column:member_phone" json:"member_phone,omitempty"`
	MemberBirthDate *time.Time `gorm:"type:date;column:member_birth_date" json:"member_birth_date,omitempty"`
	MemberAddress   *string    `gorm:"size:255;column:member_address" json:"member_address,omitempty"`

	MemberStatus   MemberStatus `gorm:"type:varchar(20);not null;default:'visitante';column:member_status" json:"member_status"`
	MemberJoinedAt *time.Time   `gorm:"type:date;column:member_joined_at" json:"member_joined_at,omitempty"`
	MemberBaptized bool         `gorm:"not null;default:false;column:member_baptized" json:"member_baptized"`

	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time     `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }
