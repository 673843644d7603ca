// internals/features/membership/ministries/model/ministry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MinistryModel struct {
	MinistryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ministry_id" json:"ministry_id"`

	MinistryChurchID uuid.UUID `gorm:"type:uuid;not null;index;column:ministry_church_id" json:"ministry_church_id"`

	MinistryName        string  `gorm:"size:120;not null;column:ministry_name" json:"ministry_name"`
	MinistryDescription *string `gorm:"type:text;column:ministry_description" json:"ministry_description,omitempty"`

	MinistryLeaderMemberID *uuid.UUID `gorm:"type:uuid;column:ministry_leader_member_id" json:"ministry_leader_member_id,omitempty"`

	MinistryIsActive bool `gorm:"not null;default:true;column:ministry_is_active" json:"ministry_is_active"`

	MinistryCreatedAt time.Time      `gorm:"column:ministry_created_at;autoCreateTime" json:"ministry_created_at"`
	MinistryUpdatedAt *time.Time     `gorm:"column:ministry_updated_at;autoUpdateTime" json:"ministry_updated_at,omitempty"`
	MinistryDeletedAt gorm.DeletedAt `gorm:"column:ministry_deleted_at;index" json:"ministry_deleted_at,omitempty"`
}

func (MinistryModel) TableName() string { return "ministries" }

// MinistryMemberModel vincula membros a ministérios (N:N).
type MinistryMemberModel struct {
	MinistryMemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ministry_member_id" json:"ministry_member_id"`

	MinistryMemberMinistryID uuid.UUID `gorm:"type:uuid;not null;index:idx_ministry_member,unique;column:ministry_member_ministry_id" json:"ministry_member_ministry_id"`
	MinistryMemberMemberID   uuid.UUID `gorm:"type:uuid;not null;index:idx_ministry_member,unique;column:ministry_member_member_id" json:"ministry_member_member_id"`

	MinistryMemberRole *string `gorm:"size:80;column:ministry_member_role" json:"ministry_member_role,omitempty"`

	MinistryMemberCreatedAt time.Time `gorm:"column:ministry_member_created_at;autoCreateTime" json:"ministry_member_created_at"`
}

func (MinistryMemberModel) TableName() string { return "ministry_members" }
