// internals/features/membership/cells/model/cell_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CellModel é uma célula (pequeno grupo que se reúne em casa).
type CellModel struct {
	CellID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:cell_id" json:"cell_id"`

	CellChurchID uuid.UUID `gorm:"type:uuid;not null;index;column:cell_church_id" json:"cell_church_id"`

	CellName    string  `gorm:"size:120;not null;column:cell_name" json:"cell_name"`
	CellAddress *string `gorm:"size:255;column:cell_address" json:"cell_address,omitempty"`

	// 0=domingo ... 6=sábado
	CellMeetingWeekday *int    `gorm:"column:cell_meeting_weekday" json:"cell_meeting_weekday,omitempty"`
	CellMeetingTime    *string `gorm:"size:5;column:cell_meeting_time" json:"cell_meeting_time,omitempty"`

	CellLeaderMemberID *uuid.UUID `gorm:"type:uuid;column:cell_leader_member_id" json:"cell_leader_member_id,omitempty"`

	CellIsActive bool `gorm:"not null;default:true;column:cell_is_active" json:"cell_is_active"`

	CellCreatedAt time.Time      `gorm:"column:cell_created_at;autoCreateTime" json:"cell_created_at"`
	CellUpdatedAt *time.Time     `gorm:"column:cell_updated_at;autoUpdateTime" json:"cell_updated_at,omitempty"`
	CellDeletedAt gorm.DeletedAt `gorm:"column:cell_deleted_at;index" json:"cell_deleted_at,omitempty"`
}

func (CellModel) TableName() string { return "cells" }

type CellMemberModel struct {
	CellMemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:cell_member_id" json:"cell_member_id"`

	CellMemberCellID   uuid.UUID `gorm:"type:uuid;not null;index:idx_cell_member,unique;column:cell_member_cell_id" json:"cell_member_cell_id"`
	CellMemberMemberID uuid.UUID `gorm:"type:uuid;not null;index:idx_cell_member,unique;column:cell_member_member_id" json:"cell_member_member_id"`

	CellMemberCreatedAt time.Time `gorm:"column:cell_member_created_at;autoCreateTime" json:"cell_member_created_at"`
}

func (CellMemberModel) TableName() string { return "cell_members" }
