// internals/features/churches/subscription/model/subscription_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Status de assinatura (ENUM subscription_status_enum no DB):
- "trial"
- "ativa"
- "inadimplente"
- "suspensa"
- "cancelada"

Só "suspensa" e "cancelada" podem aparecer como status manual (forçado por
ação de superadmin); os demais são sempre derivados das datas.
*/
type SubscriptionStatus string

const (
	StatusTrial        SubscriptionStatus = "trial"
	StatusAtiva        SubscriptionStatus = "ativa"
	StatusInadimplente SubscriptionStatus = "inadimplente"
	StatusSuspensa     SubscriptionStatus = "suspensa"
	StatusCancelada    SubscriptionStatus = "cancelada"
)

// Normaliza para lower-case no scan/save (seguro contra fonte mixed-case)
func (s *SubscriptionStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = SubscriptionStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = SubscriptionStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = SubscriptionStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}

func (s SubscriptionStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// IsManual diz se o status é um override manual válido.
func (s SubscriptionStatus) IsManual() bool {
	return s == StatusSuspensa || s == StatusCancelada
}

type ChurchSubscription struct {
	// PK
	SubscriptionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subscription_id" json:"subscription_id"`

	// Uma assinatura por igreja
	SubscriptionChurchID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:subscription_church_id" json:"subscription_church_id"`

	// Valores do plano
	SubscriptionPlanAmount float64 `gorm:"type:numeric(12,2);not null;default:0;column:subscription_plan_amount" json:"subscription_plan_amount"`

	// Janela de cobrança. subscribed_at default = criação da igreja;
	// next_due_at = subscribed_at + 30d; grace_until = next_due_at + 5d.
	SubscriptionSubscribedAt time.Time `gorm:"not null;column:subscription_subscribed_at" json:"subscription_subscribed_at"`
	SubscriptionNextDueAt    time.Time `gorm:"not null;column:subscription_next_due_at" json:"subscription_next_due_at"`
	SubscriptionGraceUntil   time.Time `gorm:"not null;column:subscription_grace_until" json:"subscription_grace_until"`

	// Override manual (suspensa/cancelada); NULL = computação automática.
	SubscriptionManualStatus *SubscriptionStatus `gorm:"type:subscription_status_enum;column:subscription_manual_status" json:"subscription_manual_status,omitempty"`

	// Audit
	SubscriptionCreatedAt time.Time      `gorm:"column:subscription_created_at;autoCreateTime" json:"subscription_created_at"`
	SubscriptionUpdatedAt *time.Time     `gorm:"column:subscription_updated_at;autoUpdateTime" json:"subscription_updated_at,omitempty"`
	SubscriptionDeletedAt gorm.DeletedAt `gorm:"column:subscription_deleted_at;index" json:"subscription_deleted_at,omitempty"`
}

func (ChurchSubscription) TableName() string { return "church_subscriptions" }
