// internals/features/churches/subscription/model/subscription_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSettled PaymentStatus = "settled"
	PaymentFailed  PaymentStatus = "failed"
)

// SubscriptionPayment registra cada checkout de assinatura (Snap Midtrans).
// O webhook de notificação marca settled e dispara o RegisterPayment.
type SubscriptionPayment struct {
	SubscriptionPaymentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subscription_payment_id" json:"subscription_payment_id"`

	SubscriptionPaymentChurchID uuid.UUID `gorm:"type:uuid;not null;index;column:subscription_payment_church_id" json:"subscription_payment_church_id"`

	SubscriptionPaymentOrderID string  `gorm:"type:varchar(64);unique;not null;column:subscription_payment_order_id" json:"subscription_payment_order_id"`
	SubscriptionPaymentAmount  float64 `gorm:"type:numeric(12,2);not null;column:subscription_payment_amount" json:"subscription_payment_amount"`

	SubscriptionPaymentStatus    PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';column:subscription_payment_status" json:"subscription_payment_status"`
	SubscriptionPaymentSnapToken *string       `gorm:"column:subscription_payment_snap_token" json:"-"`
	SubscriptionPaymentPaidAt    *time.Time    `gorm:"column:subscription_payment_paid_at" json:"subscription_payment_paid_at,omitempty"`

	SubscriptionPaymentCreatedAt time.Time      `gorm:"column:subscription_payment_created_at;autoCreateTime" json:"subscription_payment_created_at"`
	SubscriptionPaymentUpdatedAt *time.Time     `gorm:"column:subscription_payment_updated_at;autoUpdateTime" json:"subscription_payment_updated_at,omitempty"`
	SubscriptionPaymentDeletedAt gorm.DeletedAt `gorm:"column:subscription_payment_deleted_at;index" json:"subscription_payment_deleted_at,omitempty"`
}

func (SubscriptionPayment) TableName() string { return "subscription_payments" }
