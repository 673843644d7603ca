// internals/features/churches/subscription/dto/subscription_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	subModel "igrejaku_backend/internals/features/churches/subscription/model"
	subService "igrejaku_backend/internals/features/churches/subscription/service"
)

/* ===================== REQUESTS ===================== */

type RegisterPaymentRequest struct {
	PlanAmount float64 `json:"plan_amount" validate:"omitempty,gte=0"`
}

type CheckoutRequest struct {
	PlanAmount float64 `json:"plan_amount" validate:"required,gt=0"`
}

// Payload mínimo da notificação Midtrans que nos interessa.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount"`
}

/* ===================== RESPONSES ===================== */

type SubscriptionStatusResponse struct {
	ChurchID     uuid.UUID                   `json:"church_id"`
	Status       subModel.SubscriptionStatus `json:"status"`
	Blocked      bool                        `json:"blocked"`
	PlanAmount   float64                     `json:"plan_amount"`
	SubscribedAt *time.Time                  `json:"subscribed_at,omitempty"`
	NextDueAt    *time.Time                  `json:"next_due_at,omitempty"`
	GraceUntil   *time.Time                  `json:"grace_until,omitempty"`
}

func NewSubscriptionStatusResponse(churchID uuid.UUID, st subService.StatusResult, sub *subModel.ChurchSubscription) *SubscriptionStatusResponse {
	out := &SubscriptionStatusResponse{
		ChurchID: churchID,
		Status:   st.Status,
		Blocked:  st.Blocked,
	}
	if sub != nil {
		out.PlanAmount = sub.SubscriptionPlanAmount
		out.SubscribedAt = &sub.SubscriptionSubscribedAt
		out.NextDueAt = &sub.SubscriptionNextDueAt
		out.GraceUntil = &sub.SubscriptionGraceUntil
	}
	return out
}

type CheckoutResponse struct {
	OrderID   string  `json:"order_id"`
	SnapToken string  `json:"snap_token"`
	Amount    float64 `json:"amount"`
}
