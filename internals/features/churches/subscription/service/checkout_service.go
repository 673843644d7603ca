// internals/features/churches/subscription/service/checkout_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	subModel "igrejaku_backend/internals/features/churches/subscription/model"
	helper "igrejaku_backend/internals/helpers"
)

var snapClient snap.Client

// InitMidtrans inicializa o Snap Client com a server key.
func InitMidtrans(serverKey string) {
	snapClient.New(serverKey, midtrans.Sandbox)
}

type CheckoutService struct {
	DB     *gorm.DB
	SubSvc *SubscriptionService
}

func NewCheckoutService(db *gorm.DB, subSvc *SubscriptionService) *CheckoutService {
	return &CheckoutService{DB: db, SubSvc: subSvc}
}

// CreateCheckout abre um pagamento de assinatura e devolve o snap token.
func (s *CheckoutService) CreateCheckout(churchID uuid.UUID, amount float64, payerName, payerEmail string) (*subModel.SubscriptionPayment, error) {
	orderID := fmt.Sprintf("SUB-%s-%d", churchID.String()[:8], time.Now().Unix())

	payment := subModel.SubscriptionPayment{
		SubscriptionPaymentChurchID: churchID,
		SubscriptionPaymentOrderID:  orderID,
		SubscriptionPaymentAmount:   amount,
		SubscriptionPaymentStatus:   subModel.PaymentPending,
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return nil, helper.Wrapf(helper.ErrUpstreamUnavailable, "criar transação no gateway: %v", err)
	}
	payment.SubscriptionPaymentSnapToken = &resp.Token

	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, helper.Wrapf(helper.ErrUpstreamUnavailable, "gravar pagamento: %v", err)
	}
	return &payment, nil
}

// HandleNotification processa o webhook do gateway. Em settlement marca o
// pagamento e reinicia a janela de cobrança (RegisterPayment como ator de
// sistema). Reentregas do webhook são idempotentes.
func (s *CheckoutService) HandleNotification(orderID, transactionStatus, fraudStatus string) error {
	var payment subModel.SubscriptionPayment
	if err := s.DB.First(&payment, "subscription_payment_order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Wrapf(helper.ErrNotFound, "pedido %s", orderID)
		}
		return helper.Wrapf(helper.ErrUpstreamUnavailable, "carregar pedido: %v", err)
	}

	switch transactionStatus {
	case "capture", "settlement":
		if fraudStatus == "challenge" || fraudStatus == "deny" {
			return s.markPayment(&payment, subModel.PaymentFailed, nil)
		}
		if payment.SubscriptionPaymentStatus == subModel.PaymentSettled {
			return nil // reentrega do webhook
		}
		now := s.SubSvc.Now()
		if err := s.markPayment(&payment, subModel.PaymentSettled, &now); err != nil {
			return err
		}
		// ator de sistema: o gateway confirmou o dinheiro
		_, err := s.SubSvc.RegisterPayment(
			payment.SubscriptionPaymentChurchID,
			constants.RoleSuperadmin,
			payment.SubscriptionPaymentAmount,
		)
		return err
	case "deny", "cancel", "expire", "failure":
		return s.markPayment(&payment, subModel.PaymentFailed, nil)
	default:
		log.Printf("[INFO] notificação ignorada: pedido=%s status=%s", orderID, transactionStatus)
		return nil
	}
}

func (s *CheckoutService) markPayment(p *subModel.SubscriptionPayment, status subModel.PaymentStatus, paidAt *time.Time) error {
	updates := map[string]interface{}{"subscription_payment_status": status}
	if paidAt != nil {
		updates["subscription_payment_paid_at"] = *paidAt
	}
	err := s.DB.Model(&subModel.SubscriptionPayment{}).
		Where("subscription_payment_id = ?", p.SubscriptionPaymentID).
		Updates(updates).Error
	if err != nil {
		return helper.Wrapf(helper.ErrUpstreamUnavailable, "atualizar pagamento: %v", err)
	}
	p.SubscriptionPaymentStatus = status
	return nil
}
