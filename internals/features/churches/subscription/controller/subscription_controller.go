// internals/features/churches/subscription/controller/subscription_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subDTO "igrejaku_backend/internals/features/churches/subscription/dto"
	subModel "igrejaku_backend/internals/features/churches/subscription/model"
	subService "igrejaku_backend/internals/features/churches/subscription/service"
	helper "igrejaku_backend/internals/helpers"
)

type SubscriptionController struct {
	DB          *gorm.DB
	SubSvc      *subService.SubscriptionService
	CheckoutSvc *subService.CheckoutService
	Validate    *validator.Validate
}

func NewSubscriptionController(db *gorm.DB, subSvc *subService.SubscriptionService, checkoutSvc *subService.CheckoutService) *SubscriptionController {
	return &SubscriptionController{
		DB:          db,
		SubSvc:      subSvc,
		CheckoutSvc: checkoutSvc,
		Validate:    validator.New(),
	}
}

/* ===================== TENANT (/api/a) ===================== */

// GET /api/a/subscription: status da própria igreja
func (h *SubscriptionController) StatusScoped(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	return h.respondStatus(c, churchID)
}

// POST /api/a/subscription/checkout: abre pagamento via gateway
func (h *SubscriptionController) Checkout(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	var req subDTO.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	payerName, _ := c.Locals("user_name").(string)
	payment, err := h.CheckoutSvc.CreateCheckout(churchID, req.PlanAmount, payerName, "")
	if err != nil {
		return helper.FromDomainError(err)
	}

	snapToken := ""
	if payment.SubscriptionPaymentSnapToken != nil {
		snapToken = *payment.SubscriptionPaymentSnapToken
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Checkout criado", subDTO.CheckoutResponse{
		OrderID:   payment.SubscriptionPaymentOrderID,
		SnapToken: snapToken,
		Amount:    payment.SubscriptionPaymentAmount,
	})
}

/* ===================== PLATAFORMA (/api/o) ===================== */

// GET /api/o/churches/:id/subscription
func (h *SubscriptionController) Status(c *fiber.Ctx) error {
	churchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	return h.respondStatus(c, churchID)
}

// POST /api/o/churches/:id/subscription/payment: registro manual de pagamento
func (h *SubscriptionController) RegisterPayment(c *fiber.Ctx) error {
	churchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	// corpo é opcional: sem plan_amount só reinicia a janela
	var req subDTO.RegisterPaymentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
		}
	}

	st, err := h.SubSvc.RegisterPayment(churchID, role, req.PlanAmount)
	if err != nil {
		return helper.FromDomainError(err)
	}
	return helper.Success(c, "Pagamento registrado", st)
}

// POST /api/o/churches/:id/subscription/suspend
func (h *SubscriptionController) Suspend(c *fiber.Ctx) error {
	return h.mutateManual(c, func(churchID uuid.UUID, role string) (subService.StatusResult, error) {
		return h.SubSvc.Suspend(churchID, role)
	}, "Assinatura suspensa")
}

// POST /api/o/churches/:id/subscription/resume
func (h *SubscriptionController) Resume(c *fiber.Ctx) error {
	return h.mutateManual(c, func(churchID uuid.UUID, role string) (subService.StatusResult, error) {
		return h.SubSvc.Resume(churchID, role)
	}, "Assinatura reativada")
}

// POST /api/o/churches/:id/subscription/cancel
func (h *SubscriptionController) Cancel(c *fiber.Ctx) error {
	return h.mutateManual(c, func(churchID uuid.UUID, role string) (subService.StatusResult, error) {
		return h.SubSvc.Cancel(churchID, role)
	}, "Assinatura cancelada")
}

/* ===================== WEBHOOK (/api/public) ===================== */

// POST /api/public/subscription/notification: webhook do gateway (sem auth)
func (h *SubscriptionController) Notification(c *fiber.Ctx) error {
	var notif subDTO.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if notif.OrderID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "order_id obrigatório")
	}

	if err := h.CheckoutSvc.HandleNotification(notif.OrderID, notif.TransactionStatus, notif.FraudStatus); err != nil {
		return helper.FromDomainError(err)
	}
	return helper.Success(c, "OK", nil)
}

/* ===================== INTERNAL ===================== */

func (h *SubscriptionController) respondStatus(c *fiber.Ctx, churchID uuid.UUID) error {
	st, err := h.SubSvc.GetStatus(churchID)
	if err != nil {
		return helper.FromDomainError(err)
	}

	var sub subModel.ChurchSubscription
	var subPtr *subModel.ChurchSubscription
	if err := h.DB.First(&sub, "subscription_church_id = ?", churchID).Error; err == nil {
		subPtr = &sub
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar assinatura")
	}

	return helper.Success(c, "OK", subDTO.NewSubscriptionStatusResponse(churchID, st, subPtr))
}

func (h *SubscriptionController) mutateManual(c *fiber.Ctx, fn func(uuid.UUID, string) (subService.StatusResult, error), okMsg string) error {
	churchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	st, err := fn(churchID, role)
	if err != nil {
		return helper.FromDomainError(err)
	}
	return helper.Success(c, okMsg, st)
}
