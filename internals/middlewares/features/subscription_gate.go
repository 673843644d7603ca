// internals/middlewares/features/subscription_gate.go
package features

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"igrejaku_backend/internals/constants"
	subService "igrejaku_backend/internals/features/churches/subscription/service"
	helper "igrejaku_backend/internals/helpers"
)

// SubscriptionGate reavalia o status da assinatura a cada request e bloqueia
// tenants suspensos/cancelados com 402. Superadmin passa sempre. O status não
// é cacheado entre requests: pagamento registrado em outra sessão desbloqueia
// esta no próximo check.
func SubscriptionGate(subSvc *subService.SubscriptionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helper.GetUserRole(c)
		if err != nil {
			return err
		}

		// operador de plataforma nunca é bloqueado por billing
		if role == constants.RoleSuperadmin {
			return c.Next()
		}

		raw, ok := c.Locals(helper.LocalsScopeChurchID).(string)
		if !ok || raw == "" {
			// sem tenant no escopo não há o que bloquear (rota resolve depois)
			return c.Next()
		}
		churchID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Escopo de igreja inválido")
		}

		st, err := subSvc.GetStatus(churchID)
		if err != nil {
			if errors.Is(err, helper.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Igreja não encontrada")
			}
			return helper.FromDomainError(err)
		}

		decision := subService.EvaluateAccess(role, st)
		if decision.Render == subService.RenderBlocked {
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"code":    fiber.StatusPaymentRequired,
				"status":  "blocked",
				"reason":  decision.Reason,
				"billing": st,
			})
		}

		return c.Next()
	}
}
