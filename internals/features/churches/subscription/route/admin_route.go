// internals/features/churches/subscription/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subController "igrejaku_backend/internals/features/churches/subscription/controller"
	subService "igrejaku_backend/internals/features/churches/subscription/service"
	"igrejaku_backend/internals/middlewares/auth"

	"igrejaku_backend/internals/constants"
)

// SubscriptionAdminRoutes expõe a assinatura da igreja no escopo atual.
// O status continua acessível mesmo quando o gate bloqueia o resto do app,
// por isso essas rotas ficam fora do SubscriptionGate.
func SubscriptionAdminRoutes(api fiber.Router, db *gorm.DB, subSvc *subService.SubscriptionService, checkoutSvc *subService.CheckoutService) {
	ctrl := subController.NewSubscriptionController(db, subSvc, checkoutSvc)

	sub := api.Group("/subscription",
		auth.OnlyPermission(constants.CanEditBilling, constants.RoleErrorAdmin("cobrança")),
	)
	sub.Get("/", ctrl.StatusScoped)
	sub.Post("/checkout", ctrl.Checkout)
}
