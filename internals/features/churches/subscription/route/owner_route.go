// internals/features/churches/subscription/route/owner_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	subController "igrejaku_backend/internals/features/churches/subscription/controller"
	subService "igrejaku_backend/internals/features/churches/subscription/service"
	"igrejaku_backend/internals/middlewares/auth"
)

// SubscriptionOwnerRoutes: operação da plataforma sobre qualquer assinatura.
func SubscriptionOwnerRoutes(api fiber.Router, db *gorm.DB, subSvc *subService.SubscriptionService, checkoutSvc *subService.CheckoutService) {
	ctrl := subController.NewSubscriptionController(db, subSvc, checkoutSvc)

	sub := api.Group("/churches/:id/subscription",
		auth.OnlyRolesSlice(constants.RoleErrorSuperadmin("gerenciar assinaturas"), constants.SuperadminOnly),
	)
	sub.Get("/", ctrl.Status)
	sub.Post("/payment", ctrl.RegisterPayment)
	sub.Post("/suspend", ctrl.Suspend)
	sub.Post("/resume", ctrl.Resume)
	sub.Post("/cancel", ctrl.Cancel)
}
