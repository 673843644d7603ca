// internals/features/churches/subscription/route/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subController "igrejaku_backend/internals/features/churches/subscription/controller"
	subService "igrejaku_backend/internals/features/churches/subscription/service"
)

// SubscriptionPublicRoutes: webhook do gateway de pagamento (sem autenticação,
// o AuthMiddleware já ignora este caminho).
func SubscriptionPublicRoutes(api fiber.Router, db *gorm.DB, subSvc *subService.SubscriptionService, checkoutSvc *subService.CheckoutService) {
	ctrl := subController.NewSubscriptionController(db, subSvc, checkoutSvc)

	api.Post("/subscription/notification", ctrl.Notification)
}
