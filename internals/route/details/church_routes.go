package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	churchRoute "igrejaku_backend/internals/features/churches/churches/route"
	subRoute "igrejaku_backend/internals/features/churches/subscription/route"
	subService "igrejaku_backend/internals/features/churches/subscription/service"
	tenancyRoute "igrejaku_backend/internals/features/churches/tenancy/route"
)

func ChurchPublicRoutes(public fiber.Router, db *gorm.DB) {
	churchRoute.AllChurchRoutes(public, db)
}

func ChurchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	churchRoute.ChurchAdminRoutes(admin, db)
}

func ChurchOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	churchRoute.ChurchOwnerRoutes(owner, db)
	tenancyRoute.ChurchViewOwnerRoutes(owner, db)
}

func SubscriptionPublicRoutes(public fiber.Router, db *gorm.DB, subSvc *subService.SubscriptionService, checkoutSvc *subService.CheckoutService) {
	subRoute.SubscriptionPublicRoutes(public, db, subSvc, checkoutSvc)
}

func SubscriptionAdminRoutes(admin fiber.Router, db *gorm.DB, subSvc *subService.SubscriptionService, checkoutSvc *subService.CheckoutService) {
	subRoute.SubscriptionAdminRoutes(admin, db, subSvc, checkoutSvc)
}

func SubscriptionOwnerRoutes(owner fiber.Router, db *gorm.DB, subSvc *subService.SubscriptionService, checkoutSvc *subService.CheckoutService) {
	subRoute.SubscriptionOwnerRoutes(owner, db, subSvc, checkoutSvc)
}
