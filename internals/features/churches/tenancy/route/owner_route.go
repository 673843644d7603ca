// internals/features/churches/tenancy/route/owner_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	tenancyController "igrejaku_backend/internals/features/churches/tenancy/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

// ChurchViewOwnerRoutes: superadmin assume/encerra a visão de uma igreja.
func ChurchViewOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := tenancyController.NewChurchViewController(db)

	view := api.Group("/church-view",
		auth.OnlyRolesSlice(constants.RoleErrorSuperadmin("visualizar igrejas"), constants.SuperadminOnly),
	)
	view.Post("/", ctrl.Enter)
	view.Get("/", ctrl.Current)
	view.Delete("/", ctrl.Exit)
}
