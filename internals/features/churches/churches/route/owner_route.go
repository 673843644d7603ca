package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	cController "igrejaku_backend/internals/features/churches/churches/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

// Rotas de plataforma (superadmin): onboarding e gestão global de igrejas.
func ChurchOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	ctrl := cController.NewChurchController(db)

	churches := owner.Group("/churches",
		auth.OnlyRolesSlice(
			constants.RoleErrorSuperadmin("gestão de igrejas"),
			constants.SuperadminOnly,
		),
	)

	churches.Post("/", ctrl.Create)
	churches.Get("/", ctrl.List)
	churches.Patch("/:id", ctrl.Update)
	churches.Delete("/:id", ctrl.Delete)
	churches.Post("/:id/restore", ctrl.Restore)
}
