// internals/features/membership/cells/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	cellController "igrejaku_backend/internals/features/membership/cells/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

func CellAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := cellController.NewCellController(db)

	cells := api.Group("/cells",
		auth.OnlyPermission(constants.CanManageCells, constants.RoleErrorLeadership("a gestão de células")),
	)
	cells.Post("/", ctrl.Create)
	cells.Get("/", ctrl.List)
	cells.Get("/:id", ctrl.Detail)
	cells.Patch("/:id", ctrl.Update)
	cells.Delete("/:id", ctrl.Delete)
	cells.Post("/:id/members", ctrl.AddMember)
	cells.Delete("/:id/members/:memberId", ctrl.RemoveMember)
}
