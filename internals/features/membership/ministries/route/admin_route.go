// internals/features/membership/ministries/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	ministryController "igrejaku_backend/internals/features/membership/ministries/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

func MinistryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := ministryController.NewMinistryController(db)

	ministries := api.Group("/ministries",
		auth.OnlyPermission(constants.CanManageMinistries, constants.RoleErrorLeadership("a gestão de ministérios")),
	)
	ministries.Post("/", ctrl.Create)
	ministries.Get("/", ctrl.List)
	ministries.Get("/:id", ctrl.Detail)
	ministries.Patch("/:id", ctrl.Update)
	ministries.Delete("/:id", ctrl.Delete)
	ministries.Post("/:id/members", ctrl.AddMember)
	ministries.Delete("/:id/members/:memberId", ctrl.RemoveMember)
}
