// internals/features/membership/members/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	memberController "igrejaku_backend/internals/features/membership/members/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

func MemberAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := memberController.NewMemberController(db)

	members := api.Group("/members",
		auth.OnlyPermission(constants.CanManageMembers, constants.RoleErrorLeadership("o cadastro de membros")),
	)
	members.Post("/", ctrl.Create)
	members.Get("/", ctrl.List)
	members.Get("/:id", ctrl.Detail)
	members.Patch("/:id", ctrl.Update)
	members.Delete("/:id", ctrl.Delete)
}
