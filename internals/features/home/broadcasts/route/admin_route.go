// internals/features/home/broadcasts/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	broadcastController "igrejaku_backend/internals/features/home/broadcasts/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

func BroadcastAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := broadcastController.NewBroadcastController(db)

	broadcasts := api.Group("/broadcasts",
		auth.OnlyPermission(constants.CanSendBroadcasts, constants.RoleErrorLeadership("os comunicados")),
	)
	broadcasts.Post("/", ctrl.Create)
	broadcasts.Get("/", ctrl.List)
	broadcasts.Patch("/:id", ctrl.Update)
	broadcasts.Delete("/:id", ctrl.Delete)
}

// BroadcastUserRoutes: feed de comunicados do usuário autenticado.
func BroadcastUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := broadcastController.NewBroadcastController(db)

	api.Get("/broadcasts", ctrl.Feed)
}
