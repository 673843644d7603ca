// internals/features/agenda/events/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	eventController "igrejaku_backend/internals/features/agenda/events/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

func EventAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	events := api.Group("/events",
		auth.OnlyPermission(constants.CanManageEvents, constants.RoleErrorLeadership("a agenda de eventos")),
	)
	events.Post("/", ctrl.Create)
	events.Get("/", ctrl.List)
	events.Get("/:id", ctrl.Detail)
	events.Patch("/:id", ctrl.Update)
	events.Delete("/:id", ctrl.Delete)
}

// EventUserRoutes: agenda visível para qualquer usuário autenticado.
func EventUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	api.Get("/events/upcoming", ctrl.Upcoming)
}
