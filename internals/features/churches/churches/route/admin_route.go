package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	cController "igrejaku_backend/internals/features/churches/churches/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

// Rotas de administração da própria igreja (escopo efetivo da sessão).
func ChurchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := cController.NewChurchController(db)

	church := admin.Group("/church",
		auth.OnlyPermission(constants.CanManageChurch, constants.RoleErrorLeadership("dados da igreja")),
	)

	church.Get("/", ctrl.DetailScoped)
	church.Patch("/", ctrl.UpdateScoped)
	church.Post("/logo", ctrl.UploadLogo)
}
