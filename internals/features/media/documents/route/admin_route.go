// internals/features/media/documents/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	documentController "igrejaku_backend/internals/features/media/documents/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

func DocumentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := documentController.NewDocumentController(db)

	docs := api.Group("/documents",
		auth.OnlyPermission(constants.CanManageDocuments, constants.RoleErrorLeadership("o arquivo de documentos")),
	)
	docs.Post("/", ctrl.Upload)
	docs.Get("/", ctrl.List)
	docs.Get("/:id", ctrl.Detail)
	docs.Delete("/:id", ctrl.Delete)
}
