package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cController "igrejaku_backend/internals/features/churches/churches/controller"
)

// Rotas públicas: perfil da igreja por slug.
func AllChurchRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := cController.NewChurchController(db)

	g := r.Group("/churches")
	g.Get("/:slug", ctrl.DetailBySlug)
}
