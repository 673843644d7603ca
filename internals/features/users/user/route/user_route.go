// internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	userController "igrejaku_backend/internals/features/users/user/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

// UserProfileRoutes: qualquer usuário autenticado gerencia o próprio perfil.
func UserProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/me", ctrl.Me)
	users.Patch("/me", ctrl.UpdateMe)
	users.Post("/me/password", ctrl.ChangePassword)
}

// UserAdminRoutes: gestão das contas da igreja no escopo.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("gestão de usuários"), constants.AdminAndAbove),
	)
	users.Get("/", ctrl.List)
	users.Patch("/:id/role", ctrl.ChangeRole)
	users.Patch("/:id/active", ctrl.SetActive)
}
