package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "igrejaku_backend/internals/features/users/auth/route"
	userRoute "igrejaku_backend/internals/features/users/user/route"
)

func AuthPublicRoutes(public fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(public, db)
}

func AuthUserRoutes(private fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(private, db)
	userRoute.UserProfileRoutes(private, db)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
}
