package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "igrejaku_backend/internals/features/agenda/events/route"
	financeRoute "igrejaku_backend/internals/features/finance/transactions/route"
	broadcastRoute "igrejaku_backend/internals/features/home/broadcasts/route"
	documentRoute "igrejaku_backend/internals/features/media/documents/route"
	cellRoute "igrejaku_backend/internals/features/membership/cells/route"
	memberRoute "igrejaku_backend/internals/features/membership/members/route"
	ministryRoute "igrejaku_backend/internals/features/membership/ministries/route"
)

// TenantAdminRoutes agrupa tudo que a liderança da igreja opera em /api/a.
func TenantAdminRoutes(admin fiber.Router, db *gorm.DB) {
	memberRoute.MemberAdminRoutes(admin, db)
	ministryRoute.MinistryAdminRoutes(admin, db)
	cellRoute.CellAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	documentRoute.DocumentAdminRoutes(admin, db)
	broadcastRoute.BroadcastAdminRoutes(admin, db)
	financeRoute.FinanceAdminRoutes(admin, db)
}

// TenantUserRoutes agrupa as superfícies de leitura do membro comum em /api/u.
func TenantUserRoutes(private fiber.Router, db *gorm.DB) {
	eventRoute.EventUserRoutes(private, db)
	broadcastRoute.BroadcastUserRoutes(private, db)
}
