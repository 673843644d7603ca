// internals/features/finance/transactions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	transactionController "igrejaku_backend/internals/features/finance/transactions/controller"
	"igrejaku_backend/internals/middlewares/auth"
)

func FinanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := transactionController.NewTransactionController(db)

	finance := api.Group("/finance",
		auth.OnlyPermission(constants.CanManageFinance, constants.RoleErrorTreasury("o livro-caixa")),
	)
	finance.Post("/transactions", ctrl.Create)
	finance.Get("/transactions", ctrl.List)
	finance.Patch("/transactions/:id", ctrl.Update)
	finance.Delete("/transactions/:id", ctrl.Delete)
	finance.Get("/summary", ctrl.MonthlySummary)
}
