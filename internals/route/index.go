// internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subService "igrejaku_backend/internals/features/churches/subscription/service"
	"igrejaku_backend/internals/middlewares/auth"
	featuresMiddleware "igrejaku_backend/internals/middlewares/features"
	routeDetails "igrejaku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	subSvc := subService.NewSubscriptionService(db)
	checkoutSvc := subService.NewCheckoutService(db, subSvc)

	// ===================== PUBLIC =====================
	// Sem token: cadastro, login, página aberta da igreja e o webhook de pagamento.
	log.Println("[INFO] Montando grupo PUBLIC...")
	public := app.Group("/api/public")
	routeDetails.AuthPublicRoutes(public, db)
	routeDetails.ChurchPublicRoutes(public, db)
	routeDetails.SubscriptionPublicRoutes(public, db, subSvc, checkoutSvc)

	// ===================== USER (/api/u) =====================
	// Logout e perfil ficam fora do gate para continuarem funcionando com a
	// igreja bloqueada; o resto da superfície do membro passa pelo gate.
	log.Println("[INFO] Montando grupo USER (sessão, sem gate)...")
	privateLoose := app.Group("/api/u",
		auth.AuthMiddleware(db),
		featuresMiddleware.UseChurchScope(db),
	)
	routeDetails.AuthUserRoutes(privateLoose, db)

	log.Println("[INFO] Montando grupo USER (Auth + Scope + Gate)...")
	private := app.Group("/api/u",
		auth.AuthMiddleware(db),
		featuresMiddleware.UseChurchScope(db),
		featuresMiddleware.SubscriptionGate(subSvc),
	)
	routeDetails.TenantUserRoutes(private, db)

	// ===================== ADMIN (/api/a) =====================
	// A superfície de cobrança fica fora do gate: uma igreja suspensa precisa
	// conseguir ver o próprio status e pagar.
	log.Println("[INFO] Montando grupo ADMIN (billing, sem gate)...")
	adminBilling := app.Group("/api/a",
		auth.AuthMiddleware(db),
		featuresMiddleware.UseChurchScope(db),
	)
	routeDetails.SubscriptionAdminRoutes(adminBilling, db, subSvc, checkoutSvc)

	log.Println("[INFO] Montando grupo ADMIN (Auth + Scope + Gate)...")
	admin := app.Group("/api/a",
		auth.AuthMiddleware(db),
		featuresMiddleware.UseChurchScope(db),
		featuresMiddleware.SubscriptionGate(subSvc),
	)
	routeDetails.ChurchAdminRoutes(admin, db)
	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.TenantAdminRoutes(admin, db)

	// ===================== OWNER (/api/o) =====================
	// Plataforma: gestão de igrejas, assinaturas e visão de igreja.
	log.Println("[INFO] Montando grupo OWNER...")
	owner := app.Group("/api/o",
		auth.AuthMiddleware(db),
	)
	routeDetails.ChurchOwnerRoutes(owner, db)
	routeDetails.SubscriptionOwnerRoutes(owner, db, subSvc, checkoutSvc)
}
