// internals/middlewares/features/church_scope.go
package features

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"igrejaku_backend/internals/constants"
	tenancyService "igrejaku_backend/internals/features/churches/tenancy/service"
	helper "igrejaku_backend/internals/helpers"
)

// UseChurchScope resolve a igreja efetiva da sessão e injeta em locals.
// Roda depois do AuthMiddleware. Para superadmin aplica o override
// "visualizar como igreja"; para os demais o override é ignorado por
// construção (ResolveScope).
func UseChurchScope(db *gorm.DB) fiber.Handler {
	scopeSvc := tenancyService.NewScopeService(db)

	return func(c *fiber.Ctx) error {
		role, err := helper.GetUserRole(c)
		if err != nil {
			return err
		}
		userID, err := helper.GetUserID(c)
		if err != nil {
			return err
		}

		profile := tenancyService.Profile{
			UserID:   userID,
			Role:     role,
			ChurchID: helper.GetProfileChurchID(c),
		}

		// profile de tenant sem igreja é estado de erro, não tolerado em silêncio
		if role != constants.RoleSuperadmin && profile.ChurchID == nil {
			log.Printf("[ERROR] profile %s (%s) sem church_id", userID, role)
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"Seu cadastro não está vinculado a nenhuma igreja. Fale com o administrador.")
		}

		var override *tenancyService.Override
		if role == constants.RoleSuperadmin {
			override, err = scopeSvc.CurrentOverride(userID)
			if err != nil {
				// falha ao ler override não derruba superadmin: segue sem escopo
				log.Printf("[WARN] override ilegível para %s: %v", userID, err)
				override = nil
			}
		}

		if scope := tenancyService.ResolveScope(profile, override, scopeSvc.Now()); scope != nil {
			c.Locals(helper.LocalsScopeChurchID, scope.String())
		}

		return c.Next()
	}
}
