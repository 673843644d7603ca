package constants

import "fmt"

// Roles fechados da plataforma (enum do banco: user_role_enum)
const (
	RoleSuperadmin        = "superadmin"
	RoleAdmin             = "admin"
	RolePastor            = "pastor"
	RoleSecretario        = "secretario"
	RoleTesoureiro        = "tesoureiro"
	RoleLiderCelula       = "lider_celula"
	RoleLiderMinisterio   = "lider_ministerio"
	RoleDiretorPatrimonio = "diretor_patrimonio"
	RoleMembro            = "membro"
	RoleCongregado        = "congregado"
	RoleAluno             = "aluno"
)

// Templates de mensagem de erro por role
const (
	ErrOnlyLeadershipCanAccess = "❌ Apenas liderança (admin, pastor ou secretário) pode acessar %s."
	ErrOnlyAdminsCanAccess     = "❌ Apenas administradores podem acessar %s."
	ErrOnlySuperadminCanAccess = "❌ Apenas a equipe da plataforma pode acessar %s."
	ErrOnlyTreasuryCanAccess   = "❌ Apenas a tesouraria pode acessar %s."
)

func RoleErrorLeadership(feature string) string {
	return fmt.Sprintf(ErrOnlyLeadershipCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminCanAccess, feature)
}

func RoleErrorTreasury(feature string) string {
	return fmt.Sprintf(ErrOnlyTreasuryCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperadmin,
		RoleAdmin,
		RolePastor,
		RoleSecretario,
		RoleTesoureiro,
		RoleLiderCelula,
		RoleLiderMinisterio,
		RoleDiretorPatrimonio,
		RoleMembro,
		RoleCongregado,
		RoleAluno,
	}

	LeadershipRoles = []string{
		RoleAdmin,
		RolePastor,
		RoleSecretario,
	}

	TreasuryRoles = []string{
		RoleAdmin,
		RolePastor,
		RoleTesoureiro,
	}

	AdminAndAbove = []string{
		RoleSuperadmin,
		RoleAdmin,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}
)

// IsValidRole confere se a string pertence ao enum fechado.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
