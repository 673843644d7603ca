package constants

// Permission é uma capacidade nomeada consultada pelos middlewares e controllers.
// Fonte única de verdade de autorização, nada de comparação de role string
// espalhada por tela.
type Permission string

const (
	CanManageChurch     Permission = "can_manage_church"
	CanEditBilling      Permission = "can_edit_billing"
	CanManageMembers    Permission = "can_manage_members"
	CanManageMinistries Permission = "can_manage_ministries"
	CanManageCells      Permission = "can_manage_cells"
	CanManageEvents     Permission = "can_manage_events"
	CanManageDocuments  Permission = "can_manage_documents"
	CanManageFinance    Permission = "can_manage_finance"
	CanSendBroadcasts   Permission = "can_send_broadcasts"
)

func allPermissions() map[Permission]bool {
	return map[Permission]bool{
		CanManageChurch:     true,
		CanEditBilling:      true,
		CanManageMembers:    true,
		CanManageMinistries: true,
		CanManageCells:      true,
		CanManageEvents:     true,
		CanManageDocuments:  true,
		CanManageFinance:    true,
		CanSendBroadcasts:   true,
	}
}

// rolePermissions mapeia cada role do enum fechado para seu conjunto de
// permissões. Avaliado uma vez por request (middleware), não por tela.
var rolePermissions = map[string]map[Permission]bool{
	RoleSuperadmin: allPermissions(),
	RoleAdmin:      allPermissions(),
	RolePastor: {
		CanManageChurch:     true,
		CanManageMembers:    true,
		CanManageMinistries: true,
		CanManageCells:      true,
		CanManageEvents:     true,
		CanManageDocuments:  true,
		CanManageFinance:    true,
		CanSendBroadcasts:   true,
	},
	RoleSecretario: {
		CanManageMembers:    true,
		CanManageMinistries: true,
		CanManageCells:      true,
		CanManageEvents:     true,
		CanManageDocuments:  true,
		CanSendBroadcasts:   true,
	},
	RoleTesoureiro: {
		CanManageFinance: true,
	},
	RoleLiderCelula: {
		CanManageCells: true,
	},
	RoleLiderMinisterio: {
		CanManageMinistries: true,
	},
	RoleDiretorPatrimonio: {
		CanManageDocuments: true,
	},
	RoleMembro:     {},
	RoleCongregado: {},
	RoleAluno:      {},
}

// HasPermission responde se o role possui a permissão.
func HasPermission(role string, p Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[p]
}

// PermissionsFor devolve o conjunto de permissões ativas de um role.
func PermissionsFor(role string) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, 0, len(perms))
	for p, ok := range perms {
		if ok {
			out = append(out, p)
		}
	}
	return out
}

// RolesWith lista os roles que carregam a permissão (útil para montar grupos
// de rota no estilo OnlyRoles).
func RolesWith(p Permission) []string {
	var out []string
	for _, r := range AllRoles {
		if HasPermission(r, p) {
			out = append(out, r)
		}
	}
	return out
}
