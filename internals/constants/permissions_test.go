package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, CanEditBilling))
	assert.True(t, HasPermission(RoleSuperadmin, CanEditBilling))
	assert.False(t, HasPermission(RolePastor, CanEditBilling), "pastor cuida do rebanho, não da cobrança")

	assert.True(t, HasPermission(RoleTesoureiro, CanManageFinance))
	assert.False(t, HasPermission(RoleTesoureiro, CanManageMembers))

	assert.True(t, HasPermission(RoleLiderCelula, CanManageCells))
	assert.False(t, HasPermission(RoleLiderCelula, CanManageMinistries))

	assert.False(t, HasPermission(RoleMembro, CanManageEvents))
	assert.False(t, HasPermission(RoleCongregado, CanManageEvents))
}

func TestHasPermission_UnknownRole(t *testing.T) {
	assert.False(t, HasPermission("hacker", CanEditBilling))
	assert.False(t, HasPermission("", CanManageChurch))
}

func TestPermissionsFor(t *testing.T) {
	assert.Len(t, PermissionsFor(RoleSuperadmin), 9)
	assert.Len(t, PermissionsFor(RoleAdmin), 9)
	assert.Empty(t, PermissionsFor(RoleMembro))
	assert.Empty(t, PermissionsFor("inexistente"))

	treasury := PermissionsFor(RoleTesoureiro)
	assert.Equal(t, []Permission{CanManageFinance}, treasury)
}

func TestRolesWith(t *testing.T) {
	billing := RolesWith(CanEditBilling)
	assert.ElementsMatch(t, []string{RoleSuperadmin, RoleAdmin}, billing)

	finance := RolesWith(CanManageFinance)
	assert.Contains(t, finance, RoleTesoureiro)
	assert.Contains(t, finance, RoleAdmin)
	assert.NotContains(t, finance, RoleSecretario)
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, IsValidRole(r), r)
	}
	assert.False(t, IsValidRole("Admin"), "enum é case sensitive")
	assert.False(t, IsValidRole("root"))
	assert.False(t, IsValidRole(""))
}
