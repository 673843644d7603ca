package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igrejaku_backend/internals/constants"
)

func TestResolveScope_NonSuperadminStaysInOwnChurch(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	ownChurch := uuid.New()
	otherChurch := uuid.New()

	p := Profile{UserID: uuid.New(), Role: constants.RoleAdmin, ChurchID: &ownChurch}
	override := &Override{ChurchID: otherChurch, ExpiresAt: now.Add(time.Hour)}

	got := ResolveScope(p, override, now)
	require.NotNil(t, got)
	assert.Equal(t, ownChurch, *got, "override vigente não pode tirar admin do próprio tenant")

	// membro comum, sem override
	p.Role = constants.RoleMembro
	got = ResolveScope(p, nil, now)
	require.NotNil(t, got)
	assert.Equal(t, ownChurch, *got)
}

func TestResolveScope_SuperadminWithActiveOverride(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	target := uuid.New()

	p := Profile{UserID: uuid.New(), Role: constants.RoleSuperadmin, ChurchID: nil}
	override := &Override{ChurchID: target, ChurchName: "Igreja Central", ExpiresAt: now.Add(time.Hour)}

	got := ResolveScope(p, override, now)
	require.NotNil(t, got)
	assert.Equal(t, target, *got)
}

func TestResolveScope_SuperadminExpiredOverride(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	p := Profile{UserID: uuid.New(), Role: constants.RoleSuperadmin}

	expired := &Override{ChurchID: uuid.New(), ExpiresAt: now.Add(-time.Minute)}
	assert.Nil(t, ResolveScope(p, expired, now), "override expirado não escopa")

	// expiração exata também não vale
	exact := &Override{ChurchID: uuid.New(), ExpiresAt: now}
	assert.Nil(t, ResolveScope(p, exact, now))
}

func TestResolveScope_SuperadminWithoutOverride(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	p := Profile{UserID: uuid.New(), Role: constants.RoleSuperadmin}

	assert.Nil(t, ResolveScope(p, nil, now), "superadmin sem override opera sem escopo")
}
