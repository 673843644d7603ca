package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"igrejaku_backend/internals/constants"
	subModel "igrejaku_backend/internals/features/churches/subscription/model"
)

func TestEvaluateAccess_UnblockedStatuses(t *testing.T) {
	for _, status := range []subModel.SubscriptionStatus{
		subModel.StatusTrial,
		subModel.StatusAtiva,
		subModel.StatusInadimplente,
	} {
		got := EvaluateAccess(constants.RoleAdmin, StatusResult{Status: status, Blocked: false})
		assert.Equal(t, RenderApp, got.Render, "status %s deveria liberar o app", status)
		assert.Empty(t, got.Reason)
	}
}

func TestEvaluateAccess_BlockedStatuses(t *testing.T) {
	got := EvaluateAccess(constants.RoleAdmin, StatusResult{Status: subModel.StatusSuspensa, Blocked: true})
	assert.Equal(t, RenderBlocked, got.Render)
	assert.NotEmpty(t, got.Reason)

	got = EvaluateAccess(constants.RoleMembro, StatusResult{Status: subModel.StatusCancelada, Blocked: true})
	assert.Equal(t, RenderBlocked, got.Render)
	assert.NotEmpty(t, got.Reason)

	// motivos distintos para suspensa e cancelada
	suspended := EvaluateAccess(constants.RoleAdmin, StatusResult{Status: subModel.StatusSuspensa, Blocked: true})
	canceled := EvaluateAccess(constants.RoleAdmin, StatusResult{Status: subModel.StatusCancelada, Blocked: true})
	assert.NotEqual(t, suspended.Reason, canceled.Reason)
}

func TestEvaluateAccess_SuperadminBypass(t *testing.T) {
	got := EvaluateAccess(constants.RoleSuperadmin, StatusResult{Status: subModel.StatusCancelada, Blocked: true})
	assert.Equal(t, RenderApp, got.Render, "superadmin nunca é bloqueado por billing")
}
