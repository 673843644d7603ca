// internals/features/churches/subscription/service/access_gate.go
package service

import (
	"igrejaku_backend/internals/constants"
	subModel "igrejaku_backend/internals/features/churches/subscription/model"
)

// Decisão do gate: app renderiza normal ou mostra a tela de bloqueio.
const (
	RenderApp     = "app"
	RenderBlocked = "blocked"
)

type GateDecision struct {
	Render string `json:"render"`
	Reason string `json:"reason,omitempty"`
}

// EvaluateAccess decide app vs bloqueio para (role, status). Assume caller já
// autenticado; a fronteira de auth é de outro middleware. Deve rodar a cada
// refresh de status, nunca cacheado além do request: um pagamento registrado
// em outra sessão precisa desbloquear esta no próximo check.
func EvaluateAccess(role string, st StatusResult) GateDecision {
	// operadores da plataforma nunca são bloqueados por billing de tenant
	if role == constants.RoleSuperadmin {
		return GateDecision{Render: RenderApp}
	}

	if !st.Blocked {
		return GateDecision{Render: RenderApp}
	}

	return GateDecision{Render: RenderBlocked, Reason: blockReason(st.Status)}
}

func blockReason(status subModel.SubscriptionStatus) string {
	switch status {
	case subModel.StatusCancelada:
		return "Assinatura cancelada. Fale com o suporte para reativar."
	case subModel.StatusSuspensa:
		return "Pagamento em atraso além do período de carência. Regularize para voltar a acessar."
	default:
		return "Acesso bloqueado pela situação da assinatura."
	}
}
