// internals/features/churches/subscription/service/status.go
package service

import (
	"time"

	subModel "igrejaku_backend/internals/features/churches/subscription/model"
	helper "igrejaku_backend/internals/helpers"
)

// Parâmetros do ciclo de cobrança.
const (
	TrialDays = 7  // dias de trial pós-criação (nunca bloqueia)
	CycleDays = 30 // ciclo de cobrança
	GraceDays = 5  // carência após o vencimento
)

// StatusInput é o registro mínimo para derivar o status. O status nunca é
// persistido: é recomputado a cada leitura (lazy), o que dispensa job agendado.
type StatusInput struct {
	CreatedAt    time.Time
	SubscribedAt time.Time
	NextDueAt    time.Time
	GraceUntil   time.Time
	ManualStatus *subModel.SubscriptionStatus
}

// StatusResult é o status autoritativo num dado instante.
type StatusResult struct {
	Status  subModel.SubscriptionStatus `json:"status"`
	Blocked bool                        `json:"blocked"`
}

// ComputeStatus deriva o status da assinatura. Avaliação em ordem, primeira
// regra que casar vence:
//  1. manual cancelada → cancelada, bloqueada (terminal até novo pagamento)
//  2. manual suspensa  → suspensa, bloqueada (até resume/pagamento)
//  3. dentro do trial  → trial, liberada (independe de pagamento)
//  4. now <= vencimento → ativa
//  5. vencida mas dentro da carência → inadimplente, ainda liberada
//  6. além da carência → suspensa automática, bloqueada
func ComputeStatus(in StatusInput, now time.Time) StatusResult {
	if in.ManualStatus != nil {
		switch *in.ManualStatus {
		case subModel.StatusCancelada:
			return StatusResult{Status: subModel.StatusCancelada, Blocked: true}
		case subModel.StatusSuspensa:
			return StatusResult{Status: subModel.StatusSuspensa, Blocked: true}
		}
	}

	if IsWithinTrial(in.CreatedAt, now, TrialDays) {
		return StatusResult{Status: subModel.StatusTrial, Blocked: false}
	}

	nowD := MidnightUTC(now)
	dueD := MidnightUTC(in.NextDueAt)
	graceD := MidnightUTC(in.GraceUntil)

	switch {
	case !nowD.After(dueD):
		return StatusResult{Status: subModel.StatusAtiva, Blocked: false}
	case !nowD.After(graceD):
		return StatusResult{Status: subModel.StatusInadimplente, Blocked: false}
	default:
		return StatusResult{Status: subModel.StatusSuspensa, Blocked: true}
	}
}

// CheckDateInvariants valida a ordenação das datas da janela. Violação aqui é
// bug de lógica, nunca erro de usuário: fail fast.
func CheckDateInvariants(in StatusInput) error {
	if in.NextDueAt.Before(in.SubscribedAt) {
		return helper.Wrapf(helper.ErrInvariantViolation, "next_due_at (%s) antes de subscribed_at (%s)",
			in.NextDueAt.Format("2006-01-02"), in.SubscribedAt.Format("2006-01-02"))
	}
	if in.GraceUntil.Before(in.NextDueAt) {
		return helper.Wrapf(helper.ErrInvariantViolation, "grace_until (%s) antes de next_due_at (%s)",
			in.GraceUntil.Format("2006-01-02"), in.NextDueAt.Format("2006-01-02"))
	}
	return nil
}

// DefaultWindow monta a janela inicial de cobrança a partir de um ponto de
// partida (criação da igreja ou data de pagamento).
func DefaultWindow(start time.Time) (subscribedAt, nextDueAt, graceUntil time.Time) {
	subscribedAt = start
	nextDueAt = AddDays(start, CycleDays)
	graceUntil = AddDays(nextDueAt, GraceDays)
	return
}
