package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subModel "igrejaku_backend/internals/features/churches/subscription/model"
	helper "igrejaku_backend/internals/helpers"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// janela padrão a partir de uma criação em 2024-01-01:
// trial até 2024-01-07 (7 dias), vencimento 2024-01-31, carência até 2024-02-05.
func windowFrom(created time.Time) StatusInput {
	subscribedAt, nextDueAt, graceUntil := DefaultWindow(created)
	return StatusInput{
		CreatedAt:    created,
		SubscribedAt: subscribedAt,
		NextDueAt:    nextDueAt,
		GraceUntil:   graceUntil,
	}
}

func TestComputeStatus_Trial(t *testing.T) {
	in := windowFrom(day(2024, 1, 1))

	// dentro do trial
	got := ComputeStatus(in, day(2024, 1, 5))
	assert.Equal(t, subModel.StatusTrial, got.Status)
	assert.False(t, got.Blocked)

	// último dia de trial (dia 6 completo; DaysBetween=6 < 7)
	got = ComputeStatus(in, day(2024, 1, 7))
	assert.Equal(t, subModel.StatusTrial, got.Status)

	// dia 8: trial acabou, mas ainda antes do vencimento → ativa
	got = ComputeStatus(in, day(2024, 1, 8))
	assert.Equal(t, subModel.StatusAtiva, got.Status)
	assert.False(t, got.Blocked)
}

func TestComputeStatus_CycleBoundaries(t *testing.T) {
	in := windowFrom(day(2024, 1, 1))

	// exatamente no vencimento ainda é ativa
	got := ComputeStatus(in, day(2024, 1, 31))
	assert.Equal(t, subModel.StatusAtiva, got.Status)

	// um dia depois entra na carência
	got = ComputeStatus(in, day(2024, 2, 1))
	assert.Equal(t, subModel.StatusInadimplente, got.Status)
	assert.False(t, got.Blocked, "inadimplente ainda tem acesso")

	// último dia da carência
	got = ComputeStatus(in, day(2024, 2, 5))
	assert.Equal(t, subModel.StatusInadimplente, got.Status)

	// estourou a carência → suspensa e bloqueada
	got = ComputeStatus(in, day(2024, 2, 6))
	assert.Equal(t, subModel.StatusSuspensa, got.Status)
	assert.True(t, got.Blocked)
}

func TestComputeStatus_DayGranularity(t *testing.T) {
	in := windowFrom(day(2024, 1, 1))

	// 23:59 UTC do dia do vencimento conta como o mesmo dia
	lateSameDay := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	got := ComputeStatus(in, lateSameDay)
	assert.Equal(t, subModel.StatusAtiva, got.Status)

	// horário em outro fuso que ainda é dia 31 em UTC
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	inSP := time.Date(2024, 1, 31, 20, 0, 0, 0, sp) // 23:00 UTC do dia 31
	got = ComputeStatus(in, inSP)
	assert.Equal(t, subModel.StatusAtiva, got.Status)
}

func TestComputeStatus_ManualOverrides(t *testing.T) {
	in := windowFrom(day(2024, 1, 1))
	now := day(2024, 1, 5) // estaria em trial

	suspensa := subModel.StatusSuspensa
	in.ManualStatus = &suspensa
	got := ComputeStatus(in, now)
	assert.Equal(t, subModel.StatusSuspensa, got.Status)
	assert.True(t, got.Blocked, "override manual vence até o trial")

	cancelada := subModel.StatusCancelada
	in.ManualStatus = &cancelada
	got = ComputeStatus(in, now)
	assert.Equal(t, subModel.StatusCancelada, got.Status)
	assert.True(t, got.Blocked)

	// cancelada tem precedência na ordem de avaliação mesmo com janela válida
	got = ComputeStatus(in, day(2030, 1, 1))
	assert.Equal(t, subModel.StatusCancelada, got.Status)
}

func TestComputeStatus_PaymentRestartsWindow(t *testing.T) {
	// igreja suspensa em 2024-02-06 paga nesse dia: nova janela a partir de agora
	paidAt := day(2024, 2, 6)
	subscribedAt, nextDueAt, graceUntil := DefaultWindow(paidAt)
	in := StatusInput{
		CreatedAt:    day(2024, 1, 1),
		SubscribedAt: subscribedAt,
		NextDueAt:    nextDueAt,
		GraceUntil:   graceUntil,
	}

	got := ComputeStatus(in, paidAt)
	assert.Equal(t, subModel.StatusAtiva, got.Status)
	assert.False(t, got.Blocked)

	// novo vencimento 30 dias depois do pagamento
	assert.Equal(t, day(2024, 3, 7), MidnightUTC(nextDueAt))
	got = ComputeStatus(in, day(2024, 3, 7))
	assert.Equal(t, subModel.StatusAtiva, got.Status)
	got = ComputeStatus(in, day(2024, 3, 8))
	assert.Equal(t, subModel.StatusInadimplente, got.Status)
}

func TestComputeStatus_Deterministic(t *testing.T) {
	in := windowFrom(day(2024, 1, 1))
	now := day(2024, 2, 3)

	first := ComputeStatus(in, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeStatus(in, now), "mesma entrada, mesmo resultado")
	}
}

func TestCheckDateInvariants(t *testing.T) {
	valid := windowFrom(day(2024, 1, 1))
	assert.NoError(t, CheckDateInvariants(valid))

	bad := valid
	bad.NextDueAt = day(2023, 12, 1)
	err := CheckDateInvariants(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, helper.ErrInvariantViolation)

	bad = valid
	bad.GraceUntil = valid.NextDueAt.AddDate(0, 0, -1)
	err = CheckDateInvariants(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, helper.ErrInvariantViolation)
}

func TestDefaultWindow(t *testing.T) {
	start := day(2024, 1, 1)
	subscribedAt, nextDueAt, graceUntil := DefaultWindow(start)

	assert.Equal(t, start, subscribedAt)
	assert.Equal(t, day(2024, 1, 31), nextDueAt)
	assert.Equal(t, day(2024, 2, 5), graceUntil)
}
