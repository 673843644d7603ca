package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subModel "igrejaku_backend/internals/features/churches/subscription/model"
	helper "igrejaku_backend/internals/helpers"
)

func newTestService() *SubscriptionService {
	return &SubscriptionService{
		Now:         time.Now,
		lastKnown:   make(map[uuid.UUID]lastKnownStatus),
		outageSince: make(map[uuid.UUID]time.Time),
	}
}

var errDBDown = errors.New("dial tcp: connection refused")

func TestDegraded_FreshLastKnownGood(t *testing.T) {
	s := newTestService()
	churchID := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	cached := StatusResult{Status: subModel.StatusInadimplente, Blocked: false}
	s.lastKnown[churchID] = lastKnownStatus{result: cached, seenAt: now.Add(-10 * time.Minute)}

	got, err := s.degraded(churchID, now, errDBDown)
	require.NoError(t, err)
	assert.Equal(t, cached, got, "last-known-good fresco deve ser devolvido como está")
}

func TestDegraded_StaleCacheFailsOpen(t *testing.T) {
	s := newTestService()
	churchID := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// cache existe mas passou da janela de frescor
	s.lastKnown[churchID] = lastKnownStatus{
		result: StatusResult{Status: subModel.StatusSuspensa, Blocked: true},
		seenAt: now.Add(-LastKnownGoodWindow - time.Minute),
	}

	got, err := s.degraded(churchID, now, errDBDown)
	require.NoError(t, err)
	assert.Equal(t, subModel.StatusAtiva, got.Status)
	assert.False(t, got.Blocked, "fail-open nunca bloqueia")
}

func TestDegraded_NoCacheFailsOpen(t *testing.T) {
	s := newTestService()
	churchID := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	got, err := s.degraded(churchID, now, errDBDown)
	require.NoError(t, err)
	assert.Equal(t, subModel.StatusAtiva, got.Status)
}

func TestDegraded_OutageBeyondWindowFailsClosed(t *testing.T) {
	s := newTestService()
	churchID := uuid.New()
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// primeira falha marca o início da indisponibilidade
	_, err := s.degraded(churchID, start, errDBDown)
	require.NoError(t, err)

	// dentro da janela ainda abre
	_, err = s.degraded(churchID, start.Add(FailOpenWindow), errDBDown)
	require.NoError(t, err)

	// estourou: fecha
	_, err = s.degraded(churchID, start.Add(FailOpenWindow+time.Minute), errDBDown)
	require.Error(t, err)
	assert.ErrorIs(t, err, helper.ErrUpstreamUnavailable)
}

func TestDegraded_FreshCacheOutlivesFailOpenWindow(t *testing.T) {
	s := newTestService()
	churchID := uuid.New()
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.outageSince[churchID] = start.Add(-2 * time.Hour)

	// cache fresco vale mesmo com outage longa em andamento
	cached := StatusResult{Status: subModel.StatusAtiva, Blocked: false}
	s.lastKnown[churchID] = lastKnownStatus{result: cached, seenAt: start.Add(-5 * time.Minute)}

	got, err := s.degraded(churchID, start, errDBDown)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}
