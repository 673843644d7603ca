package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMidnightUTC(t *testing.T) {
	in := time.Date(2024, 6, 15, 18, 30, 45, 123, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), MidnightUTC(in))

	// instante noturno em UTC-3 já é o dia seguinte em UTC
	sp := time.FixedZone("-03", -3*60*60)
	in = time.Date(2024, 6, 15, 22, 0, 0, 0, sp) // 01:00 UTC do dia 16
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), MidnightUTC(in))
}

func TestAddDays(t *testing.T) {
	base := day(2024, 1, 31)
	assert.Equal(t, day(2024, 2, 1), AddDays(base, 1))
	assert.Equal(t, day(2024, 3, 1), AddDays(base, 30))
	assert.Equal(t, day(2024, 1, 30), AddDays(base, -1))

	// ano bissexto
	assert.Equal(t, day(2024, 2, 29), AddDays(day(2024, 2, 28), 1))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(day(2024, 1, 1), day(2024, 1, 1)))
	assert.Equal(t, 1, DaysBetween(day(2024, 1, 1), day(2024, 1, 2)))
	assert.Equal(t, -1, DaysBetween(day(2024, 1, 2), day(2024, 1, 1)))
	assert.Equal(t, 31, DaysBetween(day(2024, 1, 1), day(2024, 2, 1)))

	// horários dentro do dia não contam
	a := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
}

func TestIsWithinTrial(t *testing.T) {
	created := day(2024, 1, 1)

	assert.True(t, IsWithinTrial(created, day(2024, 1, 1), TrialDays))
	assert.True(t, IsWithinTrial(created, day(2024, 1, 7), TrialDays))
	assert.False(t, IsWithinTrial(created, day(2024, 1, 8), TrialDays))
}
