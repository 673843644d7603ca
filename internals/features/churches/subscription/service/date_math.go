// internals/features/churches/subscription/service/date_math.go
package service

import "time"

// Aritmética de datas do ciclo de assinatura. Tudo em granularidade de dia,
// comparando à meia-noite UTC para não sofrer off-by-one entre fusos.

// MidnightUTC trunca o instante para 00:00 UTC do mesmo dia.
func MidnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays soma n dias corridos (n pode ser negativo).
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween devolve b - a em dias inteiros (negativo se b antes de a).
func DaysBetween(a, b time.Time) int {
	am := MidnightUTC(a)
	bm := MidnightUTC(b)
	return int(bm.Sub(am) / (24 * time.Hour))
}

// IsWithinTrial diz se "now" ainda cai dentro do trial iniciado em createdAt.
func IsWithinTrial(createdAt, now time.Time, trialDays int) bool {
	return DaysBetween(createdAt, now) < trialDays
}
