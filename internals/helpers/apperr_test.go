package helper

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapf_PreservesSentinel(t *testing.T) {
	err := Wrapf(ErrNotFound, "igreja %s", "abc")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "igreja abc")

	// duplo wrap continua rastreável
	outer := Wrapf(err, "camada externa")
	assert.ErrorIs(t, outer, ErrNotFound)
}

func TestFromDomainError(t *testing.T) {
	cases := []struct {
		in         error
		wantStatus int
	}{
		{Wrapf(ErrNotFound, "x"), fiber.StatusNotFound},
		{Wrapf(ErrAuthorization, "x"), fiber.StatusForbidden},
		{Wrapf(ErrInvariantViolation, "x"), fiber.StatusInternalServerError},
		{Wrapf(ErrUpstreamUnavailable, "x"), fiber.StatusServiceUnavailable},
		{errors.New("qualquer coisa"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		var fe *fiber.Error
		require.ErrorAs(t, FromDomainError(tc.in), &fe)
		assert.Equal(t, tc.wantStatus, fe.Code, tc.in.Error())
	}

	assert.NoError(t, FromDomainError(nil))
}

func TestFromDomainError_InternalDoesNotLeak(t *testing.T) {
	var fe *fiber.Error
	require.ErrorAs(t, FromDomainError(Wrapf(ErrInvariantViolation, "grace_until antes de next_due_at")), &fe)
	assert.Equal(t, "Erro interno", fe.Message)
}
