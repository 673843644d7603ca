package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Taxonomia de erros de domínio. Controllers traduzem para HTTP com
// FromDomainError; services nunca engolem esses erros.
var (
	// Igreja/assinatura/registro inexistente.
	ErrNotFound = errors.New("registro não encontrado")

	// Mutação privilegiada por role sem permissão (ou troca de tenant por
	// não-superadmin).
	ErrAuthorization = errors.New("não autorizado para esta operação")

	// Violação de invariante interna (ex: grace_until < next_due_at).
	// Bug de lógica, não erro de usuário; logar como incidente.
	ErrInvariantViolation = errors.New("violação de invariante interna")

	// Banco/serviço remoto inacessível; dispara o modo degradado do gate.
	ErrUpstreamUnavailable = errors.New("serviço de dados indisponível")
)

// Wrapf preserva o sentinel na cadeia (errors.Is) com contexto.
func Wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}

// FromDomainError traduz a taxonomia para erros HTTP do fiber.
// Erros fora da taxonomia viram 500 genérico.
func FromDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrAuthorization):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvariantViolation):
		// não vaza detalhe interno para o cliente
		return fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	case errors.Is(err, ErrUpstreamUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}
}
