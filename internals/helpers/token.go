package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Chaves de locals preenchidas pelos middlewares de auth/escopo.
const (
	LocalsUserID        = "user_id"
	LocalsUserRole      = "user_role"
	LocalsChurchID      = "church_id"       // church do profile (pode ser vazio p/ superadmin)
	LocalsScopeChurchID = "scope_church_id" // escopo efetivo resolvido (override aplicado)
)

// GetUserID lê o user_id autenticado dos locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocalsUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id inválido no token")
	}
	return id, nil
}

// GetUserRole lê o role autenticado dos locals.
func GetUserRole(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals(LocalsUserRole).(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role ausente no token")
	}
	return role, nil
}

// GetScopeChurchID lê a igreja do escopo efetivo (resolvida pelo middleware de
// escopo, override de superadmin já aplicado). Erro se a rota exige tenant e
// nenhum foi resolvido.
func GetScopeChurchID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocalsScopeChurchID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Nenhuma igreja no escopo desta sessão")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Escopo de igreja inválido")
	}
	return id, nil
}

// GetProfileChurchID lê a igreja do próprio profile (sem override). Nil quando
// superadmin sem igreja.
func GetProfileChurchID(c *fiber.Ctx) *uuid.UUID {
	raw, ok := c.Locals(LocalsChurchID).(string)
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
