package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vecindo/registro-api/internal/application/dto"
	"github.com/vecindo/registro-api/internal/application/flow"
)

// LocalSession key de la sesión del asistente en c.Locals.
const LocalSession = "flow_session"

// sessionRegistry es el contrato mínimo que necesita el middleware para
// resolver la sesión del asistente por cuenta.
type sessionRegistry interface {
	Session(accountID string) *flow.Engine
}

// WithSession resuelve (o crea) la sesión del asistente de la cuenta
// autenticada y la deja en c.Locals. Debe usarse DESPUÉS de AuthMiddleware.
func WithSession(registry sessionRegistry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID := GetAccountID(c)
		if accountID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "account_id no encontrado en el token",
			})
		}
		c.Locals(LocalSession, registry.Session(accountID))
		return c.Next()
	}
}

// GetSession devuelve la sesión del asistente del contexto.
func GetSession(c *fiber.Ctx) *flow.Engine {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	e, _ := v.(*flow.Engine)
	return e
}
