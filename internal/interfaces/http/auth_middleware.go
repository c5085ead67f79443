package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tsantos/oficina-api/internal/application/dto"
)

// RequireSession protege rotas de API: exige cookie de sessão válido e carrega
// a identidade em c.Locals. Diferente do Gate, responde 401 em vez de
// redirecionar (o consumidor é a UI via fetch, não o navegador navegando).
func RequireSession(sessions *SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := sessions.Read(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "NO_SESSION",
				Message: "sessão ausente ou inválida",
			})
		}
		ident := claims.Identity
		c.Locals(LocalIdentity, &ident)
		return c.Next()
	}
}

// RequirePermission autoriza uma ação pela capacidade nomeada do mapa de
// permissões. O papel nunca entra na decisão: é rótulo, não autorização.
// Deve ser usado DEPOIS de RequireSession.
func RequirePermission(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := GetIdentity(c)
		if ident == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "NO_SESSION",
				Message: "sessão ausente ou inválida",
			})
		}
		if !ident.Permissions.Has(capability) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "permissão '" + capability + "' necessária",
			})
		}
		return c.Next()
	}
}
