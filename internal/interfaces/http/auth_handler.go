package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tsantos/oficina-api/internal/application/auth"
	"github.com/tsantos/oficina-api/internal/application/dto"
	"github.com/tsantos/oficina-api/internal/domain"
)

// AuthHandler maneja login, leitura de sessão e logout.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	sessions *SessionManager
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sessions *SessionManager) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

// Login valida credenciais e estabelece a sessão via cookie.
// A rejeição é sempre genérica: nunca indica qual campo falhou.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	// Campos obrigatórios antes de tocar no repositório
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username e password são obrigatórios"})
	}
	ident, err := h.uc.Login(c.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciais inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"})
	}
	if err := h.sessions.Establish(c, *ident); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao criar sessão"})
	}
	return c.JSON(ident)
}

// Session devolve a identidade da sessão atual, para a UI renderizar nome e papel.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	claims := h.sessions.Read(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "sessão ausente ou inválida"})
	}
	return c.JSON(claims.Identity)
}

// Logout destrói a sessão. Sempre sucede: logout sem sessão é no-op.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Terminate(c)
	return c.SendStatus(fiber.StatusNoContent)
}
