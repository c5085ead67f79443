package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tsantos/oficina-api/internal/domain/entity"
	"github.com/tsantos/oficina-api/pkg/token"
)

// SessionCookie é o nome do cookie que carrega o token de sessão.
const SessionCookie = "session"

// SessionManager orquestra o ciclo de vida da sessão: criação no login,
// leitura/refresh a cada requisição e destruição no logout. A sessão não tem
// estado no servidor: existe apenas como token assinado dentro do cookie.
type SessionManager struct {
	codec  *token.Codec
	secure bool // Secure no cookie em produção
}

// NewSessionManager constrói o gerenciador de sessão.
func NewSessionManager(codec *token.Codec, secure bool) *SessionManager {
	return &SessionManager{codec: codec, secure: secure}
}

// Establish assina a identidade e grava o cookie de sessão na resposta.
func (m *SessionManager) Establish(c *fiber.Ctx, id entity.Identity) error {
	tok, err := m.codec.Encode(id)
	if err != nil {
		return err
	}
	m.setCookie(c, tok)
	return nil
}

// Read extrai e decodifica o cookie de sessão. Cookie ausente, token adulterado,
// expirado ou malformado resultam todos em nil: nunca propaga erro ao chamador.
func (m *SessionManager) Read(c *fiber.Ctx) *token.Claims {
	raw := c.Cookies(SessionCookie)
	if raw == "" {
		return nil
	}
	claims, err := m.codec.Decode(raw)
	if err != nil {
		return nil
	}
	return claims
}

// Refresh lê a sessão e, se válida, reassina os claims originais e renova o
// cookie. O exp é preservado: a validade é fixa em 24h do login original,
// apenas a assinatura é nova.
func (m *SessionManager) Refresh(c *fiber.Ctx) *entity.Identity {
	claims, err := m.refresh(c)
	if err != nil || claims == nil {
		return nil
	}
	return &claims.Identity
}

func (m *SessionManager) refresh(c *fiber.Ctx) (*token.Claims, error) {
	claims := m.Read(c)
	if claims == nil {
		return nil, nil
	}
	tok, err := m.codec.Sign(*claims)
	if err != nil {
		return nil, err
	}
	m.setCookie(c, tok)
	return claims, nil
}

// Terminate destrói a sessão expirando o cookie. Idempotente: sem sessão é no-op.
func (m *SessionManager) Terminate(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (m *SessionManager) setCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   int(token.TTL.Seconds()),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
