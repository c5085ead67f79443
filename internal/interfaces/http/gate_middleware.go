package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tsantos/oficina-api/internal/domain/entity"
)

// Local key da identidade autenticada em c.Locals.
const LocalIdentity = "identity"

// DefaultLandingPath é a rota padrão do painel após o login.
const DefaultLandingPath = "/projects"

// LoginPath é a única rota pública das páginas.
const LoginPath = "/login"

// Gate é o portão por requisição das páginas do painel. Classifica o caminho e
// aplica a partição público/protegido:
//
//   - /api, /static e /favicon.ico passam direto (as rotas de API fazem sua
//     própria verificação de sessão);
//   - /login com sessão válida redireciona para a rota padrão do painel;
//   - /login sem sessão é servido;
//   - qualquer outra rota sem sessão redireciona para /login?redirect=<destino>;
//   - qualquer outra rota com sessão passa, com a identidade em c.Locals e o
//     cookie reassinado.
func Gate(sessions *SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if bypassed(path) {
			return c.Next()
		}

		ident := sessions.Refresh(c)
		public := path == LoginPath

		switch {
		case public && ident != nil:
			return c.Redirect(DefaultLandingPath, fiber.StatusFound)
		case public:
			return c.Next()
		case ident == nil:
			return c.Redirect(LoginPath+"?redirect="+url.QueryEscape(path), fiber.StatusFound)
		default:
			c.Locals(LocalIdentity, ident)
			return c.Next()
		}
	}
}

// bypassed indica se o caminho fica inteiramente fora do portão.
func bypassed(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/") ||
		strings.HasPrefix(path, "/static/") ||
		path == "/favicon.ico"
}

// GetIdentity devolve a identidade do contexto (após Gate ou RequireSession).
func GetIdentity(c *fiber.Ctx) *entity.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*entity.Identity)
	return id
}
