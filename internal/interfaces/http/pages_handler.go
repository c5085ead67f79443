package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serve as rotas de página do painel. A renderização real fica no
// front; aqui cada página entrega apenas o shell HTML mínimo. O que importa é
// que as rotas existam como alvos protegidos do Gate.
type PageHandler struct {
	appName string
}

// NewPageHandler constrói o handler de páginas.
func NewPageHandler(appName string) *PageHandler {
	return &PageHandler{appName: appName}
}

// Pages são as páginas do painel com seus títulos.
var Pages = map[string]string{
	"/projects":    "Projetos",
	"/stock":       "Estoque",
	"/tests":       "Procedimentos de Teste",
	"/shipping":    "Checklist de Envio",
	"/deliveries":  "Entregas",
	"/orders":      "Pedidos",
	"/settings":    "Configurações",
	"/admin/users": "Usuários",
}

// Root redireciona a raiz para a rota padrão do painel.
func (h *PageHandler) Root(c *fiber.Ctx) error {
	return c.Redirect(DefaultLandingPath, fiber.StatusFound)
}

// Login serve o shell da página de login (única página pública).
func (h *PageHandler) Login(c *fiber.Ctx) error {
	return h.shell(c, "Login")
}

// Page devolve o handler do shell de uma página protegida.
func (h *PageHandler) Page(title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h.shell(c, title)
	}
}

func (h *PageHandler) shell(c *fiber.Ctx, title string) error {
	c.Type("html", "utf-8")
	var user string
	if ident := GetIdentity(c); ident != nil {
		user = fmt.Sprintf("%s %s", ident.FirstName, ident.LastName)
	}
	return c.SendString(fmt.Sprintf(
		`<!DOCTYPE html><html lang="pt-BR"><head><title>%s | %s</title></head>`+
			`<body data-user="%s"><div id="app"></div><script src="/static/app.js"></script></body></html>`,
		title, h.appName, user,
	))
}
