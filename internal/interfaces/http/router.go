package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tsantos/oficina-api/internal/application/auth"
	"github.com/tsantos/oficina-api/internal/application/usecase"
	"github.com/tsantos/oficina-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC   *auth.AuthUseCase
	UserUC   *usecase.UserUseCase
	Sessions *SessionManager
	AppName  string
}

// Router registra as rotas da aplicação: API de auth/usuários e as páginas do
// painel atrás do Gate.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login é público; session/logout operam sobre o cookie presente.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", authHandler.Session)
	authGroup.Post("/logout", authHandler.Logout)

	// Usuários: sessão obrigatória; escrita exige a capacidade correspondente.
	users := api.Group("/users", RequireSession(deps.Sessions))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", RequirePermission(entity.CapCreateUsers), userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", RequirePermission(entity.CapEditUsers), userHandler.Update)
	users.Delete("/:id", RequirePermission(entity.CapDeleteUsers), userHandler.Delete)

	// Páginas do painel: partição público/protegido aplicada pelo Gate.
	app.Use(Gate(deps.Sessions))

	pages := NewPageHandler(deps.AppName)
	app.Get("/", pages.Root)
	app.Get(LoginPath, pages.Login)
	for path, title := range Pages {
		app.Get(path, pages.Page(title))
	}
}
