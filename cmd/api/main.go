package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tsantos/oficina-api/internal/application/auth"
	"github.com/tsantos/oficina-api/internal/application/usecase"
	"github.com/tsantos/oficina-api/internal/infrastructure/postgres"
	httpRouter "github.com/tsantos/oficina-api/internal/interfaces/http"
	"github.com/tsantos/oficina-api/pkg/config"
	"github.com/tsantos/oficina-api/pkg/logger"
	"github.com/tsantos/oficina-api/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Pré-condição de boot: sem segredo de sessão válido o processo não sobe.
	// Subir sem ele significaria servir rotas autenticadas sem autenticação real.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuração inválida")
	}

	ctx := context.Background()

	if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do schema")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	codec := token.New(cfg.Session.Secret, cfg.Session.Issuer)
	sessions := httpRouter.NewSessionManager(codec, cfg.App.Production())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Static("/static", "./web/static")

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:   authUC,
		UserUC:   userUC,
		Sessions: sessions,
		AppName:  cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
