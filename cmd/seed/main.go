// seed cria (ou reconcilia) a conta bootstrap admin.admin.
//
// Uso: SEED_ADMIN_PASSWORD=... go run ./cmd/seed
//
// A conta é protegida: o núcleo da aplicação recusa qualquer edição ou remoção
// dela. A reconciliação da credencial canônica (se o registro no banco derivar)
// é trabalho deste comando, que escreve direto no repositório.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tsantos/oficina-api/internal/domain/entity"
	"github.com/tsantos/oficina-api/internal/infrastructure/postgres"
	"github.com/tsantos/oficina-api/pkg/config"
	"github.com/tsantos/oficina-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD é obrigatório")
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

	repo := postgres.NewUserRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash da senha")
	}

	now := time.Now()
	existing, err := repo.FindByUsername(ctx, entity.BootstrapUsername)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar conta bootstrap")
	}

	if existing == nil {
		admin := &entity.User{
			ID:           uuid.New().String(),
			FirstName:    "Admin",
			LastName:     "Admin",
			Username:     entity.BootstrapUsername,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Permissions:  entity.FullPermissions(),
			Protected:    true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repo.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("criar conta bootstrap")
		}
		log.Info().Str("username", entity.BootstrapUsername).Msg("conta bootstrap criada")
		return
	}

	// Reconciliação: reaplica a credencial canônica e o conjunto completo de
	// permissões sobre o registro existente.
	existing.PasswordHash = string(hash)
	existing.Permissions = entity.FullPermissions()
	existing.Role = entity.RoleAdmin
	existing.UpdatedAt = now
	if err := repo.Update(ctx, existing); err != nil {
		log.Fatal().Err(err).Msg("reconciliar conta bootstrap")
	}
	log.Info().Str("username", entity.BootstrapUsername).Msg("conta bootstrap reconciliada")
}
