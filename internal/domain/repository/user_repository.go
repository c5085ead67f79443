package repository

import (
	"context"

	"github.com/tsantos/oficina-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
// O núcleo de autenticação depende apenas desta abstração; o armazenamento
// concreto (PostgreSQL) fica atrás dela.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.User, error)
}
