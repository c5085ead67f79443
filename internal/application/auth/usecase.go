package auth

import (
	"context"

	"github.com/tsantos/oficina-api/internal/domain"
	"github.com/tsantos/oficina-api/internal/domain/entity"
	"github.com/tsantos/oficina-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash é um hash bcrypt válido de um valor descartável. Quando o username
// não existe, comparamos a senha recebida contra ele para que os dois caminhos
// de rejeição custem uma verificação bcrypt cada (mitiga enumeração por timing).
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthUseCase valida credenciais contra o repositório de usuários.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase constrói o caso de uso de autenticação.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Login busca o usuário pelo username e compara a senha com o hash bcrypt.
// Username desconhecido e senha errada produzem a MESMA rejeição
// (domain.ErrInvalidCredentials): o chamador nunca sabe qual campo falhou.
// Falhas do repositório propagam como erro de servidor, não como rejeição.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*entity.Identity, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	id := user.Identity()
	return &id, nil
}
