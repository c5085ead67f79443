package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tsantos/oficina-api/internal/application/dto"
	"github.com/tsantos/oficina-api/internal/domain"
	"github.com/tsantos/oficina-api/internal/domain/entity"
	"github.com/tsantos/oficina-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase aplica as regras de negócio da administração de usuários,
// incluindo a proteção da conta bootstrap em todo caminho de escrita.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso com o porto de persistência.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create cria um usuário: deriva o username de nome.sobrenome, hasheia a senha
// com bcrypt e persiste. Recusa criar outro admin.admin (ErrProtectedUser) e
// username duplicado (ErrUsernameExists).
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAssistente
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	username := entity.Username(in.FirstName, in.LastName)
	if username == entity.BootstrapUsername {
		return nil, domain.ErrProtectedUser
	}
	existing, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	var perms entity.Permission // zero value: nega tudo
	if in.Permissions != nil {
		perms = *in.Permissions
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  perms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update aplica uma atualização parcial. A conta bootstrap é um alvo de edição
// proibido para qualquer chamador, inclusive com permissões completas.
// O username nunca é rederivado: é imutável após a criação.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Protected {
		return nil, domain.ErrProtectedUser
	}
	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Role != "" {
		if !entity.ValidRole(in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = in.Role
	}
	if in.Permissions != nil {
		user.Permissions = *in.Permissions
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete remove um usuário. A conta bootstrap é indeletável.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Protected {
		return domain.ErrProtectedUser
	}
	return uc.repo.Delete(ctx, id)
}

// GetByID obtém um usuário por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List lista todos os usuários (sem hash de senha).
func (uc *UserUseCase) List(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Username:    u.Username,
		Role:        u.Role,
		Permissions: u.Permissions,
		Protected:   u.Protected,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
