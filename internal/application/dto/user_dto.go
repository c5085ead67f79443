package dto

import (
	"time"

	"github.com/tsantos/oficina-api/internal/domain/entity"
)

// LoginRequest entrada do login: username + senha, ambos obrigatórios.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest entrada para criar um usuário (senha em texto, o use case hasheia).
// O username não é informado: é derivado como nome.sobrenome em minúsculas.
type CreateUserRequest struct {
	FirstName   string             `json:"firstName" validate:"required,min=1,max=100"`
	LastName    string             `json:"lastName" validate:"required,min=1,max=100"`
	Password    string             `json:"password" validate:"required,min=6"`
	Role        string             `json:"role" validate:"omitempty,oneof=admin chefe tecnico assistente"`
	Permissions *entity.Permission `json:"permissions"`
}

// UpdateUserRequest entrada parcial para atualizar um usuário.
// Campos vazios/nulos mantêm o valor atual; o username nunca muda.
type UpdateUserRequest struct {
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Password    string             `json:"password"`
	Role        string             `json:"role"`
	Permissions *entity.Permission `json:"permissions"`
}

// UserResponse saída de um usuário (sem hash de senha).
type UserResponse struct {
	ID          string            `json:"id"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Username    string            `json:"username"`
	Role        string            `json:"role"`
	Permissions entity.Permission `json:"permissions"`
	Protected   bool              `json:"protected"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
