package entity

import (
	"strings"
	"time"
)

// Papéis válidos para User. O papel é apenas um rótulo para a UI:
// a autorização real vem sempre do mapa de permissões.
const (
	RoleAdmin      = "admin"
	RoleChefe      = "chefe"
	RoleTecnico    = "tecnico"
	RoleAssistente = "assistente"
)

// ValidRole indica se o papel informado é um dos reconhecidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleChefe, RoleTecnico, RoleAssistente:
		return true
	}
	return false
}

// BootstrapUsername é a conta administrativa pré-provisionada.
// Ela é imutável e indeletável em qualquer caminho de escrita.
const BootstrapUsername = "admin.admin"

// User representa um usuário do sistema (registro completo, com hash de senha).
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Username     string // formato: nome.sobrenome, único e imutável após criação
	PasswordHash string // bcrypt, nunca texto plano após persistir
	Role         string // admin, chefe, tecnico, assistente
	Permissions  Permission
	Protected    bool // true apenas para a conta bootstrap
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity é a representação sanitizada do usuário: tudo menos o segredo.
// É o payload do token de sessão e a resposta de /api/auth/session.
type Identity struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Username    string     `json:"username"`
	Role        string     `json:"role"`
	Permissions Permission `json:"permissions"`
}

// Identity devolve a identidade sanitizada do usuário.
func (u *User) Identity() Identity {
	return Identity{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Username:    u.Username,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}

// Username deriva o nome de usuário canônico: nome.sobrenome em minúsculas.
func Username(firstName, lastName string) string {
	return strings.ToLower(strings.TrimSpace(firstName)) + "." + strings.ToLower(strings.TrimSpace(lastName))
}
