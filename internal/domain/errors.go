package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUsernameExists     = errors.New("o nome de usuário já está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidToken       = errors.New("token de sessão inválido ou expirado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")

	// ErrProtectedUser é a rejeição distinta para a conta bootstrap:
	// regra de política deliberada, nunca dobrada em falha genérica.
	ErrProtectedUser = errors.New("não é possível modificar o usuário administrador")
)
