package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tsantos/oficina-api/internal/application/auth"
	"github.com/tsantos/oficina-api/internal/application/usecase"
	"github.com/tsantos/oficina-api/internal/domain"
	"github.com/tsantos/oficina-api/internal/domain/entity"
	apphttp "github.com/tsantos/oficina-api/internal/interfaces/http"
	"github.com/tsantos/oficina-api/pkg/token"
)

const (
	testSecret = "segredo-de-teste-com-pelo-menos-32-bytes"
	testIssuer = "oficina-api-test"
)

// memRepo repositório em memória para os testes de handler.
type memRepo struct {
	users map[string]*entity.User // por username
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]*entity.User{}}
}

func (r *memRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrUsernameExists
	}
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) Update(_ context.Context, u *entity.User) error {
	for name, cur := range r.users {
		if cur.ID == u.ID {
			cp := *u
			r.users[name] = &cp
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	for name, cur := range r.users {
		if cur.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return nil
}

func (r *memRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// testEnv aplicação Fiber completa (API + Gate + páginas) sobre o repo em memória.
type testEnv struct {
	app   *fiber.App
	repo  *memRepo
	codec *token.Codec
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := newMemRepo()
	codec := token.New(testSecret, testIssuer)
	sessions := apphttp.NewSessionManager(codec, false)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:   auth.NewAuthUseCase(repo),
		UserUC:   usecase.NewUserUseCase(repo),
		Sessions: sessions,
		AppName:  "oficina-test",
	})
	return &testEnv{app: app, repo: repo, codec: codec}
}

// seedUser insere um usuário direto no repo, com senha bcrypt.
func (e *testEnv) seedUser(t *testing.T, first, last, password string, perms entity.Permission, protected bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           "id-" + entity.Username(first, last),
		FirstName:    first,
		LastName:     last,
		Username:     entity.Username(first, last),
		PasswordHash: string(hash),
		Role:         entity.RoleTecnico,
		Permissions:  perms,
		Protected:    protected,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, e.repo.Create(context.Background(), u))
	return u
}

// sessionToken emite um token de sessão válido para o usuário.
func (e *testEnv) sessionToken(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := e.codec.Encode(u.Identity())
	require.NoError(t, err)
	return tok
}
