package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsantos/oficina-api/internal/domain/entity"
	apphttp "github.com/tsantos/oficina-api/internal/interfaces/http"
)

// apiRequest lança uma requisição JSON contra a API, com sessão opcional.
func apiRequest(t *testing.T, env *testEnv, method, path, body, sessionToken string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: sessionToken})
	}
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.SessionCookie {
			return ck
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Usuário inexistente: credenciais inválidas, nenhum cookie definido.
func TestLogin_UsuarioInexistente(t *testing.T) {
	env := newTestEnv(t)

	resp := apiRequest(t, env, http.MethodPost, "/api/auth/login",
		`{"username":"joao.silva","password":"senha123"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, sessionCookie(resp), "login rejeitado não define cookie")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_CREDENTIALS")
	assert.NotContains(t, string(body), "usuário", "a rejeição não diz qual campo falhou")
}

// Senha errada produz exatamente a mesma resposta que usuário inexistente.
func TestLogin_RespostaUniforme(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "Joao", "Silva", "senha123", entity.Permission{}, false)

	respDesconhecido := apiRequest(t, env, http.MethodPost, "/api/auth/login",
		`{"username":"nao.existe","password":"x"}`, "")
	defer respDesconhecido.Body.Close()
	respErrada := apiRequest(t, env, http.MethodPost, "/api/auth/login",
		`{"username":"joao.silva","password":"errada"}`, "")
	defer respErrada.Body.Close()

	assert.Equal(t, respDesconhecido.StatusCode, respErrada.StatusCode)
	b1, _ := io.ReadAll(respDesconhecido.Body)
	b2, _ := io.ReadAll(respErrada.Body)
	assert.Equal(t, string(b1), string(b2), "os dois corpos de rejeição devem ser idênticos")
}

func TestLogin_CamposObrigatorios(t *testing.T) {
	env := newTestEnv(t)

	// Validação antes de tocar no repositório
	resp := apiRequest(t, env, http.MethodPost, "/api/auth/login", `{"username":"joao.silva"}`, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Criação + login de ponta a ponta: Joao Silva vira joao.silva e consegue entrar.
func TestLogin_PontaAPonta(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "Ana", "Gerente", "chefia", entity.FullPermissions(), false)
	adminTok := env.sessionToken(t, admin)

	// Cria o usuário pela API
	create := apiRequest(t, env, http.MethodPost, "/api/users",
		`{"firstName":"Joao","lastName":"Silva","password":"senha123","role":"tecnico"}`, adminTok)
	defer create.Body.Close()
	require.Equal(t, http.StatusCreated, create.StatusCode)

	var created map[string]any
	require.NoError(t, json.NewDecoder(create.Body).Decode(&created))
	assert.Equal(t, "joao.silva", created["username"])
	assert.NotContains(t, created, "password")
	assert.NotContains(t, created, "passwordHash")

	// Login com as credenciais recém-criadas
	login := apiRequest(t, env, http.MethodPost, "/api/auth/login",
		`{"username":"joao.silva","password":"senha123"}`, "")
	defer login.Body.Close()
	require.Equal(t, http.StatusOK, login.StatusCode)

	ck := sessionCookie(login)
	require.NotNil(t, ck, "login bem-sucedido define o cookie de sessão")
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, 86400, ck.MaxAge)
	assert.NotEmpty(t, ck.Value)

	var ident map[string]any
	require.NoError(t, json.NewDecoder(login.Body).Decode(&ident))
	assert.Equal(t, "joao.silva", ident["username"])
	assert.Equal(t, "Joao", ident["firstName"])
	assert.NotContains(t, ident, "password")

	// O token do cookie sustenta uma sessão válida
	sess := apiRequest(t, env, http.MethodGet, "/api/auth/session", "", ck.Value)
	defer sess.Body.Close()
	assert.Equal(t, http.StatusOK, sess.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Session / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_ComCookieValido(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "Joao", "Silva", "senha123", entity.Permission{EditStock: true}, false)

	resp := apiRequest(t, env, http.MethodGet, "/api/auth/session", "", env.sessionToken(t, u))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ident map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ident))
	assert.Equal(t, "joao.silva", ident["username"])

	perms, ok := ident["permissions"].(map[string]any)
	require.True(t, ok, "o payload carrega o mapa completo de permissões")
	assert.Equal(t, true, perms["editStock"])
	assert.Equal(t, false, perms["deleteUsers"], "permissão não concedida aparece como false, não ausente")
}

func TestSession_SemCookie(t *testing.T) {
	env := newTestEnv(t)

	resp := apiRequest(t, env, http.MethodGet, "/api/auth/session", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_LimpaCookie(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "Joao", "Silva", "senha123", entity.Permission{}, false)

	resp := apiRequest(t, env, http.MethodPost, "/api/auth/logout", "", env.sessionToken(t, u))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	ck := sessionCookie(resp)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value, "logout zera o valor do cookie")
	assert.True(t, ck.Expires.Before(time.Now()), "logout expira o cookie")
}

// Logout sem sessão é no-op bem-sucedido.
func TestLogout_Idempotente(t *testing.T) {
	env := newTestEnv(t)

	resp := apiRequest(t, env, http.MethodPost, "/api/auth/logout", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
