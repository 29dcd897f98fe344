package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/application"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo simula el gate de credenciales con un único usuario
type fakeUserRepo struct {
	login    string
	password string
}

func (f *fakeUserRepo) Authenticate(login, password string) (*domain.Profile, error) {
	if login != f.login || password != f.password {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Profile{UserID: 1, FirstName: "Ana", AccountStatus: domain.AccountStatusActiva}, nil
}

func (f *fakeUserRepo) PasswordInUse(candidate string) (bool, error) { return false, nil }

func (f *fakeUserRepo) ChangePassword(login, newPassword string) error {
	f.password = newPassword
	return nil
}

func (f *fakeUserRepo) UpdateAccountStatus(userID int, status domain.AccountStatus) error {
	if userID != 1 {
		return domain.ErrNotFound
	}
	return nil
}

func (f *fakeUserRepo) LoginExists(login string, excludeUserID int) (bool, error) {
	return false, nil
}

type fakeAuditRepo struct{}

func (f *fakeAuditRepo) RecordAccess(rec domain.AccessRecord) error { return nil }
func (f *fakeAuditRepo) RecordError(rec domain.ErrorRecord) error   { return nil }

func newTestApp() *fiber.App {
	sessions := application.NewSessionManager(time.Hour)
	authService := application.NewAuthService(
		&fakeUserRepo{login: "agarcia", password: "Abc1!"},
		&fakeAuditRepo{},
		sessions,
		logger.New(logger.LevelError),
	)
	authHandler := NewAuthHandler(authService)
	stateHandler := NewModuleStateHandler(sessions)
	sessionMW := NewSessionMiddleware(authService)

	app := fiber.New()
	api := app.Group("/api")
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Put("/password", sessionMW, authHandler.ChangePassword)

	usuarios := api.Group("/usuarios", sessionMW)
	usuarios.Patch("/:id/estado", authHandler.UpdateAccountStatus)

	estados := api.Group("/estados", sessionMW)
	estados.Get("/:entity", stateHandler.Get)
	estados.Put("/:entity", stateHandler.Transition)

	return app
}

func postJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(HeaderSessionToken, token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := postJSON(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"login":    "agarcia",
		"password": "Abc1!",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"login":    "agarcia",
		"password": "Abc1!",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token   string          `json:"token"`
		Profile *domain.Profile `json:"profile"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
	require.NotNil(t, body.Profile)
	assert.Equal(t, "Ana", body.Profile.FirstName)
}

func TestLoginEndpointCredencialesInvalidas(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"login":    "agarcia",
		"password": "mala",
	})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRutaProtegidaSinToken(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, fiber.MethodPatch, "/api/usuarios/1/estado", "", map[string]string{
		"accountStatus": "Inactiva",
	})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRutaProtegidaConTokenInvalido(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, fiber.MethodPatch, "/api/usuarios/1/estado", "token-falso", map[string]string{
		"accountStatus": "Inactiva",
	})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateAccountStatusEndpoint(t *testing.T) {
	app := newTestApp()
	token := loginToken(t, app)

	resp := postJSON(t, app, fiber.MethodPatch, "/api/usuarios/1/estado", token, map[string]string{
		"accountStatus": "Inactiva",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUpdateAccountStatusEndpointNoEncontrado(t *testing.T) {
	app := newTestApp()
	token := loginToken(t, app)

	resp := postJSON(t, app, fiber.MethodPatch, "/api/usuarios/99/estado", token, map[string]string{
		"accountStatus": "Inactiva",
	})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestChangePasswordEndpoint(t *testing.T) {
	app := newTestApp()
	token := loginToken(t, app)

	resp := postJSON(t, app, fiber.MethodPut, "/api/auth/password", token, map[string]string{
		"currentPassword": "Abc1!",
		"newPassword":     "Xyz9$",
		"repeatPassword":  "Xyz9$",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogoutEndpointInvalidaLaSesion(t *testing.T) {
	app := newTestApp()
	token := loginToken(t, app)

	resp := postJSON(t, app, fiber.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Tras el logout el token ya no abre rutas protegidas
	resp = postJSON(t, app, fiber.MethodPatch, "/api/usuarios/1/estado", token, map[string]string{
		"accountStatus": "Inactiva",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
