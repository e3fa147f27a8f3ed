package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"oracao/internal/config"
	"oracao/internal/database"
	"oracao/internal/repository"
	"oracao/internal/service"
	"oracao/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a Server against a fresh in-memory SQLite database.
// The Prometheus middleware is left out so repeated test runs do not fight
// over the default registry.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test_secret",
		Port:      "0",
	}

	userRepo := repository.NewUserRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	comentarioRepo := repository.NewComentarioRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		tokens:         token.NewService(cfg),
		userRepo:       userRepo,
		pedidoRepo:     pedidoRepo,
		comentarioRepo: comentarioRepo,
	}
	s.authService = service.NewAuthService(userRepo)
	s.pedidoService = service.NewPedidoService(pedidoRepo)
	s.comentarioService = service.NewComentarioService(comentarioRepo, pedidoRepo)

	app := fiber.New()
	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	return s, app
}

// doJSON performs a request with an optional bearer token and JSON body, and
// decodes the JSON response into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints returning a JSON array.
func doJSONList(t *testing.T, app *fiber.App, method, path, bearer string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// registerAndLogin creates an account and returns its bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"email":    username + "@email.com",
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}
