package server

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"oracao/internal/models"
	"oracao/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateIsRejected(t *testing.T) {
	_, app := newTestServer(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "maria", "email": "maria@email.com", "password": "x",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "maria", "email": "other@email.com", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "Username")

	status, body = doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "maria2", "email": "maria@email.com", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "Email")
}

func TestRegisterNeverLeaksPassword(t *testing.T) {
	_, app := newTestServer(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "maria", "email": "maria@email.com", "password": "x",
	})
	require.Equal(t, http.StatusCreated, status)

	user := body["user"].(map[string]any)
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "password hash must never appear on the wire")
}

func TestLoginInvalidCredentials(t *testing.T) {
	_, app := newTestServer(t)
	registerAndLogin(t, app, "maria", "x")

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "maria", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body2 := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "nobody", "password": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Unknown user and wrong password are indistinguishable.
	assert.Equal(t, body["error"], body2["error"])
}

func TestAuthMiddlewareRejections(t *testing.T) {
	s, app := newTestServer(t)

	// No token at all.
	status, _ := doJSON(t, app, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// Garbage token.
	status, _ = doJSON(t, app, http.MethodGet, "/api/auth/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// Expired token.
	past := time.Now().UTC().Add(-48 * time.Hour)
	expiredSvc := token.NewService(s.config).WithClock(func() time.Time { return past })
	expired, err := expiredSvc.Issue(&models.User{ID: 1, Username: "maria"})
	require.NoError(t, err)

	status, body := doJSON(t, app, http.MethodGet, "/api/auth/profile", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token expired", body["error"])

	// Structurally valid token pointing at a user that does not exist.
	ghost, err := s.tokens.Issue(&models.User{ID: 999, Username: "ghost"})
	require.NoError(t, err)
	status, _ = doJSON(t, app, http.MethodGet, "/api/auth/profile", ghost, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProfileUpdateAndChangePassword(t *testing.T) {
	_, app := newTestServer(t)
	tok := registerAndLogin(t, app, "maria", "x")

	status, body := doJSON(t, app, http.MethodPut, "/api/auth/profile", tok, map[string]any{
		"nome_completo": "Maria Silva",
	})
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Maria Silva", user["nome_completo"])
	assert.Equal(t, "maria@email.com", user["email"], "absent fields untouched")

	// Wrong current password.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/change-password", tok, map[string]any{
		"current_password": "wrong", "new_password": "new-pw",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// Successful change; the old password stops working.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/change-password", tok, map[string]any{
		"current_password": "x", "new_password": "new-pw",
	})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "maria", "password": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "maria", "password": "new-pw",
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestUserAdministration(t *testing.T) {
	_, app := newTestServer(t)

	mariaToken := registerAndLogin(t, app, "maria", "x")    // admin
	carlosToken := registerAndLogin(t, app, "carlos", "pw") // regular

	// Listing users is admin-only.
	status, users := doJSONList(t, app, http.MethodGet, "/api/auth/users", mariaToken)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, users, 2)

	status, _ = doJSONList(t, app, http.MethodGet, "/api/auth/users", carlosToken)
	assert.Equal(t, http.StatusForbidden, status)

	carlosID := 0
	for _, u := range users {
		if u["username"] == "carlos" {
			carlosID = int(u["id"].(float64))
		}
	}
	require.NotZero(t, carlosID)

	// Maria promotes carlos.
	status, body := doJSON(t, app, http.MethodPut, "/api/auth/users/"+strconv.Itoa(carlosID)+"/admin", mariaToken, nil)
	require.Equal(t, http.StatusOK, status)
	promoted := body["user"].(map[string]any)
	assert.Equal(t, true, promoted["is_admin"])

	// Self-toggle is forbidden.
	mariaID := 0
	for _, u := range users {
		if u["username"] == "maria" {
			mariaID = int(u["id"].(float64))
		}
	}
	status, _ = doJSON(t, app, http.MethodPut, "/api/auth/users/"+strconv.Itoa(mariaID)+"/admin", mariaToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// Non-admins cannot reach the route at all.
	pedroToken := registerAndLogin(t, app, "pedro", "pw")
	status, _ = doJSON(t, app, http.MethodPut, "/api/auth/users/"+strconv.Itoa(carlosID)+"/admin", pedroToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
}
