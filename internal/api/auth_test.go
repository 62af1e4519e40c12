package api_test

import (
	"campushub/internal/domain"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndMe(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "User created successfully", body["message"])
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)

	user := body["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "student", user["role"]) // default role
	assert.NotContains(t, user, "password_hash")

	// The token resolves back to the user just created.
	w = doRequest(t, r, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeBody(t, w)
	assert.Equal(t, user["id"], me["id"])
	assert.Equal(t, "alice@example.com", me["email"])
}

func TestSignupMissingFields(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "alice",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, w)["error"])
}

func TestSignupDuplicates(t *testing.T) {
	r, gdb, _ := newTestServer(t)
	createUser(t, gdb, "alice", "alice@example.com", "secret123", domain.RoleStudent)

	w := doRequest(t, r, http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "alice",
		"email":    "other@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already exists", decodeBody(t, w)["error"])

	w = doRequest(t, r, http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "bob",
		"email":    "alice@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, w)["error"])
}

func TestSignupInvalidRole(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "mallory",
		"email":    "mallory@example.com",
		"password": "secret123",
		"role":     "superuser",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid role", decodeBody(t, w)["error"])
}

func TestLogin(t *testing.T) {
	r, gdb, _ := newTestServer(t)
	createUser(t, gdb, "alice", "alice@example.com", "secret123", domain.RoleStudent)

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "alice@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["access_token"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	r, gdb, _ := newTestServer(t)
	createUser(t, gdb, "alice", "alice@example.com", "secret123", domain.RoleStudent)

	// Wrong password and unregistered email must be indistinguishable.
	for _, req := range []map[string]any{
		{"email": "alice@example.com", "password": "wrongpass"},
		{"email": "nobody@example.com", "password": "secret123"},
	} {
		w := doRequest(t, r, http.MethodPost, "/api/auth/login", req, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", map[string]any{"email": "alice@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing email or password", decodeBody(t, w)["error"])
}

func TestMeTokenFailures(t *testing.T) {
	r, gdb, _ := newTestServer(t)
	user := createUser(t, gdb, "alice", "alice@example.com", "secret123", domain.RoleStudent)

	// No token at all.
	w := doRequest(t, r, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Request does not contain an access token", decodeBody(t, w)["error"])

	// Tampered token.
	w = doRequest(t, r, http.MethodGet, "/api/auth/me", nil, "not.a.token")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, w)["error"])

	// Expired token.
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	w = doRequest(t, r, http.MethodGet, "/api/auth/me", nil, expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Token has expired", body["error"])
	assert.Equal(t, "token_expired", body["details"])
}

func TestMeUserGone(t *testing.T) {
	r, gdb, _ := newTestServer(t)
	user := createUser(t, gdb, "alice", "alice@example.com", "secret123", domain.RoleStudent)
	token := tokenFor(t, user.ID)

	require.NoError(t, gdb.Delete(&domain.User{}, user.ID).Error)

	w := doRequest(t, r, http.MethodGet, "/api/auth/me", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
}
