package api_test

import (
	"bytes"
	"campushub/internal/api"
	"campushub/internal/config"
	"campushub/internal/db"
	"campushub/internal/domain"
	"campushub/internal/utils"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

var dbSeq int64

// newTestServer builds the full router over a fresh in-memory SQLite store
// and a miniredis-backed cache.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{JWTSecret: testSecret}
	return api.NewRouter(gdb, rdb, cfg), gdb, mr
}

// createUser inserts a user directly into the store.
func createUser(t *testing.T, gdb *gorm.DB, username, email, password string, role domain.Role) domain.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := domain.User{Username: username, Email: email, PasswordHash: hash, Role: role}
	require.NoError(t, gdb.Create(&user).Error)
	return user
}

// createCourse inserts a course directly into the store.
func createCourse(t *testing.T, gdb *gorm.DB, title string, instructorID uint, capacity int) domain.Course {
	t.Helper()
	course := domain.Course{Title: title, InstructorID: instructorID, Capacity: capacity}
	require.NoError(t, gdb.Create(&course).Error)
	return course
}

// tokenFor issues a valid session token for the user.
func tokenFor(t *testing.T, userID uint) string {
	t.Helper()
	token, err := utils.GenerateJWT(userID, testSecret)
	require.NoError(t, err)
	return token
}

// doRequest performs a JSON request against the router. An empty token
// leaves the Authorization header off.
func doRequest(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON object response body.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// decodeList unmarshals a JSON array response body.
func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}
