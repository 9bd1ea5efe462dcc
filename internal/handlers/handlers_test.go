package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/salonkit/salon-manager/internal/config"
	dbpkg "github.com/salonkit/salon-manager/internal/db"
	"github.com/salonkit/salon-manager/internal/routes"
)

type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	uploads string
}

// setup builds a full router over an in-memory database, so handler tests
// exercise the real middleware, routing and storage paths.
func setup(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		ServerPort: "0",
		UploadDir:  t.TempDir(),
	}

	r := gin.New()
	routes.RegisterRoutes(r, gdb, cfg)

	return &testEnv{router: r, db: gdb, uploads: cfg.UploadDir}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signup registers a fresh user and returns its session token.
func (e *testEnv) signup(t *testing.T, email string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/auth/signup", "", gin.H{
		"email":    email,
		"password": "Sup3r!pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
