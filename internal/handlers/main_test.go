package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/auth"
	"github.com/VersaceXcodes/eco5/internal/router"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	db.DB = gdb
	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	os.Setenv("JWT_SECRET", "test-secret")
	if err := auth.InitJWTSecret(); err != nil {
		t.Fatalf("jwt secret: %v", err)
	}

	return router.NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

// registerUser registers a fresh account and returns its id and token.
func registerUser(t *testing.T, r *gin.Engine, name, email, password string) (string, string) {
	t.Helper()

	body := `{"name":"` + name + `","email":"` + email + `","password":"` + password + `"}`
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		AuthToken string `json:"auth_token"`
	}
	decode(t, w, &payload)

	if payload.User.ID == "" || payload.AuthToken == "" {
		t.Fatalf("register: missing id or token in %s", w.Body.String())
	}

	return payload.User.ID, payload.AuthToken
}
