package handlers_test

import (
	"net/http"
	"testing"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/models"
)

func TestRegisterCreatesUserAndDashboard(t *testing.T) {
	r := setupServer(t)

	id, _ := registerUser(t, r, "Ada", "Ada@Example.com ", "password123")

	var user models.User
	if err := db.DB.Where("id = ?", id).First(&user).Error; err != nil {
		t.Fatalf("user row: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}

	var dashboard models.Dashboard
	if err := db.DB.Where("user_id = ?", id).First(&dashboard).Error; err != nil {
		t.Fatalf("dashboard not provisioned: %v", err)
	}
	if dashboard.CarbonFootprint != 0 {
		t.Fatalf("expected zeroed carbon footprint, got %v", dashboard.CarbonFootprint)
	}
	if dashboard.DailyTips != nil || dashboard.Challenges != nil {
		t.Fatalf("expected null text fields on fresh dashboard")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupServer(t)

	registerUser(t, r, "Ada", "ada@example.com", "password123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		`{"name":"Other","email":"ADA@example.com","password":"password456"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}

	var payload struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"error_code"`
	}
	decode(t, w, &payload)
	if payload.Success || payload.ErrorCode != "USER_ALREADY_EXISTS" {
		t.Fatalf("unexpected error payload: %s", w.Body.String())
	}

	var count int64
	db.DB.Model(&models.User{}).Where("email = ?", "ada@example.com").Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 user row, got %d", count)
	}
}

func TestLogin(t *testing.T) {
	r := setupServer(t)

	id, _ := registerUser(t, r, "Ada", "ada@example.com", "password123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		`{"email":"ada@example.com","password":"password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		AuthToken string `json:"auth_token"`
		UserID    string `json:"user_id"`
	}
	decode(t, w, &payload)
	if payload.AuthToken == "" || payload.UserID != id {
		t.Fatalf("unexpected login payload: %s", w.Body.String())
	}

	// Wrong password and unknown email fail identically.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		`{"email":"ada@example.com","password":"wrongpassword"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		`{"email":"nobody@example.com","password":"password123"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401 got %d", w.Code)
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r := setupServer(t)

	id, token := registerUser(t, r, "Ada", "ada@example.com", "password123")

	w := doJSON(t, r, http.MethodGet, "/api/users/"+id, "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: expected 401 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/users/"+id, "garbage-token", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/users/"+id, token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: expected 200 got %d: %s", w.Code, w.Body.String())
	}
}

func TestMe(t *testing.T) {
	r := setupServer(t)

	id, token := registerUser(t, r, "Ada", "ada@example.com", "password123")

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var payload struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decode(t, w, &payload)
	if payload.User.ID != id || payload.User.Email != "ada@example.com" {
		t.Fatalf("unexpected identity: %s", w.Body.String())
	}
}
