package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	apitesting "github.com/AniketJas/volunteer-signup/api/controllers/testing"
	"github.com/AniketJas/volunteer-signup/api/models"
)

func TestLogin(t *testing.T) {
	t.Run("Happy path - valid credentials", func(t *testing.T) {
		env := setupTestEnv(t)

		res := apitesting.PerformRequest(env.router, http.MethodPost, "/api/login",
			models.LoginRequest{Email: "admin@ngo.org", Password: "admin123"})
		if res.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", res.Code)
		}

		var session models.SessionResponse
		if err := json.Unmarshal(res.Body.Bytes(), &session); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if !session.LoggedIn || session.Email != "admin@ngo.org" {
			t.Fatalf("unexpected session: %+v", session)
		}

		if len(env.logins.List()) != 1 {
			t.Fatalf("expected exactly 1 login record, got %d", len(env.logins.List()))
		}
	})

	t.Run("Unhappy path - invalid credentials", func(t *testing.T) {
		env := setupTestEnv(t)

		res := apitesting.PerformRequest(env.router, http.MethodPost, "/api/login",
			models.LoginRequest{Email: "admin@ngo.org", Password: "wrong"})
		if res.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", res.Code)
		}
		if len(env.logins.List()) != 0 {
			t.Fatal("expected no login record")
		}
	})

	t.Run("Unhappy path - malformed body", func(t *testing.T) {
		env := setupTestEnv(t)

		res := apitesting.PerformRequest(env.router, http.MethodPost, "/api/login", "not an object")
		if res.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", res.Code)
		}
	})
}

func TestLogout(t *testing.T) {
	env := setupTestEnv(t)

	apitesting.PerformRequest(env.router, http.MethodPost, "/api/login",
		models.LoginRequest{Email: "admin@ngo.org", Password: "admin123"})

	res := apitesting.PerformRequest(env.router, http.MethodPost, "/api/logout", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	// admin surface is gated again
	adminRes := apitesting.PerformRequest(env.router, http.MethodGet, "/api/admin/volunteers", nil)
	if adminRes.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", adminRes.Code)
	}
}

func TestSession(t *testing.T) {
	env := setupTestEnv(t)

	res := apitesting.PerformRequest(env.router, http.MethodGet, "/api/session", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var session models.SessionResponse
	if err := json.Unmarshal(res.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if session.LoggedIn {
		t.Fatal("expected logged-out session at start")
	}

	apitesting.PerformRequest(env.router, http.MethodPost, "/api/login",
		models.LoginRequest{Email: "admin@ngo.org", Password: "admin123"})

	res = apitesting.PerformRequest(env.router, http.MethodGet, "/api/session", nil)
	if err := json.Unmarshal(res.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !session.LoggedIn || session.Email != "admin@ngo.org" {
		t.Fatalf("unexpected session after login: %+v", session)
	}
}
