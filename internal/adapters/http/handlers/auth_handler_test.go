package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/pkg/response"
)

func TestRegisterAndLoginFlow(t *testing.T) {
	users := newFakeUserRepo()
	app := newTestApp(users, newFakeCourseRepo(), newFakeGradeRepo())

	body := `{"username":"malee","password":"secret123","role":"student","email":"malee@school.local"}`
	resp, err := app.Test(authedRequest(http.MethodPost, "/api/auth/register", "", body))
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var msg response.Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}
	if msg.Message != "User created successfully" {
		t.Errorf("unexpected register message: %q", msg.Message)
	}

	loginBody := `{"username":"malee","password":"secret123"}`
	resp, err = app.Test(authedRequest(http.MethodPost, "/api/auth/login", "", loginBody))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Token string               `json:"token"`
		User  *models.UserResponse `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a session token")
	}
	if result.User == nil || result.User.Role != "student" {
		t.Errorf("unexpected login user: %+v", result.User)
	}

	// The token authenticates follow-up requests
	resp, err = app.Test(authedRequest(http.MethodGet, "/api/auth/me", result.Token, ""))
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /auth/me, got %d", resp.StatusCode)
	}

	var me models.UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		t.Fatalf("failed to decode me response: %v", err)
	}
	if me.Username != "malee" {
		t.Errorf("expected malee, got %s", me.Username)
	}
}

func TestRegisterUnknownRoleRejected(t *testing.T) {
	app := newTestApp(newFakeUserRepo(), newFakeCourseRepo(), newFakeGradeRepo())

	body := `{"username":"malee","password":"secret123","role":"superuser","email":"malee@school.local"}`
	resp, err := app.Test(authedRequest(http.MethodPost, "/api/auth/register", "", body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRegisterDuplicateUsernameRejected(t *testing.T) {
	app := newTestApp(newFakeUserRepo(), newFakeCourseRepo(), newFakeGradeRepo())

	body := `{"username":"malee","password":"secret123","role":"student","email":"malee@school.local"}`
	if _, err := app.Test(authedRequest(http.MethodPost, "/api/auth/register", "", body)); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	dup := `{"username":"malee","password":"other","role":"student","email":"other@school.local"}`
	resp, err := app.Test(authedRequest(http.MethodPost, "/api/auth/register", "", dup))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}

	var msg response.Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if msg.Message != "Username or email already exists" {
		t.Errorf("unexpected message: %q", msg.Message)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	app := newTestApp(newFakeUserRepo(), newFakeCourseRepo(), newFakeGradeRepo())

	body := `{"username":"malee","password":"secret123","role":"student","email":"malee@school.local"}`
	if _, err := app.Test(authedRequest(http.MethodPost, "/api/auth/register", "", body)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	for _, loginBody := range []string{
		`{"username":"malee","password":"wrong"}`,
		`{"username":"nobody","password":"secret123"}`,
	} {
		resp, err := app.Test(authedRequest(http.MethodPost, "/api/auth/login", "", loginBody))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("login %s: expected 401, got %d", loginBody, resp.StatusCode)
		}

		var msg response.Message
		if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if msg.Message != "Invalid credentials" {
			t.Errorf("expected uniform failure message, got %q", msg.Message)
		}
	}
}

func TestLoginMissingFields(t *testing.T) {
	app := newTestApp(newFakeUserRepo(), newFakeCourseRepo(), newFakeGradeRepo())

	resp, err := app.Test(authedRequest(http.MethodPost, "/api/auth/login", "", `{"username":"malee"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
