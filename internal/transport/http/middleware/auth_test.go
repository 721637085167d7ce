package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vedran77/tick/internal/repository/memory"
	"github.com/vedran77/tick/internal/service"
)

const testSecret = "test-secret"

func setup(t *testing.T) (*service.AuthService, string, uuid.UUID) {
	t.Helper()
	authService := service.NewAuthService(memory.NewUserRepo(), testSecret)

	user, err := authService.Register(context.Background(), service.RegisterInput{
		Email:    "a@x.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	resp, err := authService.Login(context.Background(), service.LoginInput{
		Email:    "a@x.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return authService, resp.AccessToken, user.ID
}

func TestAuthRejectsWithoutInvokingHandler(t *testing.T) {
	authService, _, _ := setup(t)

	tests := []struct {
		name    string
		header  string
		wantErr string
	}{
		{
			name:    "no header",
			header:  "",
			wantErr: "Access denied. No token provided.",
		},
		{
			name:    "wrong scheme",
			header:  "Basic abc123",
			wantErr: "Access denied. No token provided.",
		},
		{
			name:    "garbage token",
			header:  "Bearer not-a-jwt",
			wantErr: "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := Auth(authService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if called {
				t.Error("wrapped handler was invoked for an unauthenticated request")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body["error"] != tt.wantErr {
				t.Errorf("error = %q, want %q", body["error"], tt.wantErr)
			}
		})
	}
}

func TestAuthExpiredToken(t *testing.T) {
	authService, _, userID := setup(t)

	claims := jwt.MapClaims{
		"userId": userID.String(),
		"email":  "a@x.com",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	handler := Auth(authService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("wrapped handler was invoked for an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "Token has expired" {
		t.Errorf("error = %q, want %q", body["error"], "Token has expired")
	}
}

func TestAuthUserGone(t *testing.T) {
	// token references a user the store has never held
	authService := service.NewAuthService(memory.NewUserRepo(), testSecret)

	claims := jwt.MapClaims{
		"userId": uuid.New().String(),
		"email":  "ghost@x.com",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	handler := Auth(authService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("wrapped handler was invoked for a deleted user")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "User not found" {
		t.Errorf("error = %q, want %q", body["error"], "User not found")
	}
}

func TestAuthAttachesIdentity(t *testing.T) {
	authService, token, userID := setup(t)

	var got Identity
	handler := Auth(authService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetIdentity(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got.UserID != userID {
		t.Errorf("identity.UserID = %v, want %v", got.UserID, userID)
	}
	if got.Email != "a@x.com" {
		t.Errorf("identity.Email = %q, want %q", got.Email, "a@x.com")
	}
}
