package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/vedran77/tick/internal/service"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller, attached to the request context
// once the bearer token has been verified.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Auth guards a handler behind bearer-token verification. Requests without
// a valid token are rejected before the wrapped handler runs.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "Access denied. No token provided.")
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			user, err := authService.VerifyToken(r.Context(), tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrTokenExpired):
					unauthorized(w, "Token has expired")
				case errors.Is(err, service.ErrUserNotFound):
					unauthorized(w, "User not found")
				default:
					unauthorized(w, "Invalid token")
				}
				return
			}

			identity := Identity{UserID: user.ID, Email: user.Email}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the authenticated identity from the context. Only
// valid behind the Auth middleware.
func GetIdentity(ctx context.Context) Identity {
	return ctx.Value(identityKey).(Identity)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
