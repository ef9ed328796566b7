package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mmynk/roomiesync/internal/auth"
	"github.com/mmynk/roomiesync/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// RoommateIDKey is the context key for storing the authenticated roommate ID.
	RoommateIDKey contextKey = "roommate_id"
	// RoleKey is the context key for storing the authenticated roommate's role.
	RoleKey contextKey = "role"
)

// GetRoommateID extracts the roommate ID from the context.
// Returns empty string if not found.
func GetRoommateID(ctx context.Context) string {
	id, _ := ctx.Value(RoommateIDKey).(string)
	return id
}

// GetRole extracts the roommate role from the context.
func GetRole(ctx context.Context) models.Role {
	role, _ := ctx.Value(RoleKey).(models.Role)
	return role
}

// ErrorWriter renders an authentication failure.
type ErrorWriter func(w http.ResponseWriter, err error, code int)

// RequireAuth returns a middleware that validates the bearer token and adds the
// roommate ID and role to the request context. Requests for which skip returns
// true pass through untouched.
func RequireAuth(jwtManager *auth.JWTManager, skip func(*http.Request) bool, writeErr ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip != nil && skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeErr(w, auth.ErrMissingToken, http.StatusUnauthorized)
				return
			}

			// Parse Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeErr(w, auth.ErrInvalidToken, http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				writeErr(w, err, http.StatusUnauthorized)
				return
			}

			recordRoommate(r.Context(), claims.RoommateID)
			ctx := context.WithValue(r.Context(), RoommateIDKey, claims.RoommateID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
