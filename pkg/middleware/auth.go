package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/shallerhub/pkg/auth"
	"github.com/shashiranjanraj/shallerhub/pkg/response"
)

// claimsKey is the unexported context key for the authenticated claims.
type claimsKey struct{}

// AuthMiddleware validates the Bearer token and stores its claims in the
// request context for downstream handlers and the rbac gate.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" {
			response.Unauthorized(w, "Missing token")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the authenticated claims, if AuthMiddleware ran.
func ClaimsFromCtx(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

// RoleFromCtx returns the authenticated role, if any.
func RoleFromCtx(r *http.Request) (string, bool) {
	claims, ok := ClaimsFromCtx(r)
	if !ok {
		return "", false
	}
	return claims.Role, claims.Role != ""
}

// UserIDFromCtx returns the authenticated subject id, if any.
func UserIDFromCtx(r *http.Request) (string, bool) {
	claims, ok := ClaimsFromCtx(r)
	if !ok {
		return "", false
	}
	return claims.UserID, claims.UserID != ""
}
