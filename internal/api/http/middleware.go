package http

import (
	"context"
	"net/http"
	"strings"

	"carshowroom-backend/internal/security"
)

type contextKey int

const claimsContextKey contextKey = iota

// AuthMiddleware validates the bearer token and injects the verified claims
// into the request context. Handlers take the acting user from these claims,
// never from client-supplied ids.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeMessage(w, http.StatusUnauthorized, "Authorization token is not provided!")
			return
		}

		token := header
		if len(token) > 7 && strings.EqualFold(token[0:7], "Bearer ") {
			token = token[7:]
		}

		claims, err := m.tokenManager.Validate(token)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid or expired token!")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	return claims, ok
}

// mustClaims writes a 401 and returns false when the request carries no
// verified identity. Only reachable if a protected route was wired without
// the middleware.
func mustClaims(w http.ResponseWriter, r *http.Request) (*security.UserClaims, bool) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization token is not provided!")
		return nil, false
	}
	return claims, true
}
