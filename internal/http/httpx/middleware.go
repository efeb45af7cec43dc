package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/stocktrail-app/stocktrail/internal/auth"
)

type contextKey string

const userKey contextKey = "user"

// Username returns the authenticated username from the request context,
// or the empty string when the request was not authenticated.
func Username(ctx context.Context) string {
	username, _ := ctx.Value(userKey).(string)
	return username
}

// Authenticator validates the bearer token and puts the acting username
// into the request context. Handlers never parse tokens themselves.
func Authenticator(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ValidateToken(secret, token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
