package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/recipebox/recipebox-go/internal/crypto"
)

// TokenHeader is the request header carrying the raw session token. The API
// uses a custom header rather than a Bearer scheme.
const TokenHeader = "X-Auth-Token"

type contextKey string

const userIDKey contextKey = "userID"

// JWTAuth returns middleware that validates the session token from the
// X-Auth-Token header. On failure the wrapped handler is never invoked.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "no token, authorization denied")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
