package handlers

import (
	"context"
	"net/http"
	"strings"

	"se-server/auth"
)

type contextKey string

const usernameKey contextKey = "username"

// RequireAuth wraps a handler with bearer-token validation. The username
// from a valid token lands in the request context for UsernameFrom.
func RequireAuth(tokens *auth.TokenManager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		username, err := tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), usernameKey, username)))
	}
}

// UsernameFrom returns the authenticated username set by RequireAuth.
func UsernameFrom(r *http.Request) string {
	username, _ := r.Context().Value(usernameKey).(string)
	return username
}
