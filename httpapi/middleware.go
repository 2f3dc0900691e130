package httpapi

import (
	"context"
	"net/http"
)

type contextKey string

const principalKey contextKey = "principal"

// requireAuth resolves the bearer token and stores the authenticated
// username in the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearer := r.Header.Get("Authorization")
		if bearer == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		username, err := s.validator.ResolveIdentity(bearer)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		ctx := context.WithValue(r.Context(), principalKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principal returns the authenticated username stored by requireAuth.
func principal(r *http.Request) string {
	if v, ok := r.Context().Value(principalKey).(string); ok {
		return v
	}
	return ""
}
