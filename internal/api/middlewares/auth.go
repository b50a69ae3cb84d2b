package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AhmedAli0123/books-by-karl/internal/auth"
)

// RequireAdmin verifies the Bearer token issued by the admin login. The
// panel has a single operator, so there is no per-user context to inject.
func RequireAdmin(svc *auth.Service, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			http.Error(w, "missing Authorization header", http.StatusUnauthorized)
			return
		}
		tokenStr, err := bearer(raw)
		if err != nil {
			http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
			return
		}
		if err := svc.Verify(tokenStr); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearer(h string) (string, error) {
	if !strings.HasPrefix(h, "Bearer ") && !strings.HasPrefix(h, "bearer ") {
		return "", errors.New("no bearer")
	}
	return strings.TrimSpace(h[len("Bearer "):]), nil
}
