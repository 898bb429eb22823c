package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/revalyt/analytics-api/internal/config"
	"github.com/revalyt/analytics-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

var publicPaths = map[string]bool{
	"/api/auth/register":        true,
	"/api/auth/token":           true,
	"/api/auth/token/refresh":   true,
	"/api/auth/logout":          true,
	"/api/auth/password/forgot": true,
	"/api/auth/password/reset":  true,
	"/healthcheck":              true,
}

// AuthMiddleware valida o token de acesso via header Authorization ou,
// na ausência dele, via cookie httpOnly emitido no login
func AuthMiddleware(authService authenticating.Authenticator, cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Rotas públicas valem com e sem barra final, como o router as atende
			path := strings.TrimSuffix(r.URL.Path, "/")
			if path == "" {
				path = "/"
			}

			if publicPaths[path] {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := extractToken(r, cfg.Auth.AccessCookieName)
			if tokenString == "" {
				http.Error(w, "Authentication credentials were not provided", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateAccessToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request, accessCookieName string) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
		return ""
	}

	cookie, err := r.Cookie(accessCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
