package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/revalyt/analytics-api/internal/config"
	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/internal/usecases/authenticating"
)

type stubAuthenticator struct {
	validToken string
	claims     *domain.Claims
}

func (s *stubAuthenticator) RegisterUser(user *domain.User, password string) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthenticator) LoginUser(email, password string) (*domain.TokenPair, error) {
	return nil, nil
}

func (s *stubAuthenticator) RefreshTokens(refreshToken string) (*domain.TokenPair, error) {
	return nil, nil
}

func (s *stubAuthenticator) ValidateAccessToken(tokenString string) (*domain.Claims, error) {
	if tokenString == s.validToken {
		return s.claims, nil
	}
	return nil, assert.AnError
}

func (s *stubAuthenticator) GetUserProfile(userID int) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthenticator) UpdateUserProfile(userID int, name, email string) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthenticator) ForgotPassword(email string) (*authenticating.PasswordResetTicket, error) {
	return nil, nil
}

func (s *stubAuthenticator) ResetPassword(input authenticating.ResetPasswordInput) error {
	return nil
}

func authTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			AccessCookieName: "revalyt_access",
		},
	}
}

func newAuthHandler(auth *stubAuthenticator, captured **domain.Claims) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims); ok {
			*captured = claims
		}
		w.WriteHeader(http.StatusOK)
	})

	return AuthMiddleware(auth, authTestConfig())(next)
}

func TestAuthMiddleware_PublicPaths(t *testing.T) {
	auth := &stubAuthenticator{}

	for _, path := range []string{"/api/auth/register", "/api/auth/token", "/api/auth/token/refresh", "/api/auth/logout", "/api/auth/password/forgot", "/api/auth/password/reset", "/healthcheck"} {
		var captured *domain.Claims
		handler := newAuthHandler(auth, &captured)

		req := httptest.NewRequest("POST", path, nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code, "path: %s", path)
	}
}

func TestAuthMiddleware_PublicPathsWithTrailingSlash(t *testing.T) {
	auth := &stubAuthenticator{}

	// As rotas documentadas levam barra final; o middleware precisa
	// liberá-las antes do redirect do router
	for _, path := range []string{"/api/auth/register/", "/api/auth/token/", "/api/auth/token/refresh/", "/api/auth/logout/", "/api/auth/password/forgot/", "/api/auth/password/reset/", "/healthcheck/"} {
		var captured *domain.Claims
		handler := newAuthHandler(auth, &captured)

		req := httptest.NewRequest("POST", path, nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code, "path: %s", path)
	}
}

func TestAuthMiddleware_ProtectedPathWithTrailingSlash(t *testing.T) {
	auth := &stubAuthenticator{}

	var captured *domain.Claims
	handler := newAuthHandler(auth, &captured)

	req := httptest.NewRequest("GET", "/api/analytics/kpis/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	claims := &domain.Claims{UserID: 7, UserEmail: "ana@example.com"}
	auth := &stubAuthenticator{validToken: "token-abc", claims: claims}

	var captured *domain.Claims
	handler := newAuthHandler(auth, &captured)

	req := httptest.NewRequest("GET", "/api/analytics/kpis", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, claims, captured)
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	claims := &domain.Claims{UserID: 7}
	auth := &stubAuthenticator{validToken: "token-abc", claims: claims}

	var captured *domain.Claims
	handler := newAuthHandler(auth, &captured)

	req := httptest.NewRequest("GET", "/api/analytics/kpis", nil)
	req.AddCookie(&http.Cookie{Name: "revalyt_access", Value: "token-abc"})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, claims, captured)
}

func TestAuthMiddleware_MissingCredentials(t *testing.T) {
	auth := &stubAuthenticator{}

	var captured *domain.Claims
	handler := newAuthHandler(auth, &captured)

	req := httptest.NewRequest("GET", "/api/analytics/kpis", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, captured)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &stubAuthenticator{validToken: "token-abc"}

	var captured *domain.Claims
	handler := newAuthHandler(auth, &captured)

	req := httptest.NewRequest("GET", "/api/analytics/kpis", nil)
	req.Header.Set("Authorization", "Bearer forged")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, captured)
}

func TestAuthMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	auth := &stubAuthenticator{validToken: "token-abc"}

	var captured *domain.Claims
	handler := newAuthHandler(auth, &captured)

	req := httptest.NewRequest("GET", "/api/analytics/kpis", nil)
	req.Header.Set("Authorization", "token-abc")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
