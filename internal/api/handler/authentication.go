package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/revalyt/analytics-api/internal/config"
	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/internal/usecases/authenticating"
	"github.com/revalyt/analytics-api/pkg/apiErrors"
	"github.com/revalyt/analytics-api/pkg/cookiedomain"
	"github.com/revalyt/analytics-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func Login(service authenticating.Authenticator, cfg *config.Config, resolver *cookiedomain.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		pair, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		// Tokens também viajam em cookies httpOnly para clientes browser
		setAuthCookies(w, r, pair, cfg, resolver)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenResponse{
			Access:  pair.AccessToken,
			Refresh: pair.RefreshToken,
		})
	}
}

// Refresh emite um novo par de tokens a partir do refresh token,
// lido do corpo ou do cookie httpOnly
func Refresh(service authenticating.Authenticator, cfg *config.Config, resolver *cookiedomain.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Refresh string `json:"refresh"`
		}

		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		refreshToken := req.Refresh
		if refreshToken == "" {
			if cookie, err := r.Cookie(cfg.Auth.RefreshCookieName); err == nil {
				refreshToken = cookie.Value
			}
		}

		pair, err := service.RefreshTokens(refreshToken)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		setAuthCookies(w, r, pair, cfg, resolver)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenResponse{
			Access:  pair.AccessToken,
			Refresh: pair.RefreshToken,
		})
	}
}

// Logout limpa os cookies de autenticação com os mesmos atributos usados na emissão
func Logout(cfg *config.Config, resolver *cookiedomain.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearAuthCookies(w, r, cfg, resolver)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"detail": "logout realizado com sucesso",
		})
	}
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.RegisterUser(&domain.User{
			Name:  req.Name,
			Email: req.Email,
		}, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dados do usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(user)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// setAuthCookies grava os cookies httpOnly de access e refresh. O domínio é
// resolvido por requisição, para que subdomínios da mesma zona compartilhem a sessão
func setAuthCookies(w http.ResponseWriter, r *http.Request, pair *domain.TokenPair, cfg *config.Config, resolver *cookiedomain.Resolver) {
	domainValue := resolver.Resolve(r)
	sameSite := parseSameSite(cfg.Auth.CookieSameSite)

	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Auth.AccessCookieName,
		Value:    pair.AccessToken,
		MaxAge:   int(pair.AccessExpiresIn / time.Second),
		Path:     cfg.Auth.CookiePath,
		Domain:   domainValue,
		Secure:   cfg.Auth.CookieSecure,
		HttpOnly: true,
		SameSite: sameSite,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Auth.RefreshCookieName,
		Value:    pair.RefreshToken,
		MaxAge:   int(pair.RefreshExpiresIn / time.Second),
		Path:     cfg.Auth.CookiePath,
		Domain:   domainValue,
		Secure:   cfg.Auth.CookieSecure,
		HttpOnly: true,
		SameSite: sameSite,
	})
}

// clearAuthCookies expira os cookies usando exatamente os mesmos atributos da
// emissão; atributos divergentes fariam o browser manter o cookie antigo
func clearAuthCookies(w http.ResponseWriter, r *http.Request, cfg *config.Config, resolver *cookiedomain.Resolver) {
	domainValue := resolver.Resolve(r)
	sameSite := parseSameSite(cfg.Auth.CookieSameSite)

	for _, name := range []string{cfg.Auth.AccessCookieName, cfg.Auth.RefreshCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			MaxAge:   -1,
			Path:     cfg.Auth.CookiePath,
			Domain:   domainValue,
			Secure:   cfg.Auth.CookieSecure,
			HttpOnly: true,
			SameSite: sameSite,
		})
	}
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// handleAuthError trata erros de autenticação e retorna a resposta apropriada
func handleAuthError(w http.ResponseWriter, err error) {
	// Tentar fazer cast para AuthError para obter mais detalhes
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		details := map[string]any{}
		if authErr.UserID != 0 {
			details["user_id"] = authErr.UserID
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	case errors.Is(err, authenticating.ErrInvalidToken), errors.Is(err, authenticating.ErrExpiredToken):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao autenticar", nil)
	}
}
