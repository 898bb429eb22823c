package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/internal/usecases/authenticating"
	"github.com/revalyt/analytics-api/pkg/apiErrors"
	"github.com/revalyt/analytics-api/pkg/middleware"
)

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email        string `json:"email"`
	UID          string `json:"uid"`
	Token        string `json:"token"`
	NewPassword  string `json:"new_password"`
	NewPassword2 string `json:"new_password2"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ForgotPassword emite um ticket de redefinição de senha. Email desconhecido
// recebe a mesma resposta genérica, para não revelar quais contas existem
func ForgotPassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		ticket, err := service.ForgotPassword(req.Email)
		if err != nil {
			if errors.Is(err, authenticating.ErrUserNotFound) || errors.Is(err, authenticating.ErrUserDisabled) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]string{
					"detail": "Se o email estiver cadastrado, o ticket de redefinição foi emitido",
				})
				return
			}

			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ticket)
	}
}

// ResetPassword troca a senha mediante o ticket emitido em ForgotPassword
func ResetPassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		err := service.ResetPassword(authenticating.ResetPasswordInput{
			Email:              req.Email,
			UID:                req.UID,
			Token:              req.Token,
			NewPassword:        req.NewPassword,
			NewPasswordConfirm: req.NewPassword2,
		})
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"detail": "Senha redefinida com sucesso",
		})
	}
}

// GetProfile retorna o perfil do usuário autenticado
func GetProfile(service authenticating.Authenticator) http.HandlerFunc {
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
		json.NewEncoder(w).Encode(user)
	}
}

// UpdateProfile atualiza nome e email do usuário autenticado
func UpdateProfile(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.UpdateUserProfile(userClaims.UserID, req.Name, req.Email)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}
