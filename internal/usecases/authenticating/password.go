package authenticating

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordResetTTL  = time.Hour
	minPasswordLength = 8
)

// PasswordResetTicket é o par uid+token que autoriza a redefinição de senha.
// O uid é o ID do usuário em base64 URL-safe e o token expira em uma hora.
type PasswordResetTicket struct {
	UID   string `json:"uid"`
	Token string `json:"token"`
}

type ResetPasswordInput struct {
	Email              string
	UID                string
	Token              string
	NewPassword        string
	NewPasswordConfirm string
}

// ForgotPassword emite um ticket de redefinição para o email informado
func (s *Service) ForgotPassword(email string) (*PasswordResetTicket, error) {
	email = handleEmail(email)
	if email == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email é obrigatório")
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	token, err := s.signToken(user, domain.TokenTypePasswordReset, passwordResetTTL)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de redefinição")
	}

	return &PasswordResetTicket{
		UID:   encodeUID(user.ID),
		Token: token,
	}, nil
}

// ResetPassword valida o ticket emitido por ForgotPassword e grava a nova
// senha. Ticket inválido ou expirado é erro de validação, não de autorização
func (s *Service) ResetPassword(input ResetPasswordInput) error {
	if input.UID == "" || input.Token == "" || input.NewPassword == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "uid, token e nova senha são obrigatórios")
	}

	if input.NewPassword != input.NewPasswordConfirm {
		return NewAuthError(ErrPasswordMismatch, apiErrors.ErrInvalidRequest, "As senhas informadas não conferem")
	}

	if len(input.NewPassword) < minPasswordLength {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest, "A senha deve ter ao menos 8 caracteres")
	}

	claims, err := s.parseToken(input.Token)
	if err != nil || claims.TokenType != domain.TokenTypePasswordReset {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidRequest, "Token de redefinição inválido ou expirado")
	}

	userID, err := decodeUID(input.UID)
	if err != nil || userID != claims.UserID {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidRequest, "Token de redefinição inválido ou expirado")
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil || !user.Active || handleEmail(input.Email) != user.Email {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidRequest, "Token de redefinição inválido ou expirado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da nova senha")
	}

	if err := s.userRepo.UpdatePassword(user.ID, string(hashedPassword)); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar senha")
	}

	return nil
}

// UpdateUserProfile atualiza nome e email do usuário autenticado
func (s *Service) UpdateUserProfile(userID int, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = handleEmail(email)

	if name == "" || email == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome e email são obrigatórios")
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil && existing.ID != userID {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.Name = name
	user.Email = email

	user, err = s.userRepo.UpdateUser(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar perfil")
	}

	user.PasswordHash = ""
	return user, nil
}

func encodeUID(userID int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(userID)))
}

func decodeUID(uid string) (int, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(uid, "="))
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(string(decoded))
}
