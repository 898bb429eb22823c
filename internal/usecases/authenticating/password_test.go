package authenticating_test

import (
	"encoding/base64"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/revalyt/analytics-api/infrastructure/repository/mocks"
	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/internal/usecases/authenticating"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestForgotAndResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "OldPass123"),
		Active:       true,
	}

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().
		GetUserByEmail("ana@example.com").
		Return(user, nil)

	service := authenticating.NewService(mockUserRepo, testConfig())

	ticket, err := service.ForgotPassword("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.NotEmpty(t, ticket.UID)
	assert.NotEmpty(t, ticket.Token)

	mockUserRepo.EXPECT().
		GetUserByID(7).
		Return(user, nil)

	mockUserRepo.EXPECT().
		UpdatePassword(7, gomock.Any()).
		DoAndReturn(func(userID int, passwordHash string) error {
			// A nova senha deve estar hasheada, nunca em claro
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("NewPass123")))
			return nil
		})

	err = service.ResetPassword(authenticating.ResetPasswordInput{
		Email:              "ana@example.com",
		UID:                ticket.UID,
		Token:              ticket.Token,
		NewPassword:        "NewPass123",
		NewPasswordConfirm: "NewPass123",
	})
	require.NoError(t, err)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().
		GetUserByEmail("ninguem@example.com").
		Return(nil, nil)

	service := authenticating.NewService(mockUserRepo, testConfig())

	ticket, err := service.ForgotPassword("ninguem@example.com")
	assert.Nil(t, ticket)
	assert.True(t, errors.Is(err, authenticating.ErrUserNotFound))
}

func TestResetPassword_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := authenticating.NewService(mockUserRepo, testConfig())

	err := service.ResetPassword(authenticating.ResetPasswordInput{
		Email:              "ana@example.com",
		UID:                "ZmFrZQ==",
		Token:              "bad-token",
		NewPassword:        "NewPass123",
		NewPasswordConfirm: "NewPass123",
	})
	assert.True(t, errors.Is(err, authenticating.ErrInvalidToken))
}

func TestResetPassword_RejectsAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &domain.User{
		ID:           7,
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "OldPass123"),
		Active:       true,
	}

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().
		GetUserByEmail("ana@example.com").
		Return(user, nil)

	service := authenticating.NewService(mockUserRepo, testConfig())

	pair, err := service.LoginUser("ana@example.com", "OldPass123")
	require.NoError(t, err)

	// Um access token não autoriza a redefinição de senha
	err = service.ResetPassword(authenticating.ResetPasswordInput{
		Email:              "ana@example.com",
		UID:                base64.RawURLEncoding.EncodeToString([]byte("7")),
		Token:              pair.AccessToken,
		NewPassword:        "NewPass123",
		NewPasswordConfirm: "NewPass123",
	})
	assert.True(t, errors.Is(err, authenticating.ErrInvalidToken))
}

func TestResetPassword_UIDMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &domain.User{
		ID:           7,
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "OldPass123"),
		Active:       true,
	}

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().
		GetUserByEmail("ana@example.com").
		Return(user, nil)

	service := authenticating.NewService(mockUserRepo, testConfig())

	ticket, err := service.ForgotPassword("ana@example.com")
	require.NoError(t, err)

	err = service.ResetPassword(authenticating.ResetPasswordInput{
		Email:              "ana@example.com",
		UID:                base64.RawURLEncoding.EncodeToString([]byte("99")),
		Token:              ticket.Token,
		NewPassword:        "NewPass123",
		NewPasswordConfirm: "NewPass123",
	})
	assert.True(t, errors.Is(err, authenticating.ErrInvalidToken))
}

func TestResetPassword_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := authenticating.NewService(mockUserRepo, testConfig())

	tests := []struct {
		name        string
		input       authenticating.ResetPasswordInput
		expectedErr error
	}{
		{
			name: "senhas divergentes",
			input: authenticating.ResetPasswordInput{
				Email:              "ana@example.com",
				UID:                "dXNlcg",
				Token:              "token",
				NewPassword:        "NewPass123",
				NewPasswordConfirm: "Outra123!",
			},
			expectedErr: authenticating.ErrPasswordMismatch,
		},
		{
			name: "senha curta",
			input: authenticating.ResetPasswordInput{
				Email:              "ana@example.com",
				UID:                "dXNlcg",
				Token:              "token",
				NewPassword:        "curta",
				NewPasswordConfirm: "curta",
			},
			expectedErr: authenticating.ErrWeakPassword,
		},
		{
			name: "dados ausentes",
			input: authenticating.ResetPasswordInput{
				Email: "ana@example.com",
			},
			expectedErr: authenticating.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ResetPassword(tt.input)
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}
}

func TestUpdateUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "OldPass123"),
		Active:       true,
	}

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().
		GetUserByEmail("ana.souza@example.com").
		Return(nil, nil)

	mockUserRepo.EXPECT().
		GetUserByID(7).
		Return(user, nil)

	mockUserRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(updated *domain.User) (*domain.User, error) {
			assert.Equal(t, "Ana Souza", updated.Name)
			assert.Equal(t, "ana.souza@example.com", updated.Email)
			return updated, nil
		})

	service := authenticating.NewService(mockUserRepo, testConfig())

	updated, err := service.UpdateUserProfile(7, " Ana Souza ", " Ana.Souza@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", updated.Name)
	assert.Equal(t, "ana.souza@example.com", updated.Email)
	assert.Empty(t, updated.PasswordHash)
}

func TestUpdateUserProfile_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().
		GetUserByEmail("bia@example.com").
		Return(&domain.User{ID: 9, Email: "bia@example.com"}, nil)

	service := authenticating.NewService(mockUserRepo, testConfig())

	updated, err := service.UpdateUserProfile(7, "Ana", "bia@example.com")
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, authenticating.ErrUserAlreadyExists))
}
