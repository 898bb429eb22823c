package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User representa um usuário do painel de analytics
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Tipos de token emitidos pelo serviço de autenticação
const (
	TokenTypeAccess        = "access"
	TokenTypeRefresh       = "refresh"
	TokenTypePasswordReset = "password_reset"
)

// Claims transporta a identidade do usuário dentro do JWT
type Claims struct {
	UserID    int    `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair é o par de tokens gravado nos cookies httpOnly de sessão
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}
