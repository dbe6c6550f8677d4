package auth

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrMissingSubject = errors.New("token has no subject")
)

// TokenClaims are the claims carried by an access token.
type TokenClaims struct {
	Subject   string    `json:"sub"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// TokenService defines the interface for token creation and validation.
// Implementations include JWTService (HS256/384/512) and PasetoService
// (PASETO v4.local).
type TokenService interface {
	CreateToken(subject string, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// NewTokenService picks the implementation for the configured algorithm.
func NewTokenService(algorithm string, secret []byte) (TokenService, error) {
	switch algorithm {
	case "PASETO":
		return NewPasetoService(secret)
	default:
		return NewJWTService(algorithm, secret)
	}
}

func checkSubject(subject string) error {
	if subject == "" {
		return fmt.Errorf("create token: %w", ErrMissingSubject)
	}
	return nil
}
