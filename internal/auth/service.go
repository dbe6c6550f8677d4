package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redmonkez12/plan-a-meal/internal/logging"
	"github.com/redmonkez12/plan-a-meal/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserFinder resolves a username to its stored record.
type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(encodedHash, password string) bool
}

// AccessToken is the result of a successful login
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresIn int64
}

// Service handles authentication business logic
type Service struct {
	users               UserFinder
	verifier            PasswordVerifier
	tokens              TokenService
	logger              *logging.Logger
	accessTokenDuration time.Duration
}

func NewService(
	users UserFinder,
	verifier PasswordVerifier,
	tokens TokenService,
	logger *logging.Logger,
	accessTokenDuration time.Duration,
) *Service {
	return &Service{
		users:               users,
		verifier:            verifier,
		tokens:              tokens,
		logger:              logger,
		accessTokenDuration: accessTokenDuration,
	}
}

// Login authenticates a user and returns a bearer token
func (s *Service) Login(ctx context.Context, username, password string) (*AccessToken, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	existingUser, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.verifier.Verify(existingUser.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(existingUser.Username, s.accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	return &AccessToken{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int64(s.accessTokenDuration.Seconds()),
	}, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
// Token problems are ErrInvalidToken / ErrExpiredToken / ErrMissingSubject;
// a subject without a stored user is ErrUserNotFound.
func (s *Service) Authenticate(ctx context.Context, token string) (*user.User, error) {
	claims, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}
