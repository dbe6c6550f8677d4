package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/logging"
)

var (
	ErrNoUsers   = errors.New("no users found")
	ErrForbidden = errors.New("admin privileges needed to delete another user")
)

// Store is the persistence the service needs; *Repository implements it.
type Store interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]*User, error)
	Update(ctx context.Context, id uuid.UUID, patch Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PasswordHasher hashes plaintext passwords before they are stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Service handles user business logic
type Service struct {
	store  Store
	hasher PasswordHasher
	logger *logging.Logger
}

func NewService(store Store, hasher PasswordHasher, logger *logging.Logger) *Service {
	return &Service{store: store, hasher: hasher, logger: logger}
}

// Create validates the input, hashes the password and stores the user.
func (s *Service) Create(ctx context.Context, in CreateInput) (*User, error) {
	if err := httputil.ValidateStruct(in); err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id := uuid.New()
	if in.ID != nil && *in.ID != uuid.Nil {
		id = *in.ID
	}

	created, err := s.store.Create(ctx, &User{
		ID:           id,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: passwordHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		IsAdmin:      in.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", created.ID, "is_admin", created.IsAdmin)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.store.GetByUsername(ctx, username)
}

// List returns a page of users. An empty page is ErrNoUsers.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*User, error) {
	users, err := s.store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	return users, nil
}

// Update applies the patch; a new password is hashed first.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch Patch) (*User, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if raw, ok := patch["password"]; ok {
		password, _ := raw.(string)
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch["password"] = hash
	}

	if err := s.store.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

// Delete removes the user with the given id. Callers may delete themselves;
// admins may delete anyone.
func (s *Service) Delete(ctx context.Context, caller *User, id uuid.UUID) error {
	if caller == nil || !caller.CanDelete(id) {
		return ErrForbidden
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id, "by", caller.ID)
	return nil
}
