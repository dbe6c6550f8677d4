package food

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/logging"
	"github.com/redmonkez12/plan-a-meal/internal/user"
)

var (
	ErrNoMatches = errors.New("no food items match the criteria")
	ErrForbidden = errors.New("admin privileges needed to delete food")
)

// Store is the persistence the service needs; *Repository implements it.
type Store interface {
	Create(ctx context.Context, f *Food) (*Food, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Food, error)
	List(ctx context.Context, filter Filter) ([]*Food, error)
	Update(ctx context.Context, id uuid.UUID, patch Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service handles food business logic
type Service struct {
	store  Store
	logger *logging.Logger
}

func NewService(store Store, logger *logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Food, error) {
	if err := httputil.ValidateStruct(in); err != nil {
		return nil, err
	}

	id := uuid.New()
	if in.ID != nil && *in.ID != uuid.Nil {
		id = *in.ID
	}

	created, err := s.store.Create(ctx, &Food{
		ID:        id,
		Name:      *in.Name,
		Brand:     in.Brand,
		Weight:    in.Weight,
		Nutrients: in.Nutrients,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("food created", "food_id", created.ID)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Food, error) {
	return s.store.GetByID(ctx, id)
}

// List returns matching food items. No match is ErrNoMatches.
func (s *Service) List(ctx context.Context, filter Filter) ([]*Food, error) {
	items, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoMatches
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, patch Patch) (*Food, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

// Delete removes a food item. Only admins may delete.
func (s *Service) Delete(ctx context.Context, caller *user.User, id uuid.UUID) error {
	if caller == nil || !caller.IsAdmin {
		return ErrForbidden
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("food deleted", "food_id", id, "by", caller.ID)
	return nil
}
