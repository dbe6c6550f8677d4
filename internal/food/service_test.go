package food

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/plan-a-meal/internal/database"
	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/logging"
	"github.com/redmonkez12/plan-a-meal/internal/user"
)

// memStore is an in-memory Store that applies filters the way the SQL does.
type memStore struct {
	mu    sync.Mutex
	items map[uuid.UUID]*Food
}

func newMemStore(items ...*Food) *memStore {
	s := &memStore{items: make(map[uuid.UUID]*Food)}
	for _, f := range items {
		s.items[f.ID] = f
	}
	return s
}

func (s *memStore) Create(_ context.Context, f *Food) (*Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[f.ID]; ok {
		return nil, ErrAlreadyExists
	}
	cp := *f
	s.items[f.ID] = &cp
	return &cp, nil
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (*Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func inRange(v *float64, r Range) bool {
	if r.empty() {
		return true
	}
	if v == nil {
		return false
	}
	return (r.Min == nil || *v >= *r.Min) && (r.Max == nil || *v <= *r.Max)
}

func (s *memStore) List(_ context.Context, filter Filter) ([]*Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Food
	for _, f := range s.items {
		if filter.Name != "" && !strings.Contains(strings.ToLower(f.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if !inRange(f.Calories, filter.Calories) || !inRange(f.Protein, filter.Protein) || !inRange(f.TotalCarbohydrate, filter.Carbohydrates) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if filter.Offset >= len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *memStore) Update(_ context.Context, id uuid.UUID, patch Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.items[id]
	if !ok {
		return ErrNotFound
	}
	for col, v := range patch {
		switch col {
		case "name":
			f.Name = v.(string)
		case "brand":
			f.Brand = v.(*string)
		case "weight":
			f.Weight = v.(*float64)
		case "calories":
			f.Calories = v.(*float64)
		case "protein":
			f.Protein = v.(*float64)
		}
	}
	return nil
}

func (s *memStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func num(f float64) *float64 { return &f }
func str(s string) *string { return &s }

func newFood(name string, calories, protein, carbs float64) *Food {
	return &Food{
		ID:   uuid.New(),
		Name: name,
		Nutrients: database.Nutrients{
			Calories:          num(calories),
			Protein:           num(protein),
			TotalCarbohydrate: num(carbs),
		},
	}
}

func newTestService(store Store) *Service {
	return NewService(store, logging.Discard())
}

func TestService_Create_RoundTrip(t *testing.T) {
	svc := newTestService(newMemStore())
	id := uuid.New()

	created, err := svc.Create(context.Background(), CreateInput{
		ID:        &id,
		Name:      str("Oats"),
		Brand:     str("Acme"),
		Weight:    num(100),
		Nutrients: database.Nutrients{Calories: num(389), Iron: num(4.7)},
	})
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, 4.7, *got.Iron)
	assert.Nil(t, got.VitaminC)
}

func TestService_Create_RequiresName(t *testing.T) {
	svc := newTestService(newMemStore())

	for _, in := range []CreateInput{{}, {Name: str("")}} {
		_, err := svc.Create(context.Background(), in)

		var apiErr *httputil.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 422, apiErr.Status)
		assert.Equal(t, map[string]any{"name": nil}, apiErr.Context)
	}
}

func TestService_Create_DuplicateID(t *testing.T) {
	existing := newFood("Rice", 130, 2.7, 28)
	svc := newTestService(newMemStore(existing))

	_, err := svc.Create(context.Background(), CreateInput{ID: &existing.ID, Name: str("Other")})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_List_FilterConjunction(t *testing.T) {
	store := newMemStore(
		newFood("Apple", 52, 0.3, 14),
		newFood("Apple pie", 237, 2, 34),
		newFood("Chicken breast", 165, 31, 0),
		newFood("Pineapple", 50, 0.5, 13),
		newFood("Salmon", 208, 20, 0),
	)
	svc := newTestService(store)

	items, err := svc.List(context.Background(), Filter{
		Calories: Range{Min: num(100), Max: num(200)},
		Limit:    10,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Chicken breast", items[0].Name)

	items, err = svc.List(context.Background(), Filter{
		Name:     "APPLE",
		Calories: Range{Max: num(52)},
		Limit:    10,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	names := []string{items[0].Name, items[1].Name}
	assert.Equal(t, []string{"Apple", "Pineapple"}, names)

	_, err = svc.List(context.Background(), Filter{Protein: Range{Min: num(50)}, Limit: 10})
	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestService_Update_Partial(t *testing.T) {
	f := newFood("Oats", 389, 17, 66)
	f.Brand = str("Acme")
	svc := newTestService(newMemStore(f))

	updated, err := svc.Update(context.Background(), f.ID, Patch{"brand": (*string)(nil), "calories": num(380)})
	require.NoError(t, err)

	assert.Nil(t, updated.Brand)
	assert.Equal(t, 380.0, *updated.Calories)
	assert.Equal(t, "Oats", updated.Name)
	assert.Equal(t, 17.0, *updated.Protein)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newTestService(newMemStore())

	_, err := svc.Update(context.Background(), uuid.New(), Patch{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_AdminOnly(t *testing.T) {
	f := newFood("Oats", 389, 17, 66)
	admin := &user.User{ID: uuid.New(), IsAdmin: true}
	regular := &user.User{ID: uuid.New()}

	store := newMemStore(f)
	svc := newTestService(store)

	assert.ErrorIs(t, svc.Delete(context.Background(), regular, f.ID), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), nil, f.ID), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), regular, uuid.New()), ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), admin, f.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), admin, f.ID), ErrNotFound)
}
