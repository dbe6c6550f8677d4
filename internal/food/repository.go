package food

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/plan-a-meal/internal/database"
)

var (
	ErrNotFound      = errors.New("food not found")
	ErrAlreadyExists = errors.New("food already exists")
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository handles food persistence
type Repository struct {
	db    bun.IDB
	table string
}

func NewRepository(db bun.IDB, table string) *Repository {
	return &Repository{db: db, table: table}
}

func (r *Repository) tableExpr() (string, []any) {
	return "? AS ?", []any{bun.Ident(r.table), bun.Ident(database.FoodAlias)}
}

// Create inserts a new food item
func (r *Repository) Create(ctx context.Context, f *Food) (*Food, error) {
	dbFood := mapModelToDBFood(f)

	expr, args := r.tableExpr()
	_, err := r.db.NewInsert().
		Model(dbFood).
		ModelTableExpr(expr, args...).
		Returning("*").
		Exec(ctx)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create food: %w", err)
	}

	return mapDBFoodToModel(dbFood), nil
}

// GetByID retrieves a food item by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Food, error) {
	dbFood := new(database.Food)

	expr, args := r.tableExpr()
	err := r.db.NewSelect().
		Model(dbFood).
		ModelTableExpr(expr, args...).
		Where("? = ?", bun.Ident("food_id"), id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get food: %w", err)
	}

	return mapDBFoodToModel(dbFood), nil
}

// List returns the food items matching every condition in the filter. A
// limit below one yields no rows; bun would otherwise drop the LIMIT clause.
func (r *Repository) List(ctx context.Context, filter Filter) ([]*Food, error) {
	if filter.Limit < 1 {
		return nil, nil
	}

	var rows []database.Food

	expr, args := r.tableExpr()
	q := r.db.NewSelect().
		Model(&rows).
		ModelTableExpr(expr, args...)

	if filter.Name != "" {
		q = q.Where("? ILIKE ?", bun.Ident("name"), "%"+likeEscaper.Replace(filter.Name)+"%")
	}
	for _, cr := range filter.ranges() {
		if cr.bound.empty() {
			continue
		}
		if cr.bound.Min != nil {
			q = q.Where("? >= ?", bun.Ident(cr.column), *cr.bound.Min)
		}
		if cr.bound.Max != nil {
			q = q.Where("? <= ?", bun.Ident(cr.column), *cr.bound.Max)
		}
	}

	err := q.
		OrderExpr("? ASC, ? ASC", bun.Ident("name"), bun.Ident("food_id")).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list food: %w", err)
	}

	items := make([]*Food, 0, len(rows))
	for i := range rows {
		items = append(items, mapDBFoodToModel(&rows[i]))
	}
	return items, nil
}

// Update writes the patched columns
func (r *Repository) Update(ctx context.Context, id uuid.UUID, patch Patch) error {
	if len(patch) == 0 {
		return nil
	}

	expr, args := r.tableExpr()
	q := r.db.NewUpdate().
		Model((*database.Food)(nil)).
		ModelTableExpr(expr, args...)
	for _, col := range patch.Columns() {
		q = q.Set("? = ?", bun.Ident(col), patch[col])
	}

	result, err := q.Where("? = ?", bun.Ident("food_id"), id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update food: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a food item by ID
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	expr, args := r.tableExpr()
	result, err := r.db.NewDelete().
		Model((*database.Food)(nil)).
		ModelTableExpr(expr, args...).
		Where("? = ?", bun.Ident("food_id"), id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func mapModelToDBFood(f *Food) *database.Food {
	return &database.Food{
		ID:        f.ID,
		Name:      f.Name,
		Brand:     f.Brand,
		Weight:    f.Weight,
		Nutrients: f.Nutrients,
	}
}

func mapDBFoodToModel(dbf *database.Food) *Food {
	return &Food{
		ID:        dbf.ID,
		Name:      dbf.Name,
		Brand:     dbf.Brand,
		Weight:    dbf.Weight,
		Nutrients: dbf.Nutrients,
	}
}
