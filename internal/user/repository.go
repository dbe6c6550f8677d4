package user

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
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateID       = errors.New("user id already exists")
)

// Repository handles user data persistence
type Repository struct {
	db    bun.IDB
	table string
}

func NewRepository(db bun.IDB, table string) *Repository {
	return &Repository{db: db, table: table}
}

func (r *Repository) tableExpr() (string, []any) {
	return "? AS ?", []any{bun.Ident(r.table), bun.Ident(database.UserAlias)}
}

// Create inserts a new user. u.PasswordHash must already be hashed.
func (r *Repository) Create(ctx context.Context, u *User) (*User, error) {
	dbUser := mapModelToDBUser(u)

	expr, args := r.tableExpr()
	_, err := r.db.NewInsert().
		Model(dbUser).
		ModelTableExpr(expr, args...).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByID retrieves a user by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.getBy(ctx, "user_id", id)
}

// GetByUsername retrieves a user by username
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *Repository) getBy(ctx context.Context, column string, value any) (*User, error) {
	dbUser := new(database.User)

	expr, args := r.tableExpr()
	err := r.db.NewSelect().
		Model(dbUser).
		ModelTableExpr(expr, args...).
		Where("? = ?", bun.Ident(column), value).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return mapDBUserToModel(dbUser), nil
}

// List returns a page of users ordered by username. A limit below one
// yields an empty page without querying.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*User, error) {
	if limit < 1 {
		return nil, nil
	}

	var dbUsers []database.User

	expr, args := r.tableExpr()
	err := r.db.NewSelect().
		Model(&dbUsers).
		ModelTableExpr(expr, args...).
		OrderExpr("? ASC", bun.Ident("username")).
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, mapDBUserToModel(&dbUsers[i]))
	}
	return users, nil
}

// Update writes the patched columns. Password values must already be hashed.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, patch Patch) error {
	if len(patch) == 0 {
		return nil
	}

	expr, args := r.tableExpr()
	q := r.db.NewUpdate().
		Model((*database.User)(nil)).
		ModelTableExpr(expr, args...)
	for _, col := range patch.Columns() {
		q = q.Set("? = ?", bun.Ident(col), patch[col])
	}

	result, err := q.Where("? = ?", bun.Ident("user_id"), id).Exec(ctx)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to update user: %w", err)
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

// Delete removes a user by ID
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	expr, args := r.tableExpr()
	result, err := r.db.NewDelete().
		Model((*database.User)(nil)).
		ModelTableExpr(expr, args...).
		Where("? = ?", bun.Ident("user_id"), id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
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

// mapUniqueViolation translates a Postgres unique_violation into the
// sentinel for the colliding column, or returns nil.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code.Name() != "unique_violation" {
		return nil
	}

	switch {
	case strings.HasSuffix(pqErr.Constraint, "_username_key"), strings.Contains(pqErr.Detail, "(username)"):
		return ErrDuplicateUsername
	case strings.HasSuffix(pqErr.Constraint, "_email_key"), strings.Contains(pqErr.Detail, "(email)"):
		return ErrDuplicateEmail
	default:
		return ErrDuplicateID
	}
}

func mapModelToDBUser(u *User) *database.User {
	return &database.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.PasswordHash,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin,
	}
}

// mapDBUserToModel converts database model to domain model
func mapDBUserToModel(dbu *database.User) *User {
	return &User{
		ID:           dbu.ID,
		Username:     dbu.Username,
		Email:        dbu.Email,
		PasswordHash: dbu.Password,
		FirstName:    dbu.FirstName,
		LastName:     dbu.LastName,
		IsAdmin:      dbu.IsAdmin,
	}
}
