package user

import (
	"context"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"uuid"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	FirstName    *string   `json:"first_name"`
	LastName     *string   `json:"last_name"`
	IsAdmin      bool      `json:"is_admin"`
}

// CanDelete reports whether u may delete the user identified by target.
func (u *User) CanDelete(target uuid.UUID) bool {
	return u.IsAdmin || u.ID == target
}

// PublicUser is the shape returned by get and list: no password, no admin flag.
type PublicUser struct {
	ID        uuid.UUID `json:"uuid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// CreateInput carries the fields accepted when registering a user.
type CreateInput struct {
	ID        *uuid.UUID `json:"uuid"`
	Username  string     `json:"username" validate:"required"`
	Email     string     `json:"email" validate:"required,email,max=254"`
	Password  string     `json:"password" validate:"required"`
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	IsAdmin   bool       `json:"is_admin"`
}

type contextKey struct{}

// NewContext returns a context carrying the authenticated user.
func NewContext(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the authenticated user, if any.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(contextKey{}).(*User)
	return u, ok && u != nil
}
