package user

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

var userColumns = []string{"user_id", "username", "email", "password", "first_name", "last_name", "is_admin"}

func newMockRepository(t *testing.T, table string) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := bun.NewDB(sqlDB, pgdialect.New())
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewRepository(db, table), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t, "users")
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO "users" AS "u" .* RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "ana", "ana@example.com", "hash", "Ana", nil, false))

	u, err := repo.Create(context.Background(), &User{ID: id, Username: "ana", Email: "ana@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "Ana", *u.FirstName)
	assert.Nil(t, u.LastName)
}

func TestRepository_Create_UniqueViolations(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{"users_username_key", ErrDuplicateUsername},
		{"users_email_key", ErrDuplicateEmail},
		{"users_pkey", ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			repo, mock := newMockRepository(t, "users")
			mock.ExpectQuery(`INSERT INTO "users"`).
				WillReturnError(&pq.Error{Code: "23505", Constraint: tt.constraint})

			_, err := repo.Create(context.Background(), &User{ID: uuid.New(), Username: "ana", Email: "a@b.co"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRepository_UsesConfiguredTable(t *testing.T) {
	repo, mock := newMockRepository(t, "app_users")

	mock.ExpectQuery(`SELECT .* FROM "app_users" AS "u" WHERE \("username" = 'ana'\) LIMIT 1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(uuid.New().String(), "ana", "ana@example.com", "hash", nil, nil, true))

	u, err := repo.GetByUsername(context.Background(), "ana")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t, "users")

	mock.ExpectQuery(`SELECT .* FROM "users" AS "u"`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMockRepository(t, "users")

	mock.ExpectQuery(`SELECT .* FROM "users" AS "u" ORDER BY "username" ASC LIMIT 5 OFFSET 10`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(uuid.New().String(), "a", "a@example.com", "h", nil, nil, false).
			AddRow(uuid.New().String(), "b", "b@example.com", "h", nil, nil, false))

	users, err := repo.List(context.Background(), 5, 10)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].Username)
}

func TestRepository_List_ZeroLimitSkipsQuery(t *testing.T) {
	repo, _ := newMockRepository(t, "users")

	users, err := repo.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newMockRepository(t, "users")

	mock.ExpectExec(`UPDATE "users" AS "u" SET "email" = 'new@example.com', "first_name" = NULL WHERE \("user_id" = `).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), uuid.New(), Patch{"first_name": (*string)(nil), "email": "new@example.com"})
	assert.NoError(t, err)
}

func TestRepository_Update_NoRows(t *testing.T) {
	repo, mock := newMockRepository(t, "users")

	mock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), uuid.New(), Patch{"username": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_Update_EmptyPatchIsNoop(t *testing.T) {
	repo, _ := newMockRepository(t, "users")
	assert.NoError(t, repo.Update(context.Background(), uuid.New(), Patch{}))
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMockRepository(t, "users")

	mock.ExpectExec(`DELETE FROM "users" AS "u" WHERE \("user_id" = `).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), uuid.New()))

	mock.ExpectExec(`DELETE FROM "users"`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrNotFound)
}
