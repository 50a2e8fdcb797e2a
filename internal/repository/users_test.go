package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeunessebiere/site-api/internal/domain"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "password_hash", "email", "role", "last_login", "created_at",
	})
}

func TestUsersRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsersRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username =").
		WithArgs("admin").
		WillReturnRows(userRows().
			AddRow(1, "admin", "$2a$10$hash", "admin@example.com", domain.RoleAdministrator, nil, time.Now()))

	u, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.True(t, u.IsAdmin())
}

func TestUsersRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsersRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	err := repo.Create(context.Background(), &domain.User{Username: "admin"})
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeConflict, appErr.Code)
	assert.Equal(t, "Username already exists", appErr.Message)
}

func TestUsersRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsersRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err := repo.Create(context.Background(), &domain.User{Username: "bob"})
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Email already exists", appErr.Message)
}

func TestUsersRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsersRepository(db)

	role := domain.RoleEditor
	mock.ExpectExec(`UPDATE users SET role = \$1 WHERE id = \$2`).
		WithArgs(role, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, UserPatch{Role: &role})
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeNotFound, appErr.Code)
	assert.Equal(t, "User not found", appErr.Message)
}

func TestUsersRepository_Update_NoFields(t *testing.T) {
	t.Run("existing_row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUsersRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE id =").
			WithArgs(int64(1)).
			WillReturnRows(userRows().
				AddRow(1, "editor", "hash", "e@example.com", domain.RoleEditor, nil, time.Now()))

		assert.NoError(t, repo.Update(context.Background(), 1, UserPatch{}))
	})

	t.Run("missing_row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUsersRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE id =").
			WithArgs(int64(99)).
			WillReturnRows(userRows())

		err := repo.Update(context.Background(), 99, UserPatch{})
		var appErr *domain.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domain.CodeNotFound, appErr.Code)
		assert.Equal(t, "User not found", appErr.Message)
	})
}

func TestUsersRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsersRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
