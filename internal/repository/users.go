package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jeunessebiere/site-api/internal/domain"
)

// UserPatch is the set of fields an admin may change after creation.
// Username is immutable. Nil fields are left untouched.
type UserPatch struct {
	Email        *string
	Role         *string
	PasswordHash *string
}

type UsersRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, id int64, patch UserPatch) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

type usersRepository struct {
	db *sqlx.DB
}

func NewUsersRepository(db *sqlx.DB) UsersRepository {
	return &usersRepository{db: db}
}

func (r *usersRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT id, username, password_hash, email, role, last_login, created_at
	          FROM users ORDER BY username`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *usersRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, username, password_hash, email, role, last_login, created_at
	          FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("User not found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *usersRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, username, password_hash, email, role, last_login, created_at
	          FROM users WHERE username = $1`
	if err := r.db.GetContext(ctx, &u, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("User not found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *usersRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, password_hash, email, role)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`
	err := r.db.QueryRowxContext(ctx, query, u.Username, u.PasswordHash, u.Email, u.Role).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *usersRepository) Update(ctx context.Context, id int64, patch UserPatch) error {
	set := []string{}
	args := []any{}
	argN := 1

	add := func(col string, val any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, argN))
		args = append(args, val)
		argN++
	}

	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Role != nil {
		add("role", *patch.Role)
	}
	if patch.PasswordHash != nil {
		add("password_hash", *patch.PasswordHash)
	}
	if len(set) == 0 {
		// nothing to change, but the row must still exist
		_, err := r.GetByID(ctx, id)
		return err
	}

	query := "UPDATE users SET " + strings.Join(set, ", ") + fmt.Sprintf(" WHERE id = $%d", argN)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound("User not found")
	}
	return nil
}

func (r *usersRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound("User not found")
	}
	return nil
}

func (r *usersRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *usersRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login = $1 WHERE id = $2`, at, id)
	return err
}

// mapUniqueViolation turns Postgres unique-constraint failures on the
// users table into the 409 responses the API promises.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		if strings.Contains(pqErr.Constraint, "email") {
			return domain.ErrConflict("Email already exists")
		}
		return domain.ErrConflict("Username already exists")
	}
	return err
}
