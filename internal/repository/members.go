package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jeunessebiere/site-api/internal/domain"
)

// MemberPatch holds the fields of a partial member update. Nil fields
// are left untouched.
type MemberPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Photo     *string
	Role      *string
}

type MembersRepository interface {
	List(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	Create(ctx context.Context, m *domain.Member) error
	Update(ctx context.Context, id int64, patch MemberPatch) (*domain.Member, error)
	// Delete removes the row and reports the photo path it referenced,
	// so the caller can unlink the file after the row is gone.
	Delete(ctx context.Context, id int64) (*string, error)
}

type membersRepository struct {
	db *sqlx.DB
}

func NewMembersRepository(db *sqlx.DB) MembersRepository {
	return &membersRepository{db: db}
}

const memberColumns = `id, first_name, last_name, email, phone, photo, role, created_at`

func (r *membersRepository) List(ctx context.Context) ([]domain.Member, error) {
	members := []domain.Member{}
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY last_name, first_name`
	if err := r.db.SelectContext(ctx, &members, query); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *membersRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	var m domain.Member
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("Member not found")
		}
		return nil, err
	}
	return &m, nil
}

func (r *membersRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (first_name, last_name, email, phone, photo, role)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`
	return r.db.QueryRowxContext(ctx, query,
		m.FirstName, m.LastName, m.Email, m.Phone, m.Photo, m.Role,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *membersRepository) Update(ctx context.Context, id int64, patch MemberPatch) (*domain.Member, error) {
	set := []string{}
	args := []any{}
	argN := 1

	add := func(col string, val any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, argN))
		args = append(args, val)
		argN++
	}

	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Photo != nil {
		add("photo", *patch.Photo)
	}
	if patch.Role != nil {
		add("role", *patch.Role)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query := "UPDATE members SET " + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argN) + memberColumns
	args = append(args, id)

	var m domain.Member
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("Member not found")
		}
		return nil, err
	}
	return &m, nil
}

func (r *membersRepository) Delete(ctx context.Context, id int64) (*string, error) {
	var photo *string
	err := r.db.QueryRowxContext(ctx, `DELETE FROM members WHERE id = $1 RETURNING photo`, id).
		Scan(&photo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("Member not found")
		}
		return nil, err
	}
	return photo, nil
}
