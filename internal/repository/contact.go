package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/jeunessebiere/site-api/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
	GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, subject, message)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`
	return r.db.QueryRowxContext(ctx, query, msg.Name, msg.Email, msg.Subject, msg.Message).
		Scan(&msg.ID, &msg.CreatedAt)
}

func (r *contactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	messages := []domain.ContactMessage{}
	query := `SELECT id, name, email, subject, message, created_at
	          FROM contact_messages ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	var msg domain.ContactMessage
	query := `SELECT id, name, email, subject, message, created_at
	          FROM contact_messages WHERE id = $1`
	if err := r.db.GetContext(ctx, &msg, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("Message not found")
		}
		return nil, err
	}
	return &msg, nil
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound("Message not found")
	}
	return nil
}
