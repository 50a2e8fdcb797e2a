package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jeunessebiere/site-api/internal/domain"
)

type TokensRepository interface {
	Create(ctx context.Context, t *domain.Token) error
	// GetUserByToken resolves a bearer token into its user, requiring
	// expires_at strictly after now. A token presented at exactly its
	// expiry is rejected.
	GetUserByToken(ctx context.Context, token string, now time.Time) (*domain.User, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type tokensRepository struct {
	db *sqlx.DB
}

func NewTokensRepository(db *sqlx.DB) TokensRepository {
	return &tokensRepository{db: db}
}

func (r *tokensRepository) Create(ctx context.Context, t *domain.Token) error {
	query := `INSERT INTO tokens (user_id, token, expires_at)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`
	return r.db.QueryRowxContext(ctx, query, t.UserID, t.Token, t.ExpiresAt).
		Scan(&t.ID, &t.CreatedAt)
}

func (r *tokensRepository) GetUserByToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	var u domain.User
	query := `SELECT u.id, u.username, u.password_hash, u.email, u.role, u.last_login, u.created_at
	          FROM users u
	          JOIN tokens t ON u.id = t.user_id
	          WHERE t.token = $1 AND t.expires_at > $2`
	if err := r.db.GetContext(ctx, &u, query, token, now); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnauthorized("Invalid or expired token")
		}
		return nil, err
	}
	return &u, nil
}

func (r *tokensRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE token = $1`, token)
	return err
}

func (r *tokensRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
