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

// EventPatch holds the fields of a partial event update. Nil fields are
// left untouched.
type EventPatch struct {
	Title       *string
	Date        *domain.Date
	Time        *string
	Location    *string
	Description *string
	Image       *string
}

type EventsRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	// ListUpcoming returns events on or after the given date, soonest
	// first, capped at limit.
	ListUpcoming(ctx context.Context, from domain.Date, limit int) ([]domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, id int64, patch EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, id int64) (*string, error)
}

type eventsRepository struct {
	db *sqlx.DB
}

func NewEventsRepository(db *sqlx.DB) EventsRepository {
	return &eventsRepository{db: db}
}

const eventColumns = `id, title, date, time, location, description, image, created_at`

func (r *eventsRepository) List(ctx context.Context) ([]domain.Event, error) {
	events := []domain.Event{}
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date`
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventsRepository) ListUpcoming(ctx context.Context, from domain.Date, limit int) ([]domain.Event, error) {
	events := []domain.Event{}
	query := `SELECT ` + eventColumns + ` FROM events WHERE date >= $1 ORDER BY date LIMIT $2`
	if err := r.db.SelectContext(ctx, &events, query, from, limit); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventsRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var e domain.Event
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	if err := r.db.GetContext(ctx, &e, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("Event not found")
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventsRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (title, date, time, location, description, image)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`
	return r.db.QueryRowxContext(ctx, query,
		e.Title, e.Date, e.Time, e.Location, e.Description, e.Image,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *eventsRepository) Update(ctx context.Context, id int64, patch EventPatch) (*domain.Event, error) {
	set := []string{}
	args := []any{}
	argN := 1

	add := func(col string, val any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, argN))
		args = append(args, val)
		argN++
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.Time != nil {
		add("time", *patch.Time)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query := "UPDATE events SET " + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argN) + eventColumns
	args = append(args, id)

	var e domain.Event
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("Event not found")
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventsRepository) Delete(ctx context.Context, id int64) (*string, error) {
	var image *string
	err := r.db.QueryRowxContext(ctx, `DELETE FROM events WHERE id = $1 RETURNING image`, id).
		Scan(&image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("Event not found")
		}
		return nil, err
	}
	return image, nil
}
