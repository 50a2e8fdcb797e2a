package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jeunessebiere/site-api/internal/domain"
)

type DashboardRepository interface {
	Stats(ctx context.Context, today domain.Date) (*domain.DashboardStats, error)
	// RecentActivities merges the newest member and event records into a
	// single date-descending feed, five of each, ten in total.
	RecentActivities(ctx context.Context) ([]domain.Activity, error)
}

type dashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) Stats(ctx context.Context, today domain.Date) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	if err := r.db.GetContext(ctx, &stats.TotalMembers, `SELECT COUNT(*) FROM members`); err != nil {
		return nil, err
	}
	if err := r.db.GetContext(ctx, &stats.TotalEvents, `SELECT COUNT(*) FROM events`); err != nil {
		return nil, err
	}
	if err := r.db.GetContext(ctx, &stats.UpcomingEvents,
		`SELECT COUNT(*) FROM events WHERE date >= $1`, today); err != nil {
		return nil, err
	}
	if err := r.db.GetContext(ctx, &stats.TotalCarouselImages, `SELECT COUNT(*) FROM carousel_images`); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *dashboardRepository) RecentActivities(ctx context.Context) ([]domain.Activity, error) {
	activities := []domain.Activity{}
	query := `
	(SELECT 'member' AS type,
	        'Membre ' || first_name || ' ' || last_name AS description,
	        created_at AS date
	 FROM members
	 ORDER BY created_at DESC
	 LIMIT 5)
	UNION ALL
	(SELECT 'event' AS type,
	        title AS description,
	        created_at AS date
	 FROM events
	 ORDER BY created_at DESC
	 LIMIT 5)
	ORDER BY date DESC
	LIMIT 10`
	if err := r.db.SelectContext(ctx, &activities, query); err != nil {
		return nil, err
	}
	return activities, nil
}
