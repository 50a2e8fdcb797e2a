package service

import (
	"context"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/repository"
)

const recentEventsLimit = 5

type DashboardService struct {
	repo   repository.DashboardRepository
	events repository.EventsRepository
	store  FileStore
	today  func() domain.Date
}

func NewDashboardService(repo repository.DashboardRepository, events repository.EventsRepository, store FileStore) *DashboardService {
	return &DashboardService{repo: repo, events: events, store: store, today: domain.Today}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.repo.Stats(ctx, s.today())
}

// RecentEvents returns the soonest upcoming events with image paths
// resolved to public URLs, same shape as the events endpoints.
func (s *DashboardService) RecentEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.events.ListUpcoming(ctx, s.today(), recentEventsLimit)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].Image != nil && *events[i].Image != "" {
			url := s.store.PublicURL(*events[i].Image)
			events[i].Image = &url
		}
	}
	return events, nil
}

func (s *DashboardService) RecentActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.repo.RecentActivities(ctx)
}
