package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeunessebiere/site-api/internal/domain"
)

type fakeDashboardRepo struct {
	stats domain.DashboardStats
}

func (f *fakeDashboardRepo) Stats(ctx context.Context, today domain.Date) (*domain.DashboardStats, error) {
	copied := f.stats
	return &copied, nil
}

func (f *fakeDashboardRepo) RecentActivities(ctx context.Context) ([]domain.Activity, error) {
	return []domain.Activity{}, nil
}

func TestDashboardService_Stats(t *testing.T) {
	repo := &fakeDashboardRepo{stats: domain.DashboardStats{TotalMembers: 4, UpcomingEvents: 2}}
	svc := NewDashboardService(repo, newFakeEventsRepo(), newTestStore(t))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalMembers)
	assert.Equal(t, 2, stats.UpcomingEvents)
}

func TestDashboardService_RecentEvents_ResolvesImageURLs(t *testing.T) {
	events := newFakeEventsRepo()
	store := newTestStore(t)
	svc := NewDashboardService(&fakeDashboardRepo{}, events, store)
	svc.today = func() domain.Date { return *datePtr(t, "2026-09-01") }

	img := "events/abc.png"
	require.NoError(t, events.Create(context.Background(), &domain.Event{
		Title: "Beer festival",
		Date:  *datePtr(t, "2026-09-12"),
		Image: &img,
	}))
	require.NoError(t, events.Create(context.Background(), &domain.Event{
		Title: "Plain event",
		Date:  *datePtr(t, "2026-09-20"),
	}))

	recent, err := svc.RecentEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// same shape as the events endpoints: public URL, not the stored path
	require.NotNil(t, recent[0].Image)
	assert.True(t, strings.HasPrefix(*recent[0].Image, "/uploads/events/"))
	assert.Nil(t, recent[1].Image)
}
