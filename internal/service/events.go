package service

import (
	"context"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/logger"
	"github.com/jeunessebiere/site-api/internal/repository"
)

const (
	eventUploadKind = "events"
	upcomingLimit   = 3
)

// EventInput carries the fields of an event create or update request.
type EventInput struct {
	Title       *string
	Date        *domain.Date
	Time        *string
	Location    *string
	Description *string
	Image       *ImageUpload
}

type EventsService struct {
	repo  repository.EventsRepository
	store FileStore
	today func() domain.Date
}

func NewEventsService(repo repository.EventsRepository, store FileStore) *EventsService {
	return &EventsService{repo: repo, store: store, today: domain.Today}
}

func (s *EventsService) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		s.resolveImage(&events[i])
	}
	return events, nil
}

// Upcoming returns the next few events on or after today, for the home
// page.
func (s *EventsService) Upcoming(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.ListUpcoming(ctx, s.today(), upcomingLimit)
	if err != nil {
		return nil, err
	}
	for i := range events {
		s.resolveImage(&events[i])
	}
	return events, nil
}

func (s *EventsService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.resolveImage(e)
	return e, nil
}

func (s *EventsService) Create(ctx context.Context, in EventInput) (*domain.Event, error) {
	if emptyStr(in.Title) || in.Date == nil || emptyStr(in.Time) ||
		emptyStr(in.Location) || emptyStr(in.Description) {
		return nil, domain.ErrValidation("Title, date, time, location, and description are required")
	}

	e := &domain.Event{
		Title:       *in.Title,
		Date:        *in.Date,
		Time:        *in.Time,
		Location:    *in.Location,
		Description: *in.Description,
	}

	var staged string
	if in.Image != nil {
		path, err := stageImage(s.store, eventUploadKind, in.Image)
		if err != nil {
			return nil, err
		}
		staged = path
		e.Image = &path
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.discard(staged)
		return nil, err
	}
	s.resolveImage(e)
	return e, nil
}

func (s *EventsService) Update(ctx context.Context, id int64, in EventInput) (*domain.Event, error) {
	patch := repository.EventPatch{
		Title:       in.Title,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Description: in.Description,
	}

	var staged, old string
	if in.Image != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Image != nil {
			old = *current.Image
		}

		path, err := stageImage(s.store, eventUploadKind, in.Image)
		if err != nil {
			return nil, err
		}
		staged = path
		patch.Image = &path
	}

	e, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.discard(staged)
		return nil, err
	}
	s.discard(old)
	s.resolveImage(e)
	return e, nil
}

func (s *EventsService) Delete(ctx context.Context, id int64) error {
	image, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if image != nil {
		s.discard(*image)
	}
	return nil
}

func (s *EventsService) resolveImage(e *domain.Event) {
	if e.Image != nil && *e.Image != "" {
		url := s.store.PublicURL(*e.Image)
		e.Image = &url
	}
}

func (s *EventsService) discard(path string) {
	if path == "" {
		return
	}
	if err := s.store.Remove(path); err != nil {
		logger.Logger.Warn().Err(err).Str("path", path).Msg("failed to remove event image")
	}
}

func emptyStr(s *string) bool { return s == nil || *s == "" }
