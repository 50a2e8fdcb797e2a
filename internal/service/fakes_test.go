package service

import (
	"context"
	"sort"
	"time"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/repository"
)

// In-memory repository fakes. They implement just enough behavior for
// the service tests: sequential ids, not-found mapping, and patch
// application.

type fakeUsersRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[int64]*domain.User{}, nextID: 1}
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound("User not found")
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound("User not found")
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return domain.ErrConflict("Username already exists")
		}
		if existing.Email == u.Email {
			return domain.ErrConflict("Email already exists")
		}
	}
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.nextID++
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, id int64, patch repository.UserPatch) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound("User not found")
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	return nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound("User not found")
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUsersRepo) Count(ctx context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeUsersRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	if u, ok := f.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

type fakeTokensRepo struct {
	tokens map[string]*domain.Token
	users  *fakeUsersRepo
	nextID int64
}

func newFakeTokensRepo(users *fakeUsersRepo) *fakeTokensRepo {
	return &fakeTokensRepo{tokens: map[string]*domain.Token{}, users: users, nextID: 1}
}

func (f *fakeTokensRepo) Create(ctx context.Context, t *domain.Token) error {
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	f.nextID++
	copied := *t
	f.tokens[t.Token] = &copied
	return nil
}

func (f *fakeTokensRepo) GetUserByToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	t, ok := f.tokens[token]
	if !ok || !t.ExpiresAt.After(now) {
		return nil, domain.ErrUnauthorized("Invalid or expired token")
	}
	return f.users.GetByID(ctx, t.UserID)
}

func (f *fakeTokensRepo) Delete(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func (f *fakeTokensRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for k, t := range f.tokens {
		if !t.ExpiresAt.After(now) {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

type fakeMembersRepo struct {
	members map[int64]*domain.Member
	nextID  int64
	failing bool
}

func newFakeMembersRepo() *fakeMembersRepo {
	return &fakeMembersRepo{members: map[int64]*domain.Member{}, nextID: 1}
}

func (f *fakeMembersRepo) List(ctx context.Context) ([]domain.Member, error) {
	out := []domain.Member{}
	for _, m := range f.members {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMembersRepo) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, domain.ErrNotFound("Member not found")
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMembersRepo) Create(ctx context.Context, m *domain.Member) error {
	if f.failing {
		return domain.ErrInternal("insert failed")
	}
	m.ID = f.nextID
	m.CreatedAt = time.Now()
	f.nextID++
	copied := *m
	f.members[m.ID] = &copied
	return nil
}

func (f *fakeMembersRepo) Update(ctx context.Context, id int64, patch repository.MemberPatch) (*domain.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, domain.ErrNotFound("Member not found")
	}
	if patch.FirstName != nil {
		m.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		m.LastName = *patch.LastName
	}
	if patch.Email != nil {
		m.Email = patch.Email
	}
	if patch.Phone != nil {
		m.Phone = patch.Phone
	}
	if patch.Photo != nil {
		m.Photo = patch.Photo
	}
	if patch.Role != nil {
		m.Role = patch.Role
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMembersRepo) Delete(ctx context.Context, id int64) (*string, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, domain.ErrNotFound("Member not found")
	}
	delete(f.members, id)
	return m.Photo, nil
}

type fakeEventsRepo struct {
	events map[int64]*domain.Event
	nextID int64
}

func newFakeEventsRepo() *fakeEventsRepo {
	return &fakeEventsRepo{events: map[int64]*domain.Event{}, nextID: 1}
}

func (f *fakeEventsRepo) List(ctx context.Context) ([]domain.Event, error) {
	out := []domain.Event{}
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventsRepo) ListUpcoming(ctx context.Context, from domain.Date, limit int) ([]domain.Event, error) {
	out := []domain.Event{}
	for _, e := range f.events {
		if !time.Time(e.Date).Before(time.Time(from)) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return time.Time(out[i].Date).Before(time.Time(out[j].Date))
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEventsRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound("Event not found")
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventsRepo) Create(ctx context.Context, e *domain.Event) error {
	e.ID = f.nextID
	e.CreatedAt = time.Now()
	f.nextID++
	copied := *e
	f.events[e.ID] = &copied
	return nil
}

func (f *fakeEventsRepo) Update(ctx context.Context, id int64, patch repository.EventPatch) (*domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound("Event not found")
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Time != nil {
		e.Time = *patch.Time
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Image != nil {
		e.Image = patch.Image
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventsRepo) Delete(ctx context.Context, id int64) (*string, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound("Event not found")
	}
	delete(f.events, id)
	return e.Image, nil
}

type fakeCarouselRepo struct {
	images map[int64]*domain.CarouselImage
	nextID int64
}

func newFakeCarouselRepo() *fakeCarouselRepo {
	return &fakeCarouselRepo{images: map[int64]*domain.CarouselImage{}, nextID: 1}
}

func (f *fakeCarouselRepo) List(ctx context.Context) ([]domain.CarouselImage, error) {
	out := []domain.CarouselImage{}
	for _, img := range f.images {
		out = append(out, *img)
	}
	return out, nil
}

func (f *fakeCarouselRepo) GetByID(ctx context.Context, id int64) (*domain.CarouselImage, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, domain.ErrNotFound("Image not found")
	}
	copied := *img
	return &copied, nil
}

func (f *fakeCarouselRepo) Create(ctx context.Context, img *domain.CarouselImage) error {
	img.ID = f.nextID
	img.CreatedAt = time.Now()
	f.nextID++
	copied := *img
	f.images[img.ID] = &copied
	return nil
}

func (f *fakeCarouselRepo) Update(ctx context.Context, id int64, patch repository.CarouselPatch) (*domain.CarouselImage, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, domain.ErrNotFound("Image not found")
	}
	if patch.Title != nil {
		img.Title = *patch.Title
	}
	if patch.Alt != nil {
		img.Alt = *patch.Alt
	}
	if patch.Order != nil {
		img.Order = *patch.Order
	}
	if patch.ClearURL {
		img.URL = nil
	} else if patch.URL != nil {
		img.URL = patch.URL
	}
	if patch.ClearFile {
		img.FilePath = nil
		img.FileName = nil
		img.FileSize = nil
	} else if patch.FilePath != nil {
		img.FilePath = patch.FilePath
		img.FileName = patch.FileName
		img.FileSize = patch.FileSize
	}
	copied := *img
	return &copied, nil
}

func (f *fakeCarouselRepo) Delete(ctx context.Context, id int64) (*string, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, domain.ErrNotFound("Image not found")
	}
	delete(f.images, id)
	return img.FilePath, nil
}

func (f *fakeCarouselRepo) Count(ctx context.Context) (int, error) {
	return len(f.images), nil
}

type fakeContactRepo struct {
	messages map[int64]*domain.ContactMessage
	nextID   int64
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{messages: map[int64]*domain.ContactMessage{}, nextID: 1}
}

func (f *fakeContactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	msg.ID = f.nextID
	msg.CreatedAt = time.Now()
	f.nextID++
	copied := *msg
	f.messages[msg.ID] = &copied
	return nil
}

func (f *fakeContactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	out := []domain.ContactMessage{}
	for _, m := range f.messages {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeContactRepo) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, domain.ErrNotFound("Message not found")
	}
	copied := *m
	return &copied, nil
}

func (f *fakeContactRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.messages[id]; !ok {
		return domain.ErrNotFound("Message not found")
	}
	delete(f.messages, id)
	return nil
}
