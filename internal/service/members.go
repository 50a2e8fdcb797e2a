package service

import (
	"context"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/logger"
	"github.com/jeunessebiere/site-api/internal/repository"
)

const memberUploadKind = "members"

// MemberInput carries the fields of a member create or update request.
// Pointers distinguish "absent" from "set to empty" on updates.
type MemberInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Role      *string
	Photo     *ImageUpload
}

type MembersService struct {
	repo  repository.MembersRepository
	store FileStore
}

func NewMembersService(repo repository.MembersRepository, store FileStore) *MembersService {
	return &MembersService{repo: repo, store: store}
}

func (s *MembersService) List(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		s.resolvePhoto(&members[i])
	}
	return members, nil
}

func (s *MembersService) Get(ctx context.Context, id int64) (*domain.Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.resolvePhoto(m)
	return m, nil
}

func (s *MembersService) Create(ctx context.Context, in MemberInput) (*domain.Member, error) {
	if in.FirstName == nil || *in.FirstName == "" || in.LastName == nil || *in.LastName == "" {
		return nil, domain.ErrValidation("First name and last name are required")
	}

	m := &domain.Member{
		FirstName: *in.FirstName,
		LastName:  *in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
	}

	var staged string
	if in.Photo != nil {
		path, err := stageImage(s.store, memberUploadKind, in.Photo)
		if err != nil {
			return nil, err
		}
		staged = path
		m.Photo = &path
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.discard(staged)
		return nil, err
	}
	s.resolvePhoto(m)
	return m, nil
}

func (s *MembersService) Update(ctx context.Context, id int64, in MemberInput) (*domain.Member, error) {
	patch := repository.MemberPatch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
	}

	var staged, old string
	if in.Photo != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Photo != nil {
			old = *current.Photo
		}

		path, err := stageImage(s.store, memberUploadKind, in.Photo)
		if err != nil {
			return nil, err
		}
		staged = path
		patch.Photo = &path
	}

	m, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.discard(staged)
		return nil, err
	}
	s.discard(old)
	s.resolvePhoto(m)
	return m, nil
}

func (s *MembersService) Delete(ctx context.Context, id int64) error {
	photo, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if photo != nil {
		s.discard(*photo)
	}
	return nil
}

func (s *MembersService) resolvePhoto(m *domain.Member) {
	if m.Photo != nil && *m.Photo != "" {
		url := s.store.PublicURL(*m.Photo)
		m.Photo = &url
	}
}

func (s *MembersService) discard(path string) {
	if path == "" {
		return
	}
	if err := s.store.Remove(path); err != nil {
		logger.Logger.Warn().Err(err).Str("path", path).Msg("failed to remove member photo")
	}
}
