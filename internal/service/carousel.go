package service

import (
	"context"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/logger"
	"github.com/jeunessebiere/site-api/internal/repository"
)

const carouselUploadKind = "carousel"

// CarouselInput carries the fields of a carousel create or update
// request. File and URL are mutually exclusive; providing one replaces
// the other.
type CarouselInput struct {
	Title *string
	Alt   *string
	Order *int
	URL   *string
	File  *ImageUpload
}

type CarouselService struct {
	repo  repository.CarouselRepository
	store FileStore
}

func NewCarouselService(repo repository.CarouselRepository, store FileStore) *CarouselService {
	return &CarouselService{repo: repo, store: store}
}

func (s *CarouselService) List(ctx context.Context) ([]domain.CarouselImage, error) {
	images, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range images {
		s.resolveURL(&images[i])
	}
	return images, nil
}

func (s *CarouselService) Get(ctx context.Context, id int64) (*domain.CarouselImage, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.resolveURL(img)
	return img, nil
}

func (s *CarouselService) Create(ctx context.Context, in CarouselInput) (*domain.CarouselImage, error) {
	if emptyStr(in.Title) || emptyStr(in.Alt) || in.Order == nil {
		return nil, domain.ErrValidation("Title, alt text and order are required")
	}
	if in.File == nil && emptyStr(in.URL) {
		return nil, domain.ErrValidation("Either file or URL must be provided")
	}

	img := &domain.CarouselImage{
		Title: *in.Title,
		Alt:   *in.Alt,
		Order: *in.Order,
	}

	var staged string
	if in.File != nil {
		path, err := stageImage(s.store, carouselUploadKind, in.File)
		if err != nil {
			return nil, err
		}
		staged = path
		img.FilePath = &path
		img.FileName = &in.File.Filename
		img.FileSize = &in.File.Size
	} else {
		img.URL = in.URL
	}

	if err := s.repo.Create(ctx, img); err != nil {
		s.discard(staged)
		return nil, err
	}
	s.resolveURL(img)
	return img, nil
}

func (s *CarouselService) Update(ctx context.Context, id int64, in CarouselInput) (*domain.CarouselImage, error) {
	patch := repository.CarouselPatch{
		Title: in.Title,
		Alt:   in.Alt,
		Order: in.Order,
	}

	var staged, old string
	if in.File != nil || !emptyStr(in.URL) {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.FilePath != nil {
			old = *current.FilePath
		}
	}

	switch {
	case in.File != nil:
		path, err := stageImage(s.store, carouselUploadKind, in.File)
		if err != nil {
			return nil, err
		}
		staged = path
		patch.FilePath = &path
		patch.FileName = &in.File.Filename
		patch.FileSize = &in.File.Size
		patch.ClearURL = true
	case !emptyStr(in.URL):
		patch.URL = in.URL
		patch.ClearFile = true
	}

	img, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.discard(staged)
		return nil, err
	}
	s.discard(old)
	s.resolveURL(img)
	return img, nil
}

func (s *CarouselService) Delete(ctx context.Context, id int64) error {
	filePath, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if filePath != nil {
		s.discard(*filePath)
	}
	return nil
}

// resolveURL fills URL from the stored file for uploaded slides, so the
// client always gets a usable src.
func (s *CarouselService) resolveURL(img *domain.CarouselImage) {
	if img.FilePath != nil && *img.FilePath != "" {
		url := s.store.PublicURL(*img.FilePath)
		img.URL = &url
	}
}

func (s *CarouselService) discard(path string) {
	if path == "" {
		return
	}
	if err := s.store.Remove(path); err != nil {
		logger.Logger.Warn().Err(err).Str("path", path).Msg("failed to remove carousel file")
	}
}
