package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/repository"
)

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactService struct {
	repo     repository.ContactRepository
	validate *validator.Validate
}

func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo, validate: validator.New()}
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error) {
	if in.Name == "" || in.Email == "" || in.Subject == "" || in.Message == "" {
		return nil, domain.ErrValidation("Name, email, subject, and message are required")
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, domain.ErrValidation("Invalid email format")
	}

	msg := &domain.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) Get(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
