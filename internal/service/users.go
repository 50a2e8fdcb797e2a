package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/repository"
)

// UserInput carries the fields of a user create or update request. On
// update, nil fields are left untouched; username is never updatable.
type UserInput struct {
	Username *string
	Email    *string `validate:"omitempty,email"`
	Password *string
	Role     *string
}

type UsersService struct {
	repo     repository.UsersRepository
	validate *validator.Validate
}

func NewUsersService(repo repository.UsersRepository) *UsersService {
	return &UsersService{repo: repo, validate: validator.New()}
}

func (s *UsersService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UsersService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UsersService) Create(ctx context.Context, in UserInput) (*domain.User, error) {
	if emptyStr(in.Username) || emptyStr(in.Email) || emptyStr(in.Password) || emptyStr(in.Role) {
		return nil, domain.ErrValidation("Username, email, password, and role are required")
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, domain.ErrValidation("Invalid email format")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     *in.Username,
		PasswordHash: string(hash),
		Email:        *in.Email,
		Role:         *in.Role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UsersService) Update(ctx context.Context, id int64, in UserInput) error {
	if err := s.validate.Struct(in); err != nil {
		return domain.ErrValidation("Invalid email format")
	}

	patch := repository.UserPatch{
		Email: in.Email,
		Role:  in.Role,
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	return s.repo.Update(ctx, id, patch)
}

// Delete refuses to remove the "admin" account, which is the bootstrap
// user every deployment relies on.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Username == "admin" {
		return domain.ErrForbidden("Cannot delete admin user")
	}
	return s.repo.Delete(ctx, id)
}
