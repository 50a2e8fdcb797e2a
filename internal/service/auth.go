package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/logger"
	"github.com/jeunessebiere/site-api/internal/repository"
)

const tokenTTL = 24 * time.Hour

// SessionUser is the user shape returned to the client on login, without
// email or timestamps.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

type AuthService struct {
	users  repository.UsersRepository
	tokens repository.TokensRepository
	now    func() time.Time
}

func NewAuthService(users repository.UsersRepository, tokens repository.TokensRepository) *AuthService {
	return &AuthService{users: users, tokens: tokens, now: time.Now}
}

// Login checks the credentials and issues a fresh opaque token. A wrong
// username and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrValidation("Username and password are required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) && appErr.Code == domain.CodeNotFound {
			return nil, domain.ErrUnauthorized("Invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrUnauthorized("Invalid credentials")
	}

	raw, err := generateToken()
	if err != nil {
		return nil, err
	}

	token := &domain.Token{
		UserID:    user.ID,
		Token:     raw,
		ExpiresAt: s.now().Add(tokenTTL),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, s.now()); err != nil {
		logger.Logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to record last login")
	}

	return &LoginResult{
		Token: raw,
		User:  SessionUser{ID: user.ID, Username: user.Username, Role: user.Role},
	}, nil
}

// Authenticate resolves a bearer token into its user. Expired and
// unknown tokens are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized("Unauthorized")
	}
	return s.tokens.GetUserByToken(ctx, token, s.now())
}

// Logout deletes the token so it can never be used again. Unknown tokens
// are ignored; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.tokens.Delete(ctx, token)
}

// Bootstrap creates the initial administrator account when the users
// table is empty, so a fresh deployment can be logged into.
func (s *AuthService) Bootstrap(ctx context.Context, password string) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Email:        "admin@jeunesse-biere.local",
		Role:         domain.RoleAdministrator,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	logger.Logger.Info().Msg("created initial admin user")
	return nil
}

// generateToken returns 256 bits of randomness as 64 hex characters.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
