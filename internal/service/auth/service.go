package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rohanp2002/project-x-backend/internal/domain/user"
)

// Service handles account signup, credential checks and token issuance.
type Service struct {
	repo      user.Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewService creates a new auth Service
func NewService(repo user.Repository, jwtSecret []byte, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 60 * time.Minute
	}
	return &Service{
		repo:      repo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// SignUp registers a new account with a bcrypt-hashed password.
// Returns user.ErrEmailTaken if the email is already registered.
func (s *Service) SignUp(ctx context.Context, email, password string) (*user.User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// The check above does not lock anything; a concurrent signup for the
	// same email is caught by the unique constraint in the repository.
	return s.repo.Create(ctx, email, string(hash))
}

// Authenticate verifies the credentials and returns the user, or nil when
// the email is unknown or the password does not match. The two failure
// causes are never distinguished.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)) != nil {
		return nil, nil
	}

	return u, nil
}
