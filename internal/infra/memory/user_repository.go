package memory

import (
	"context"
	"sync"

	"github.com/rohanp2002/project-x-backend/internal/domain/user"
)

// UserRepository implements user.Repository with an in-process map.
type UserRepository struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]user.User
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1, byEmail: make(map[string]user.User)}
}

// Create persists a new active user and returns it with the assigned id.
func (r *UserRepository) Create(_ context.Context, email, hashedPassword string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return nil, user.ErrEmailTaken
	}

	u := user.User{ID: r.nextID, Email: email, HashedPassword: hashedPassword, IsActive: true}
	r.nextID++
	r.byEmail[email] = u

	out := u
	return &out, nil
}

// GetByEmail returns the user with the given email, or user.ErrNotFound.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}

	out := u
	return &out, nil
}
