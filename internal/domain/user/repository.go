package user

import "context"

// Repository defines the interface for user data access.
type Repository interface {
	// Create persists a new active user and returns it with the assigned id.
	// Returns ErrEmailTaken if the email is already registered.
	Create(ctx context.Context, email, hashedPassword string) (*User, error)

	// GetByEmail returns the user with the given email, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
