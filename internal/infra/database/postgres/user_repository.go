package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rohanp2002/project-x-backend/internal/domain/user"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// UserRepository implements user.Repository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create persists a new active user and returns it with the assigned id.
func (r *UserRepository) Create(ctx context.Context, email, hashedPassword string) (*user.User, error) {
	query := `
		INSERT INTO users (email, hashed_password, is_active)
		VALUES ($1, $2, true)
		RETURNING id
	`

	u := &user.User{Email: email, HashedPassword: hashedPassword, IsActive: true}
	err := r.pool.QueryRow(ctx, query, email, hashedPassword).Scan(&u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: %v", user.ErrDatabaseInsert, err)
	}

	return u, nil
}

// GetByEmail returns the user with the given email, or user.ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, hashed_password, is_active
		FROM users
		WHERE email = $1
	`

	u := &user.User{}
	err := r.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.HashedPassword, &u.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", user.ErrDatabaseQuery, err)
	}

	return u, nil
}
