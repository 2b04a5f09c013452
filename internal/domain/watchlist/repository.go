package watchlist

import "context"

// Repository defines the interface for watchlist data access.
// Two implementations exist: PostgreSQL-backed and in-memory.
type Repository interface {
	// Add persists a new entry with a store-assigned id and returns it.
	// The symbol must already be normalized to upper-case.
	Add(ctx context.Context, symbol string, note *string) (*Entry, error)

	// List returns all entries in insertion order.
	List(ctx context.Context) ([]Entry, error)

	// Delete removes the entry with the given id.
	// Deleting a non-existent id is not an error.
	Delete(ctx context.Context, id int64) error
}
