package memory

import (
	"context"
	"sync"

	"github.com/rohanp2002/project-x-backend/internal/domain/watchlist"
)

// WatchlistRepository implements watchlist.Repository with an in-process map.
// The id counter is owned by the repository instance, not shared process state.
type WatchlistRepository struct {
	mu      sync.Mutex
	nextID  int64
	entries []watchlist.Entry
}

// NewWatchlistRepository creates an empty in-memory watchlist repository
func NewWatchlistRepository() *WatchlistRepository {
	return &WatchlistRepository{nextID: 1}
}

// Add persists a new entry and returns it with the assigned id
func (r *WatchlistRepository) Add(_ context.Context, symbol string, note *string) (*watchlist.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := watchlist.Entry{ID: r.nextID, Symbol: symbol, Note: note}
	r.nextID++
	r.entries = append(r.entries, entry)

	// Return a copy so callers cannot alias internal state.
	out := entry
	return &out, nil
}

// List returns all entries in insertion order
func (r *WatchlistRepository) List(_ context.Context) ([]watchlist.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]watchlist.Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// Delete removes the entry with the given id. Missing ids are a no-op.
func (r *WatchlistRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}
