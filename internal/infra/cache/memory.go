package cache

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// entry stores a cached price with expiry.
type entry struct {
	price     decimal.Decimal
	expiresAt time.Time
}

// MemoryStore implements quote.Cache with an in-process map.
// Used by tests and as a fallback when no Redis is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]entry

	// now is swappable for tests.
	now func() time.Time
}

// NewMemoryStore creates an empty in-memory cache store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]entry),
		now:   time.Now,
	}
}

// Get returns the cached price for a symbol, if an unexpired entry exists.
// Expired entries are dropped on read.
func (s *MemoryStore) Get(_ context.Context, symbol string) (decimal.Decimal, bool, error) {
	s.mu.RLock()
	e, ok := s.items[symbol]
	s.mu.RUnlock()

	if !ok {
		return decimal.Zero, false, nil
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock, the entry may have been refreshed.
		if cur, ok := s.items[symbol]; ok && s.now().After(cur.expiresAt) {
			delete(s.items, symbol)
		}
		s.mu.Unlock()
		return decimal.Zero, false, nil
	}

	return e.price, true, nil
}

// Set stores the price under the symbol with the given expiry.
func (s *MemoryStore) Set(_ context.Context, symbol string, price decimal.Decimal, ttl time.Duration) error {
	s.mu.Lock()
	s.items[symbol] = entry{price: price, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
	return nil
}
