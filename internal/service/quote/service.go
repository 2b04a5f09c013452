package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rohanp2002/project-x-backend/internal/domain/quote"
)

// Service resolves stock prices through a read-through cache.
// On a miss it fetches from the external source and populates the cache;
// losing the cache only costs latency, never correctness.
type Service struct {
	source quote.Source
	cache  quote.Cache
	ttl    time.Duration
}

// NewService creates a new quote Service
func NewService(source quote.Source, cache quote.Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &Service{
		source: source,
		cache:  cache,
		ttl:    ttl,
	}
}

// GetPrice returns the current price for a symbol.
//
// The symbol is normalized to upper-case; the normalized form is the cache
// key and the canonical form returned to callers. Concurrent misses for the
// same symbol may each call the source; quotes are idempotent reads so the
// duplicate fetch is harmless.
func (s *Service) GetPrice(ctx context.Context, symbol string) (*quote.Quote, error) {
	normalized := quote.NormalizeSymbol(symbol)
	if !quote.ValidateSymbol(normalized) {
		return nil, fmt.Errorf("%w: %q", quote.ErrInvalidSymbol, symbol)
	}

	cached, hit, err := s.cache.Get(ctx, normalized)
	if err != nil {
		// Degrade to a source fetch, the cache is an optimization only.
		log.Warn().Err(err).Str("symbol", normalized).Msg("Quote cache read failed")
	}
	if hit {
		return &quote.Quote{Symbol: normalized, Price: cached, FetchedAt: time.Now()}, nil
	}

	price, err := s.source.FetchPrice(ctx, normalized)
	if err != nil {
		// Failures are never cached.
		return nil, err
	}

	if err := s.cache.Set(ctx, normalized, price, s.ttl); err != nil {
		log.Warn().Err(err).Str("symbol", normalized).Msg("Quote cache write failed")
	}

	return &quote.Quote{Symbol: normalized, Price: price, FetchedAt: time.Now()}, nil
}
