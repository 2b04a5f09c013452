package quote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Source fetches quotes from an external market data provider.
type Source interface {
	// FetchPrice returns the current price for a normalized symbol.
	FetchPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// Cache stores recently fetched prices keyed by normalized symbol.
// Losing cached data must never change correctness, only latency.
type Cache interface {
	// Get returns the cached price and whether an unexpired entry exists.
	Get(ctx context.Context, symbol string) (decimal.Decimal, bool, error)

	// Set stores a price under the symbol with the given expiry.
	Set(ctx context.Context, symbol string, price decimal.Decimal, ttl time.Duration) error
}
