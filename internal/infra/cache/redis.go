package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rohanp2002/project-x-backend/internal/domain/quote"
)

// keyPrefix namespaces quote keys in Redis.
const keyPrefix = "stock:"

// RedisStore implements quote.Cache backed by Redis.
// Values are stored as decimal strings with a per-key TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore from a Redis URL and verifies the
// connection with a ping.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %v", quote.ErrCacheUnavailable, err)
	}

	log.Info().Str("addr", opts.Addr).Msg("Redis connected")

	return &RedisStore{client: client}, nil
}

// Get returns the cached price for a symbol, if an unexpired entry exists.
func (s *RedisStore) Get(ctx context.Context, symbol string) (decimal.Decimal, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+symbol).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("%w: %v", quote.ErrCacheUnavailable, err)
	}

	price, err := decimal.NewFromString(val)
	if err != nil {
		// Corrupt entry, treat as a miss so it gets overwritten.
		return decimal.Zero, false, nil
	}

	return price, true, nil
}

// Set stores the price under the symbol with the given expiry.
func (s *RedisStore) Set(ctx context.Context, symbol string, price decimal.Decimal, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+symbol, price.String(), ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", quote.ErrCacheUnavailable, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
