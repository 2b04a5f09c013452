package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohanp2002/project-x-backend/internal/infra/database/postgres"
	"github.com/rohanp2002/project-x-backend/internal/pkg/config"
)

func TestWatchlistRepository_RoundTrip(t *testing.T) {
	t.Skip("Integration test - requires PostgreSQL")

	ctx := context.Background()

	cfg, err := config.Load()
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, cfg)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, postgres.RunMigrations(ctx, cfg.Database.URL))

	repo := postgres.NewWatchlistRepository(pool.Pool)

	note := "integration"
	entry, err := repo.Add(ctx, "AAPL", &note)
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	require.NoError(t, repo.Delete(ctx, entry.ID))
	// Idempotent delete.
	assert.NoError(t, repo.Delete(ctx, entry.ID))
}
