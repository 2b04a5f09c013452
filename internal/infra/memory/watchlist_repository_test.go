package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohanp2002/project-x-backend/internal/infra/memory"
)

func strPtr(s string) *string { return &s }

func TestWatchlistRepository_AddAndList(t *testing.T) {
	repo := memory.NewWatchlistRepository()

	entry, err := repo.Add(context.Background(), "AAPL", strPtr("buy dip"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, "AAPL", entry.Symbol)
	require.NotNil(t, entry.Note)
	assert.Equal(t, "buy dip", *entry.Note)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, *entry, entries[0])
}

func TestWatchlistRepository_IDsAreUniqueAndStable(t *testing.T) {
	repo := memory.NewWatchlistRepository()

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		entry, err := repo.Add(context.Background(), "AAPL", nil)
		require.NoError(t, err)
		assert.False(t, seen[entry.ID], "id %d assigned twice", entry.ID)
		seen[entry.ID] = true
	}

	// Ids are not reused after a delete.
	require.NoError(t, repo.Delete(context.Background(), 5))
	entry, err := repo.Add(context.Background(), "TSLA", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6), entry.ID)
}

func TestWatchlistRepository_DuplicateSymbolsAllowed(t *testing.T) {
	repo := memory.NewWatchlistRepository()

	first, err := repo.Add(context.Background(), "AAPL", strPtr("one"))
	require.NoError(t, err)
	second, err := repo.Add(context.Background(), "AAPL", strPtr("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWatchlistRepository_DeleteIsIdempotent(t *testing.T) {
	repo := memory.NewWatchlistRepository()

	entry, err := repo.Add(context.Background(), "AAPL", nil)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), entry.ID))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Deleting again, or deleting an id that never existed, is a no-op.
	assert.NoError(t, repo.Delete(context.Background(), entry.ID))
	assert.NoError(t, repo.Delete(context.Background(), 9999))
}
