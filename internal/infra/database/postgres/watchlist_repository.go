package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rohanp2002/project-x-backend/internal/domain/watchlist"
)

// WatchlistRepository implements watchlist.Repository using PostgreSQL
type WatchlistRepository struct {
	pool *pgxpool.Pool
}

// NewWatchlistRepository creates a new WatchlistRepository
func NewWatchlistRepository(pool *pgxpool.Pool) *WatchlistRepository {
	return &WatchlistRepository{pool: pool}
}

// Add persists a new entry and returns it with the assigned id
func (r *WatchlistRepository) Add(ctx context.Context, symbol string, note *string) (*watchlist.Entry, error) {
	query := `
		INSERT INTO watchlists (symbol, note)
		VALUES ($1, $2)
		RETURNING id
	`

	entry := &watchlist.Entry{Symbol: symbol, Note: note}
	err := r.pool.QueryRow(ctx, query, symbol, note).Scan(&entry.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", watchlist.ErrDatabaseInsert, err)
	}

	return entry, nil
}

// List returns all entries in insertion order
func (r *WatchlistRepository) List(ctx context.Context) ([]watchlist.Entry, error) {
	query := `
		SELECT id, symbol, note
		FROM watchlists
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", watchlist.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	entries := []watchlist.Entry{}
	for rows.Next() {
		var e watchlist.Entry
		if err := rows.Scan(&e.ID, &e.Symbol, &e.Note); err != nil {
			return nil, fmt.Errorf("%w: %v", watchlist.ErrDatabaseQuery, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", watchlist.ErrDatabaseQuery, err)
	}

	return entries, nil
}

// Delete removes the entry with the given id. Missing ids are a no-op.
func (r *WatchlistRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM watchlists WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("%w: %v", watchlist.ErrDatabaseDelete, err)
	}

	return nil
}
