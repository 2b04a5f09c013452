package watchlist

// Entry represents a watchlist entry.
// Maps to the watchlists table.
type Entry struct {
	ID     int64   `json:"id" db:"id"`
	Symbol string  `json:"symbol" db:"symbol"` // stored upper-case, max 10 chars
	Note   *string `json:"note" db:"note"`
}
