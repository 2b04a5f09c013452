package watchlist

import "errors"

var (
	ErrInvalidSymbol = errors.New("invalid watchlist symbol")

	// Repository errors
	ErrDatabaseQuery  = errors.New("database query failed")
	ErrDatabaseInsert = errors.New("database insert failed")
	ErrDatabaseDelete = errors.New("database delete failed")
)
