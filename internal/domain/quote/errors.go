package quote

import "errors"

var (
	// Validation errors
	ErrInvalidSymbol = errors.New("invalid symbol format")

	// Lookup errors. An upstream failure is reported to callers the same way
	// as an unknown symbol.
	ErrSymbolNotFound = errors.New("symbol not found")
	ErrUpstream       = errors.New("quote source request failed")

	// Cache errors
	ErrCacheUnavailable = errors.New("quote cache unavailable")
)
