package quote

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Quote represents a price quote for a stock symbol.
type Quote struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// MaxSymbolLen is the maximum accepted symbol length.
const MaxSymbolLen = 10

// NormalizeSymbol returns the canonical upper-case form of a symbol.
// The normalized form is both the cache key and the form returned to callers.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ValidateSymbol checks symbol format: 1-10 characters, letters, digits,
// dots and dashes (e.g. AAPL, BRK.B).
func ValidateSymbol(symbol string) bool {
	if len(symbol) == 0 || len(symbol) > MaxSymbolLen {
		return false
	}
	for _, c := range symbol {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}
