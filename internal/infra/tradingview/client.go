package tradingview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rohanp2002/project-x-backend/internal/domain/quote"
)

// Client fetches quotes from the TradingView scanner API.
type Client struct {
	baseURL    string
	screener   string // e.g. "america"
	exchange   string // e.g. "NASDAQ"
	httpClient *http.Client
}

// Config holds TradingView client configuration.
type Config struct {
	BaseURL  string
	Screener string
	Exchange string
	Timeout  time.Duration
}

// NewClient creates a new TradingView scanner client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		screener:   cfg.Screener,
		exchange:   cfg.Exchange,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// scanRequest represents a scanner API request body
type scanRequest struct {
	Symbols scanSymbols `json:"symbols"`
	Columns []string    `json:"columns"`
}

type scanSymbols struct {
	Tickers []string `json:"tickers"`
}

// scanResponse represents a scanner API response
type scanResponse struct {
	TotalCount int        `json:"totalCount"`
	Data       []scanItem `json:"data"`
}

type scanItem struct {
	Symbol string             `json:"s"` // "NASDAQ:AAPL"
	Values []*decimal.Decimal `json:"d"` // requested columns, in order; null when unavailable
}

// FetchPrice fetches the current close price for a normalized symbol.
func (c *Client) FetchPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/scan", c.baseURL, c.screener)

	body, err := json.Marshal(scanRequest{
		Symbols: scanSymbols{Tickers: []string{c.exchange + ":" + symbol}},
		Columns: []string{"close"},
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", quote.ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: read response: %v", quote.ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: status=%d body=%s", quote.ErrUpstream, resp.StatusCode, string(respBody))
	}

	var scanResp scanResponse
	if err := json.Unmarshal(respBody, &scanResp); err != nil {
		return decimal.Zero, fmt.Errorf("%w: unmarshal response: %v", quote.ErrUpstream, err)
	}

	if len(scanResp.Data) == 0 || len(scanResp.Data[0].Values) == 0 || scanResp.Data[0].Values[0] == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", quote.ErrSymbolNotFound, symbol)
	}

	price := *scanResp.Data[0].Values[0]
	if price.IsZero() || price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: no valid price for %s", quote.ErrSymbolNotFound, symbol)
	}

	return price, nil
}
