package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohanp2002/project-x-backend/internal/api/response"
	"github.com/rohanp2002/project-x-backend/internal/domain/quote"
	quoteservice "github.com/rohanp2002/project-x-backend/internal/service/quote"
)

// StockHandler handles stock quote HTTP requests
type StockHandler struct {
	quotes *quoteservice.Service
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(quotes *quoteservice.Service) *StockHandler {
	return &StockHandler{quotes: quotes}
}

// StockResponse represents a stock quote response
type StockResponse struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// Get returns the current price for a symbol
// GET /stocks/:symbol
func (h *StockHandler) Get(c *gin.Context) {
	symbol := c.Param("symbol")

	q, err := h.quotes.GetPrice(c.Request.Context(), symbol)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrInvalidSymbol):
			response.ValidationError(c, "Invalid symbol", "Symbol must be 1-10 letters, digits, dots or dashes")
		case errors.Is(err, quote.ErrSymbolNotFound), errors.Is(err, quote.ErrUpstream):
			response.NotFound(c, "Could not fetch "+quote.NormalizeSymbol(symbol))
		default:
			response.InternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, StockResponse{
		Symbol: q.Symbol,
		Price:  q.Price.InexactFloat64(),
	})
}
