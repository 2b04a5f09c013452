package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rohanp2002/project-x-backend/internal/api/response"
	"github.com/rohanp2002/project-x-backend/internal/domain/quote"
	"github.com/rohanp2002/project-x-backend/internal/domain/watchlist"
)

// WatchlistHandler handles watchlist HTTP requests
type WatchlistHandler struct {
	repo watchlist.Repository
}

// NewWatchlistHandler creates a new WatchlistHandler
func NewWatchlistHandler(repo watchlist.Repository) *WatchlistHandler {
	return &WatchlistHandler{repo: repo}
}

// CreateWatchlistRequest represents the add-entry request body
type CreateWatchlistRequest struct {
	Symbol string  `json:"symbol" binding:"required"`
	Note   *string `json:"note"`
}

// Create handles POST /watchlist/
func (h *WatchlistHandler) Create(c *gin.Context) {
	var req CreateWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err.Error())
		return
	}

	symbol := quote.NormalizeSymbol(req.Symbol)
	if !quote.ValidateSymbol(symbol) {
		response.ValidationError(c, "Invalid symbol", "Symbol must be 1-10 letters, digits, dots or dashes")
		return
	}

	entry, err := h.repo.Add(c.Request.Context(), symbol, req.Note)
	if err != nil {
		response.DatabaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// List handles GET /watchlist/
func (h *WatchlistHandler) List(c *gin.Context) {
	entries, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Delete handles DELETE /watchlist/:id
// Deleting an id that does not exist is a no-op, not an error.
func (h *WatchlistHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "Invalid ID", "ID must be a number")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.DatabaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
