package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohanp2002/project-x-backend/internal/infra/database/postgres"
)

// Pinger checks connectivity of an external store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	dbPool *postgres.Pool // nil when running without Postgres
	cache  Pinger         // nil when running without Redis
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(dbPool *postgres.Pool, cache Pinger) *HealthHandler {
	return &HealthHandler{
		dbPool: dbPool,
		cache:  cache,
	}
}

// HealthResponse represents the liveness response
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse represents a readiness check response
type ReadyResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Message string            `json:"message,omitempty"`
}

// Health returns simple liveness check
// GET /
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "OK"})
}

// Ready returns readiness check with dependency checks
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := make(map[string]string)
	allReady := true
	message := ""

	if h.dbPool != nil {
		dbHealth := h.dbPool.Health(c.Request.Context())
		if dbHealth.Status == "healthy" || dbHealth.Status == "degraded" {
			checks["database"] = "ok"
		} else {
			checks["database"] = "error"
			allReady = false
			message = "Database connection failed"
		}
	}

	if h.cache != nil {
		if err := h.cache.Ping(c.Request.Context()); err == nil {
			checks["redis"] = "ok"
		} else {
			checks["redis"] = "error"
			allReady = false
			if message == "" {
				message = "Redis connection failed"
			}
		}
	}

	status := "ready"
	statusCode := http.StatusOK
	if !allReady {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, ReadyResponse{
		Status:  status,
		Checks:  checks,
		Message: message,
	})
}
