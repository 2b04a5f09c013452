package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/rohanp2002/project-x-backend/internal/api/middleware"
)

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details
type ErrorDetail struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Error codes
const (
	ErrCodeInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrCodeInvalidParameter = "INVALID_PARAMETER"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeDatabaseError    = "DATABASE_ERROR"
)

// Error sends an error response
func Error(c *gin.Context, statusCode int, code, message string) {
	ErrorWithDetails(c, statusCode, code, message, "")
}

// ErrorWithDetails sends an error response with additional details
func ErrorWithDetails(c *gin.Context, statusCode int, code, message, details string) {
	resp := ErrorResponse{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: middleware.GetRequestID(c),
			Timestamp: time.Now(),
		},
	}

	log.Error().
		Str("request_id", resp.Error.RequestID).
		Str("error_code", code).
		Str("message", message).
		Int("status", statusCode).
		Msg("API error response")

	c.JSON(statusCode, resp)
}

// ValidationError sends a 422 Unprocessable Entity error
func ValidationError(c *gin.Context, message, details string) {
	ErrorWithDetails(c, http.StatusUnprocessableEntity, ErrCodeValidation, message, details)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, ErrCodeNotFound, message)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Conflict reports a duplicate resource. Served as 400, matching the wire
// contract the frontend was built against.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, ErrCodeConflict, message)
}

// InternalError sends a 500 Internal Server Error
func InternalError(c *gin.Context, err error) {
	details := ""
	if err != nil {
		details = err.Error()

		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("Internal server error")
	}

	ErrorWithDetails(c, http.StatusInternalServerError, ErrCodeInternalServer,
		"An unexpected error occurred", details)
}

// DatabaseError sends a database error response
func DatabaseError(c *gin.Context, err error) {
	details := ""
	if err != nil {
		details = err.Error()

		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("Database error")
	}

	ErrorWithDetails(c, http.StatusInternalServerError, ErrCodeDatabaseError,
		"Database operation failed", details)
}
