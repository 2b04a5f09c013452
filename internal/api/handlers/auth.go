package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohanp2002/project-x-backend/internal/api/response"
	"github.com/rohanp2002/project-x-backend/internal/domain/user"
	authservice "github.com/rohanp2002/project-x-backend/internal/service/auth"
)

// AuthHandler handles signup and token HTTP requests
type AuthHandler struct {
	auth *authservice.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *authservice.Service) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// CredentialsRequest represents the signup/token form body.
// The username field carries the account email.
type CredentialsRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// SignupResponse represents a created account
type SignupResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// TokenResponse represents an issued access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup handles POST /signup/
func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationError(c, "Invalid form body", err.Error())
		return
	}

	u, err := h.auth.SignUp(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			response.Conflict(c, "Email already registered")
			return
		}
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{ID: u.ID, Email: u.Email})
}

// Token handles POST /token
func (h *AuthHandler) Token(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationError(c, "Invalid form body", err.Error())
		return
	}

	u, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.Unauthorized(c, "Incorrect email or password")
		return
	}

	token, err := h.auth.IssueToken(u.Email)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
