package handler

import (
	"errors"
	"net/http"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/middleware"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID       int32  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse carries the issued token and user identity
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Username == "" || req.Password == "" {
		return NewValidationError(c, "Username and password are required", []ValidationError{
			{Field: "username", Message: "Required"},
			{Field: "password", Message: "Required"},
		})
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return NewUnauthorizedError(c, "Invalid username or password")
		}
		log.Error().Err(err).Msg("Login failed")
		return NewInternalError(c, "Failed to log in")
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: result.Token,
		User:  UserResponse{ID: result.User.ID, Username: result.User.Username},
	})
}

// Verify handles GET /api/auth/verify — echoes the identity carried by
// a valid token.
func (h *AuthHandler) Verify(c echo.Context) error {
	userID := middleware.GetUserID(c)
	username := middleware.GetUsername(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	return c.JSON(http.StatusOK, UserResponse{ID: userID, Username: username})
}

// ChangePasswordRequest is the change-password payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	username := middleware.GetUsername(c)
	if username == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return NewValidationError(c, "Current and new password are required", nil)
	}

	err := h.authService.ChangePassword(username, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordTooShort):
			return NewValidationError(c, "New password must be at least 6 characters", []ValidationError{
				{Field: "newPassword", Message: "Too short"},
			})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return NewUnauthorizedError(c, "Current password is incorrect")
		default:
			log.Error().Err(err).Str("username", username).Msg("Failed to change password")
			return NewInternalError(c, "Failed to change password")
		}
	}

	return c.NoContent(http.StatusNoContent)
}
