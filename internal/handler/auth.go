package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rowanfield/guestgate/internal/domain/account"
	"github.com/rowanfield/guestgate/internal/middleware"
)

// AuthHandler exposes login, logout and password change.
type AuthHandler struct {
	Accounts     *account.Service
	LoginLimiter *middleware.RateLimiter
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.LoginLimiter != nil && !h.LoginLimiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, errorBody("RATE_LIMITED", "too many login attempts", nil))
		return
	}

	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", "invalid request body", nil))
		return
	}

	result, err := h.Accounts.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, errorBody("UNAUTHORIZED", "invalid credentials", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, errorBody("INTERNAL", "internal error", nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     result.Token,
		"expiresAt": result.ExpiresAt,
		"user": gin.H{
			"id":       result.User.ID,
			"username": result.User.Username,
		},
	})
}

// Logout revokes the session behind the presented token.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.TokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody("UNAUTHORIZED", "invalid authentication token", nil))
		return
	}

	if err := h.Accounts.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("INTERNAL", "internal error", nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type changePasswordBody struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword re-hashes the password and revokes every session of the
// user, including the one making this request.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody("UNAUTHORIZED", "invalid authentication token", nil))
		return
	}

	var body changePasswordBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", "invalid request body", nil))
		return
	}

	err := h.Accounts.ChangePassword(c.Request.Context(), userID, body.CurrentPassword, body.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidCredentials), errors.Is(err, account.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, errorBody("UNAUTHORIZED", "invalid credentials", nil))
		case errors.Is(err, account.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", "newPassword is required", nil))
		default:
			c.JSON(http.StatusInternalServerError, errorBody("INTERNAL", "internal error", nil))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
