package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userIDContextKey = "userID"
	tokenContextKey  = "bearerToken"
)

// TokenValidator checks a bearer token end to end (signature plus live
// session row) and returns the owning user ID.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// UserIDFromContext returns the authenticated user ID set by RequireAuth.
func UserIDFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDContextKey)
	if !ok {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok && userID != ""
}

// TokenFromContext returns the raw bearer token set by RequireAuth.
func TokenFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(tokenContextKey)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}

// RequireAuth enforces bearer-token authentication. Malformed, expired and
// revoked tokens all get the identical response.
func RequireAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}

		userID, err := validator.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(userIDContextKey, userID)
		c.Set(tokenContextKey, parts[1])
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
		"code":    "UNAUTHORIZED",
		"message": "invalid authentication token",
	}})
	c.Abort()
}
