// Package middleware carries the request-level admission chain: the trial
// gate, the read-only backstop, bearer-token auth and login rate limiting.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rowanfield/guestgate/internal/domain/gate"
)

const readOnlyWarningKey = "readOnlyWarning"

// Gate is the slice of the gate service the admission chain needs.
type Gate interface {
	CheckStatus(ctx context.Context) gate.Status
	IsReadOnly() bool
}

// ReadOnlyWarningFromContext returns the warning attached to a safe read
// that was admitted while the gate is expired.
func ReadOnlyWarningFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(readOnlyWarningKey)
	if !ok {
		return "", false
	}
	msg, ok := v.(string)
	return msg, ok && msg != ""
}

// Admission gates every request on the trial clock. Paths on the exempt list
// (health, gate status, developer reset) always pass. When the gate is
// expired, mutating requests are rejected and safe reads proceed with a
// warning attached for downstream handlers.
func Admission(g Gate, exempt []string) gin.HandlerFunc {
	allow := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		allow[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := allow[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		status := g.CheckStatus(c.Request.Context())
		if !status.Expired {
			c.Next()
			return
		}

		if isSafeMethod(c.Request.Method) {
			c.Set(readOnlyWarningKey, status.Message)
			c.Next()
			return
		}

		c.JSON(http.StatusForbidden, gin.H{"error": gin.H{
			"code":            "TIME_LIMIT_EXPIRED",
			"message":         status.Message,
			"installedAt":     status.InstalledAt,
			"timeRemainingMs": status.TimeRemaining.Milliseconds(),
		}})
		c.Abort()
	}
}

// ReadOnlyGuard is the last-resort write guard. It only consults the cached
// read-only flag, so it catches mutating handlers reached through paths that
// skipped the admission check. The authoritative, freshly computed decision
// stays with Admission.
func ReadOnlyGuard(g Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) || !g.IsReadOnly() {
			c.Next()
			return
		}

		c.JSON(http.StatusForbidden, gin.H{"error": gin.H{
			"code":    "READ_ONLY_MODE",
			"message": "read-only mode active",
		}})
		c.Abort()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
