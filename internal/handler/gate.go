package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rowanfield/guestgate/internal/domain/gate"
)

// GateHandler exposes the trial gate status and the developer control
// endpoints. Status and reset sit on the admission exempt list so they stay
// reachable after expiry.
type GateHandler struct {
	Gate    *gate.Service
	DevMode bool
	DevKey  string
}

// Status reports the full gate decision for clients and UI banners.
func (h *GateHandler) Status(c *gin.Context) {
	status := h.Gate.CheckStatus(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"isExpired":        status.Expired,
		"message":          status.Message,
		"installedAt":      status.InstalledAt,
		"timeRemainingMs":  status.TimeRemaining.Milliseconds(),
		"timeLimitMinutes": int(status.TimeLimit / time.Minute),
		"isReadOnly":       h.Gate.IsReadOnly(),
		"currentTime":      time.Now(),
	})
}

// Reset re-provisions the install record. Outside dev mode it requires the
// out-of-band developer key.
func (h *GateHandler) Reset(c *gin.Context) {
	if !h.DevMode && (h.DevKey == "" || c.GetHeader("X-Dev-Key") != h.DevKey) {
		c.JSON(http.StatusForbidden, errorBody("FORBIDDEN", "developer credential required", nil))
		return
	}

	rec, err := h.Gate.Reset(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, errorBody("STORAGE_UNAVAILABLE", "could not reset install record", nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{"installedAt": rec.InstalledAt})
}

type configureBody struct {
	TimeLimitMinutes int `json:"timeLimitMinutes"`
}

// Configure sets the in-memory trial duration; it takes effect on the next
// status check and is not persisted.
func (h *GateHandler) Configure(c *gin.Context) {
	if !h.DevMode && (h.DevKey == "" || c.GetHeader("X-Dev-Key") != h.DevKey) {
		c.JSON(http.StatusForbidden, errorBody("FORBIDDEN", "developer credential required", nil))
		return
	}

	var body configureBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", "invalid request body", nil))
		return
	}

	if err := h.Gate.SetTrialDuration(time.Duration(body.TimeLimitMinutes) * time.Minute); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", "timeLimitMinutes must be positive", nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeLimitMinutes": body.TimeLimitMinutes})
}
