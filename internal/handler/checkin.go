package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rowanfield/guestgate/internal/domain/checkin"
	"github.com/rowanfield/guestgate/internal/middleware"
)

// CheckinHandler exposes the check-in ledger.
type CheckinHandler struct {
	Checkins *checkin.Service
}

type checkInBody struct {
	GuestID   string     `json:"guestId"`
	Name      string     `json:"name"`
	Timestamp *time.Time `json:"timestamp"`
}

// Create marks a guest present.
func (h *CheckinHandler) Create(c *gin.Context) {
	var body checkInBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", "invalid request body", nil))
		return
	}

	rec, err := h.Checkins.CheckIn(c.Request.Context(), checkin.CheckInRequest{
		GuestID:   body.GuestID,
		Name:      body.Name,
		Timestamp: body.Timestamp,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recordJSON(rec))
}

// Delete marks a guest absent.
func (h *CheckinHandler) Delete(c *gin.Context) {
	guestID := c.Param("guestId")
	if err := h.Checkins.CheckOut(c.Request.Context(), guestID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List returns the currently-present guests, most recent first. When the
// gate admitted this read in expired mode the response carries the warning
// for UI banners.
func (h *CheckinHandler) List(c *gin.Context) {
	records, err := h.Checkins.ListPresent(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]gin.H, 0, len(records))
	for i := range records {
		resp = append(resp, recordJSON(&records[i]))
	}

	body := gin.H{"checkins": resp}
	if warning, ok := middleware.ReadOnlyWarningFromContext(c); ok {
		body["warning"] = warning
	}
	c.JSON(http.StatusOK, body)
}

func (h *CheckinHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkin.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, errorBody("GUEST_NOT_FOUND", "guest not found", nil))
	case errors.Is(err, checkin.ErrAlreadyCheckedIn):
		c.JSON(http.StatusConflict, errorBody("ALREADY_CHECKED_IN", "guest is already checked in", nil))
	case errors.Is(err, checkin.ErrNotCheckedIn):
		c.JSON(http.StatusNotFound, errorBody("NOT_CHECKED_IN", "guest is not checked in", nil))
	case errors.Is(err, checkin.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", "guestId is required", nil))
	case errors.Is(err, checkin.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, errorBody("STORAGE_UNAVAILABLE", "storage unavailable, try again", nil))
	default:
		c.JSON(http.StatusInternalServerError, errorBody("INTERNAL", "internal error", nil))
	}
}

func recordJSON(rec *checkin.Record) gin.H {
	return gin.H{
		"id":        rec.ID,
		"guestId":   rec.GuestID,
		"name":      rec.GuestName,
		"timestamp": rec.CheckedInAt,
	}
}
