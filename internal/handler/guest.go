package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rowanfield/guestgate/internal/domain/guest"
)

// GuestHandler exposes the guest registry.
type GuestHandler struct {
	Guests *guest.Service
}

type createGuestBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create registers a guest; the returned ID is the QR credential payload.
func (h *GuestHandler) Create(c *gin.Context) {
	var body createGuestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", "invalid request body", nil))
		return
	}

	g, err := h.Guests.Create(c.Request.Context(), body.Name, body.Email)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"guest": g})
}

// Get returns a single guest.
func (h *GuestHandler) Get(c *gin.Context) {
	g, err := h.Guests.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guest": g})
}

// List returns all registered guests.
func (h *GuestHandler) List(c *gin.Context) {
	guests, err := h.Guests.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if guests == nil {
		guests = []guest.Guest{}
	}
	c.JSON(http.StatusOK, gin.H{"guests": guests})
}

// Delete removes a guest along with any live check-in record.
func (h *GuestHandler) Delete(c *gin.Context) {
	if err := h.Guests.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *GuestHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, guest.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody("GUEST_NOT_FOUND", "guest not found", nil))
	case errors.Is(err, guest.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", "name is required", nil))
	default:
		c.JSON(http.StatusInternalServerError, errorBody("INTERNAL", "internal error", nil))
	}
}
