// Package server wires the middleware chain and the REST routes.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rowanfield/guestgate/internal/domain/account"
	"github.com/rowanfield/guestgate/internal/domain/checkin"
	"github.com/rowanfield/guestgate/internal/domain/gate"
	"github.com/rowanfield/guestgate/internal/domain/guest"
	"github.com/rowanfield/guestgate/internal/handler"
	"github.com/rowanfield/guestgate/internal/middleware"
)

// Deps carries the services the router dispatches to.
type Deps struct {
	Gate     *gate.Service
	Checkins *checkin.Service
	Guests   *guest.Service
	Accounts *account.Service
	DevMode  bool
	DevKey   string
}

// admissionExempt lists the exact paths that bypass the trial gate: the
// liveness probe, the status endpoint clients poll to render expiry banners,
// and the developer reset that ends read-only mode.
var admissionExempt = []string{
	"/health",
	"/api/v1/gate/status",
	"/api/v1/dev/reset",
}

// NewRouter builds the gin engine. Every route passes the admission gate;
// mutating authenticated routes additionally pass the cached read-only
// backstop.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.Admission(deps.Gate, admissionExempt))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	gateHandler := &handler.GateHandler{Gate: deps.Gate, DevMode: deps.DevMode, DevKey: deps.DevKey}
	r.GET("/api/v1/gate/status", gateHandler.Status)
	r.POST("/api/v1/dev/reset", gateHandler.Reset)
	r.POST("/api/v1/dev/configure", gateHandler.Configure)

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	authHandler := &handler.AuthHandler{Accounts: deps.Accounts, LoginLimiter: loginLimiter}
	r.POST("/api/v1/auth/login", authHandler.Login)

	protected := r.Group("/api/v1")
	protected.Use(middleware.RequireAuth(deps.Accounts))
	protected.Use(middleware.ReadOnlyGuard(deps.Gate))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.POST("/auth/password", authHandler.ChangePassword)

	checkinHandler := &handler.CheckinHandler{Checkins: deps.Checkins}
	protected.POST("/checkins", checkinHandler.Create)
	protected.DELETE("/checkins/:guestId", checkinHandler.Delete)
	protected.GET("/checkins", checkinHandler.List)

	guestHandler := &handler.GuestHandler{Guests: deps.Guests}
	protected.POST("/guests", guestHandler.Create)
	protected.GET("/guests", guestHandler.List)
	protected.GET("/guests/:id", guestHandler.Get)
	protected.DELETE("/guests/:id", guestHandler.Delete)

	return r
}
