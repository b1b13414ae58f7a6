package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rowanfield/guestgate/internal/auth"
	"github.com/rowanfield/guestgate/internal/config"
	"github.com/rowanfield/guestgate/internal/domain/account"
	"github.com/rowanfield/guestgate/internal/domain/checkin"
	"github.com/rowanfield/guestgate/internal/domain/gate"
	"github.com/rowanfield/guestgate/internal/domain/guest"
	"github.com/rowanfield/guestgate/internal/server"
	"github.com/rowanfield/guestgate/internal/sqlite"
	"github.com/rowanfield/guestgate/migrations"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := runEmbeddedMigrations(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	installRepo := sqlite.NewInstallRepository(db)
	checkinRepo := sqlite.NewCheckinRepository(db)
	guestRepo := sqlite.NewGuestRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)

	tokenCfg := auth.TokenConfig{
		Secret: cfg.Auth.Secret,
		Expiry: time.Duration(cfg.Auth.TokenExpiryHr) * time.Hour,
		Issuer: "guestgate",
	}

	gateSvc := gate.NewService(installRepo, version, logger)
	if err := gateSvc.SetTrialDuration(time.Duration(cfg.Gate.TrialMinutes) * time.Minute); err != nil {
		logger.Error("invalid trial duration", "minutes", cfg.Gate.TrialMinutes)
		os.Exit(1)
	}
	guestSvc := guest.NewService(guestRepo, logger)
	checkinSvc := checkin.NewService(checkinRepo, guestSvc, logger)
	accountSvc := account.NewService(userRepo, sessionRepo, tokenCfg, logger)

	if cfg.Auth.AdminUser != "" && cfg.Auth.AdminPassword != "" {
		if _, err := accountSvc.EnsureUser(context.Background(), cfg.Auth.AdminUser, cfg.Auth.AdminPassword); err != nil {
			logger.Error("failed to bootstrap admin user", "error", err)
			os.Exit(1)
		}
	}

	if !cfg.Gate.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(server.Deps{
		Gate:     gateSvc,
		Checkins: checkinSvc,
		Guests:   guestSvc,
		Accounts: accountSvc,
		DevMode:  cfg.Gate.DevMode,
		DevKey:   cfg.Gate.DevKey,
	})

	httpServer := server.NewHTTPServer(cfg.Server.Host, cfg.Server.Port, router)

	go func() {
		logger.Info("server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func runEmbeddedMigrations(db *sqlite.DB) error {
	data, err := migrations.FS.ReadFile("001_initial_schema.up.sql")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	if _, err := db.Exec(string(data)); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, srv *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
