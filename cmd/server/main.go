package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/MassBabyGeek/FocusPlay-backend/internal/api"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/cache"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/config"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/handler"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/logger"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/middleware"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/store"
	"github.com/MassBabyGeek/FocusPlay-backend/internal/ws"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Open the store matching DB_DRIVER
	st, err := openStore(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer st.Close()
	logger.Success("Store ready (driver: %s)", cfg.DBDriver)

	// Bootstrap admin account
	if err := ensureAdmin(st, cfg); err != nil {
		logger.Error("Admin bootstrap failed: %v", err)
		os.Exit(1)
	}

	h := handler.New(st)

	// Optional Redis leaderboard cache
	if cfg.RedisAddr != "" {
		lb, err := cache.NewLeaderboard(cfg.RedisAddr)
		if err != nil {
			logger.Warning("Redis unavailable (%v), leaderboard cache disabled", err)
		} else {
			h.Cache = lb
			logger.Success("Leaderboard cache connected (%s)", cfg.RedisAddr)
		}
	}

	// WebSocket hub for live leaderboard refreshes
	hub := ws.NewHub()
	go hub.Run()
	h.Hub = hub

	// Initialize routes
	router := api.SetupRouter(h, st)

	// Wrap router with CORS middleware
	srv := middleware.CORS(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DBDriver == "postgres" {
		return store.OpenPostgres(context.Background(), cfg.PostgresDSN())
	}
	return store.OpenSQLite(cfg.SQLitePath)
}

// ensureAdmin crée le compte administrateur au premier démarrage
func ensureAdmin(st store.Store, cfg *config.Config) error {
	ctx := context.Background()

	_, _, err := st.UserByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := st.CreateUser(ctx, cfg.AdminUsername, string(hash), true); err != nil {
		return err
	}
	logger.Info("Admin account %q created", cfg.AdminUsername)
	return nil
}
