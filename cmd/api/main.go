// Command api is the HoopRank Data API server.
//
// Usage:
//
//	hooprank-api
//	API_PORT=8080 hooprank-api

// @title HoopRank Data API
// @version 1.0.0
// @description NBA season fantasy stats API: aggregated per-player season rows with Underdog and DraftKings valuations, served with per-game / totals / per-minute views.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/hooprank/hooprank-data/internal/api"
	"github.com/hooprank/hooprank-data/internal/api/handler"
	"github.com/hooprank/hooprank-data/internal/cache"
	"github.com/hooprank/hooprank-data/internal/config"
	"github.com/hooprank/hooprank-data/internal/db"
	"github.com/hooprank/hooprank-data/internal/provider/bdl"
	"github.com/hooprank/hooprank-data/internal/schedule"
	"github.com/hooprank/hooprank-data/internal/store"
	"github.com/hooprank/hooprank-data/internal/update"

	_ "github.com/hooprank/hooprank-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Stats store + optional refresh service
	st := store.New(pool.Pool)

	var updater handler.Updater
	if cfg.BDLAPIKey != "" {
		svc := &update.Service{
			Source: bdl.NewNBAHandler(cfg.BDLAPIKey, logger),
			Store:  st,
			Logger: logger,
		}
		updater = svc

		// Background refresh replaces an external cron trigger.
		if cfg.RefreshInterval > 0 {
			go schedule.Start(ctx, svc, cfg.CurrentSeason, cfg.RefreshInterval, logger)
		}
	} else {
		logger.Info("Stats refresh disabled (no BALLDONTLIE_API_KEY)")
	}

	// Create router
	router := api.NewRouter(pool.Pool, appCache, cfg, st, updater)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second, // refresh trigger runs in-request
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting HoopRank Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
