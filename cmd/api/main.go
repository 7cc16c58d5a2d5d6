// Command api is the FWL hub server.
//
// Usage:
//
//	fwl-api
//	API_PORT=8080 fwl-api

// @title FWL Hub API
// @version 1.0.0
// @description FWL 2025 fantasy-football hub: league registry, session navigation with server-rendered screen descriptors, and league dashboards shaped from the Sleeper API.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name FWL
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

	"github.com/fwl-league/fwl-hub/internal/api"
	"github.com/fwl-league/fwl-hub/internal/app"
	"github.com/fwl-league/fwl-hub/internal/cache"
	"github.com/fwl-league/fwl-hub/internal/config"
	"github.com/fwl-league/fwl-hub/internal/identity"
	"github.com/fwl-league/fwl-hub/internal/maintenance"
	"github.com/fwl-league/fwl-hub/internal/metrics"
	"github.com/fwl-league/fwl-hub/internal/sleeper"

	_ "github.com/fwl-league/fwl-hub/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
	}

	// Sleeper client
	opts := []sleeper.Option{sleeper.WithCache(appCache)}
	if recorder != nil {
		opts = append(opts, sleeper.WithRecorder(recorder))
	}
	client := sleeper.NewClient(cfg.SleeperBaseURL, cfg.SleeperRequestsPerMinute, logger, opts...)

	// Identity batch runs once; screens render as loading until it completes.
	var identityRecorder identity.Recorder
	if recorder != nil {
		identityRecorder = recorder
	}
	loader := identity.NewLoader(client, identity.DefaultSources(), logger, identityRecorder)
	go loader.Load(ctx)

	// Sessions
	sessions := app.NewStore(cfg.SessionTTL)

	// Start maintenance tickers (session expiry, usage report)
	go maintenance.Start(ctx, sessions, appCache, maintenance.DefaultConfig(), logger)

	// Create router
	router := api.NewRouter(api.Deps{
		Config:   cfg,
		Cache:    appCache,
		Leagues:  client,
		Identity: loader,
		Sessions: sessions,
		Metrics:  recorder,
		Logger:   logger,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting FWL Hub API",
			"addr", addr,
			"environment", cfg.Environment,
			"season", config.Season,
			"sleeper", cfg.SleeperBaseURL,
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
