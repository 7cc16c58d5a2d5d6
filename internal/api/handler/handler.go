// Package handler provides HTTP handlers for all API endpoints.
// League data comes from the Sleeper client; navigation state lives in the
// per-cookie session store.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwl-league/fwl-hub/internal/api/respond"
	"github.com/fwl-league/fwl-hub/internal/app"
	"github.com/fwl-league/fwl-hub/internal/cache"
	"github.com/fwl-league/fwl-hub/internal/config"
	"github.com/fwl-league/fwl-hub/internal/identity"
	"github.com/fwl-league/fwl-hub/internal/sleeper"
)

// LeagueSource fetches full league data. Implemented by *sleeper.Client.
type LeagueSource interface {
	FetchLeagueData(ctx context.Context, leagueID string) (*sleeper.LeagueData, error)
}

// IdentityState exposes the startup identity batch. Implemented by
// *identity.Loader.
type IdentityState interface {
	Loading() bool
	Avatars() identity.Avatars
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	cfg      *config.Config
	cache    *cache.Cache
	leagues  LeagueSource
	identity IdentityState
	sessions *app.Store
	logger   *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(cfg *config.Config, c *cache.Cache, leagues LeagueSource, ident IdentityState, sessions *app.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:      cfg,
		cache:    c,
		leagues:  leagues,
		identity: ident,
		sessions: sessions,
		logger:   logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and the season served.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "FWL Hub API",
		"version": "1.0.0",
		"status":  "running",
		"season":  config.Season,
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status, identity loader state and live session count.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":           "healthy",
		"identity_loading": h.identity.Loading(),
		"sessions":         h.sessions.Len(),
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys, hits, misses).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// writeUpstreamError maps a Sleeper client error onto the error envelope.
func (h *Handler) writeUpstreamError(w http.ResponseWriter, leagueID string, err error) {
	var statusErr *sleeper.StatusError
	switch {
	case errors.Is(err, sleeper.ErrNotFound):
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "League "+leagueID+" not found")
	case errors.Is(err, context.DeadlineExceeded):
		respond.WriteError(w, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "Sleeper did not respond in time")
	case errors.As(err, &statusErr):
		respond.WriteErrorDetail(w, http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR",
			"Sleeper request failed", fmt.Sprintf("%s returned %d", statusErr.Path, statusErr.StatusCode))
	default:
		h.logger.Error("Sleeper request failed", "league_id", leagueID, "error", err)
		respond.WriteError(w, http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR", "Sleeper request failed")
	}
}
