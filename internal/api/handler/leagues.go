package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/fwl-league/fwl-hub/internal/api/respond"
	"github.com/fwl-league/fwl-hub/internal/cache"
	"github.com/fwl-league/fwl-hub/internal/dashboard"
	"github.com/fwl-league/fwl-hub/internal/registry"
)

// ListLeagues returns the league registry.
// @Summary List leagues
// @Description Returns the compiled-in league registry, optionally filtered by category.
// @Tags leagues
// @Produce json
// @Param category query string false "League category" Enums(championship, divisional)
// @Success 200 {array} registry.Descriptor
// @Failure 400 {object} respond.ErrorResponse
// @Router /leagues [get]
func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	leagues := registry.Leagues()
	if raw != "" {
		category, err := registry.ParseCategory(raw)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
			return
		}
		leagues = registry.ByCategory(category)
	}

	h.writeCached(w, r, "leagues:"+raw, cache.TTLRegistry, func() (any, error) {
		return leagues, nil
	})
}

// GetLeague returns one registry entry.
// @Summary Get league
// @Description Returns the registry descriptor for a league.
// @Tags leagues
// @Produce json
// @Param leagueID path string true "Sleeper league ID"
// @Success 200 {object} registry.Descriptor
// @Failure 404 {object} respond.ErrorResponse
// @Router /leagues/{leagueID} [get]
func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	d, ok := registry.Lookup(leagueID)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "League "+leagueID+" is not registered")
		return
	}
	h.writeCached(w, r, "league:"+leagueID, cache.TTLRegistry, func() (any, error) {
		return d, nil
	})
}

// GetDashboard returns the shaped dashboard for a league.
// @Summary League dashboard
// @Description Fetches the league from Sleeper and returns standings, current week matchups, the winners bracket and that week's transactions.
// @Tags leagues
// @Produce json
// @Param leagueID path string true "Sleeper league ID"
// @Success 200 {object} dashboard.View
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /leagues/{leagueID}/dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")

	h.writeCached(w, r, "dashboard:"+leagueID, cache.TTLDashboard, func() (any, error) {
		data, err := h.leagues.FetchLeagueData(r.Context(), leagueID)
		if err != nil {
			h.writeUpstreamError(w, leagueID, err)
			return nil, err
		}
		return dashboard.Build(data), nil
	})
}

// GetPlayoffs returns the bracket overview of the Brady Bowl leagues.
// A league Sleeper cannot serve is reported as unavailable rather than
// failing the whole response.
// @Summary Brady Bowl playoffs
// @Description Returns the winners bracket and champion of each championship league.
// @Tags leagues
// @Produce json
// @Success 200 {array} dashboard.Playoff
// @Router /playoffs [get]
func (h *Handler) GetPlayoffs(w http.ResponseWriter, r *http.Request) {
	if data, etag, ok := h.cache.Get("playoffs"); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLPlayoffs, true)
		return
	}

	leagues := registry.ByCategory(registry.Championship)
	out := make([]dashboard.Playoff, len(leagues))

	var g errgroup.Group
	for i, l := range leagues {
		g.Go(func() error {
			data, err := h.leagues.FetchLeagueData(r.Context(), l.ID)
			if err != nil {
				h.logger.Warn("Playoff bracket unavailable", "league_id", l.ID, "error", err)
				out[i] = dashboard.Playoff{LeagueID: l.ID, Name: l.Name}
				return nil
			}
			out[i] = dashboard.BuildPlayoff(l.Name, data)
			return nil
		})
	}
	g.Wait()

	raw, err := json.Marshal(out)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to encode playoffs")
		return
	}

	complete := true
	for _, p := range out {
		complete = complete && p.Available
	}
	etag := cache.ComputeETag(raw)
	if complete {
		etag = h.cache.Set("playoffs", raw, cache.TTLPlayoffs)
	}
	respond.WriteJSON(w, raw, etag, cache.TTLPlayoffs, false)
}

// writeCached serves key from the cache, or builds, stores and serves it.
// build writes its own error response when it fails.
func (h *Handler) writeCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, build func() (any, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := build()
	if err != nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, raw, ttl)
	respond.WriteJSON(w, raw, etag, ttl, false)
}
