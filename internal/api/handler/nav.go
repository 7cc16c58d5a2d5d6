package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fwl-league/fwl-hub/internal/api/respond"
	"github.com/fwl-league/fwl-hub/internal/app"
	"github.com/fwl-league/fwl-hub/internal/identity"
	"github.com/fwl-league/fwl-hub/internal/nav"
	"github.com/fwl-league/fwl-hub/internal/registry"
)

// IdentityResponse is the loader state.
type IdentityResponse struct {
	Loading bool             `json:"loading"`
	Avatars identity.Avatars `json:"avatars"`
}

// GetIdentity returns the identity batch.
// @Summary Identity avatars
// @Description Returns whether the startup identity batch is still loading and the avatar references resolved so far.
// @Tags identity
// @Produce json
// @Success 200 {object} IdentityResponse
// @Router /identity [get]
func (h *Handler) GetIdentity(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, IdentityResponse{
		Loading: h.identity.Loading(),
		Avatars: h.identity.Avatars(),
	})
}

// GetScreen renders the session's current screen.
// @Summary Current screen
// @Description Renders the screen for the session cookie, issuing a new session when none is presented.
// @Tags navigation
// @Produce json
// @Success 200 {object} app.Screen
// @Router /screen [get]
func (h *Handler) GetScreen(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	h.writeScreen(w, sess.State())
}

// PushView opens a view on top of the session history.
// @Summary Open view
// @Description Pushes a view onto the session history and returns the new screen.
// @Tags navigation
// @Produce json
// @Param view path string true "View" Enums(landing, dashboard, playoffs, registration, admin, brady-list, divisional-list, ranking-global)
// @Success 200 {object} app.Screen
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /nav/push/{view} [post]
func (h *Handler) PushView(w http.ResponseWriter, r *http.Request) {
	v, err := nav.ParseView(chi.URLParam(r, "view"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_VIEW", err.Error())
		return
	}
	if h.rejectWhileLoading(w) {
		return
	}
	sess := h.session(w, r)
	h.writeScreen(w, sess.Open(v))
}

// Back returns to the previous view. At the root it is a no-op.
// @Summary Go back
// @Description Pops the session history, never below the landing view, and returns the new screen.
// @Tags navigation
// @Produce json
// @Success 200 {object} app.Screen
// @Failure 409 {object} respond.ErrorResponse
// @Router /nav/back [post]
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	if h.rejectWhileLoading(w) {
		return
	}
	sess := h.session(w, r)
	h.writeScreen(w, sess.Back())
}

// SelectLeague records the chosen league and opens its dashboard.
// @Summary Select league
// @Description Records a registered league as selected and pushes the dashboard view.
// @Tags navigation
// @Produce json
// @Param leagueID path string true "Sleeper league ID"
// @Success 200 {object} app.Screen
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /nav/select/{leagueID} [post]
func (h *Handler) SelectLeague(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	if _, ok := registry.Lookup(leagueID); !ok {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "League "+leagueID+" is not registered")
		return
	}
	if h.rejectWhileLoading(w) {
		return
	}
	sess := h.session(w, r)
	h.writeScreen(w, sess.SelectLeague(leagueID))
}

// GetHistory returns the session's navigation history.
// @Summary Navigation history
// @Description Returns the session history stack, its current view and the selected league.
// @Tags navigation
// @Produce json
// @Success 200 {object} app.State
// @Router /nav/history [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	respond.WritePrivate(w, http.StatusOK, h.session(w, r).State())
}

// rejectWhileLoading refuses navigation while the loading screen is up: it
// offers no actions, so history must not change behind it.
func (h *Handler) rejectWhileLoading(w http.ResponseWriter) bool {
	if !h.identity.Loading() {
		return false
	}
	w.Header().Set("Retry-After", "1")
	respond.WriteError(w, http.StatusConflict, "IDENTITY_LOADING", "Navigation is unavailable while the hub is loading")
	return true
}

func (h *Handler) writeScreen(w http.ResponseWriter, st app.State) {
	respond.WritePrivate(w, http.StatusOK, app.Render(st, h.identity.Loading(), h.identity.Avatars()))
}

// session resolves the request's session, issuing a new one when needed.
// The cookie is set on every response so its expiry slides with activity,
// matching the store's idle TTL.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *app.Session {
	var presented string
	if c, err := r.Cookie(h.cfg.SessionCookie); err == nil {
		presented = c.Value
	}

	id, sess, created := h.sessions.GetOrCreate(presented)
	if created {
		h.logger.Debug("Session created", "sessions", h.sessions.Len())
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}
