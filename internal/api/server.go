package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/fwl-league/fwl-hub/internal/api/handler"
	"github.com/fwl-league/fwl-hub/internal/app"
	"github.com/fwl-league/fwl-hub/internal/cache"
	"github.com/fwl-league/fwl-hub/internal/config"
	"github.com/fwl-league/fwl-hub/internal/metrics"
)

// Deps are the long-lived services the router serves from.
type Deps struct {
	Config   *config.Config
	Cache    *cache.Cache
	Leagues  handler.LeagueSource
	Identity handler.IdentityState
	Sessions *app.Store
	Metrics  *metrics.Recorder // nil disables /metrics
	Logger   *slog.Logger
}

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(d Deps) *chi.Mux {
	cfg := d.Config
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogMiddleware(logger, d.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5)) // gzip

	// CORS. Session cookies need credentials, so origins must be explicit.
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Cache", "X-Request-Id", "ETag"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(cfg, d.Cache, d.Leagues, d.Identity, d.Sessions, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Registry + league data
		r.Get("/leagues", h.ListLeagues)
		r.Get("/leagues/{leagueID}", h.GetLeague)
		r.Get("/leagues/{leagueID}/dashboard", h.GetDashboard)
		r.Get("/playoffs", h.GetPlayoffs)

		// Identity
		r.Get("/identity", h.GetIdentity)

		// Session navigation
		r.Get("/screen", h.GetScreen)
		r.Route("/nav", func(r chi.Router) {
			r.Get("/history", h.GetHistory)
			r.Post("/back", h.Back)
			r.Post("/push/{view}", h.PushView)
			r.Post("/select/{leagueID}", h.SelectLeague)
		})
	})

	return r
}
