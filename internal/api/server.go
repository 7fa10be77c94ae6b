// Package api wires the Chi router, middleware stack, and handlers.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/hooprank/hooprank-data/internal/api/handler"
	"github.com/hooprank/hooprank-data/internal/cache"
	"github.com/hooprank/hooprank-data/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes. stats and updater are the read and refresh collaborators; updater
// may be nil when no provider key is configured.
func NewRouter(pool *pgxpool.Pool, appCache *cache.Cache, cfg *config.Config,
	stats handler.StatsReader, updater handler.Updater) *chi.Mux {

	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control", "Authorization"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(pool, appCache, cfg, stats, updater)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Season stats (read side)
		r.Get("/nba/season-stats", h.GetSeasonStats)
		r.Get("/nba/seasons", h.GetAvailableSeasons)

		// Refresh trigger (bearer-guarded). GET kept for cron services
		// that only issue GET requests.
		r.Post("/cron/update-stats", h.TriggerUpdate)
		r.Get("/cron/update-stats", h.TriggerUpdate)
	})

	return r
}
