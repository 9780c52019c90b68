// Package api provides the local HTTP server for bhava.
// It exposes the progress engine and the content catalog as JSON.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bhava-app/bhava/internal/app/progress"
	"github.com/bhava-app/bhava/internal/health"
	"github.com/bhava-app/bhava/internal/infra/remote"
)

// StatsFunc fetches backend-wide counts.
type StatsFunc func(ctx context.Context) (remote.Stats, error)

// Server is the bhava HTTP API server.
type Server struct {
	tracker        *progress.Tracker
	validate       *validator.Validate
	health         *health.Checker // nil if not set
	stats          StatsFunc       // nil when sync is disabled
	metricsEnabled bool
}

// NewServer creates a new API server around tracker.
func NewServer(tracker *progress.Tracker) *Server {
	return &Server{tracker: tracker, validate: validator.New()}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealth sets the checker reported by /health.
func (s *Server) SetHealth(c *health.Checker) { s.health = c }

// SetStats sets the backend stats source.
func (s *Server) SetStats(fn StatsFunc) { s.stats = fn }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		// Progress
		r.Get("/progress", s.handleProgress)
		r.Get("/summary", s.handleSummary)
		r.Post("/checkins", s.handleCheckIn)
		r.Post("/crisis", s.handleCrisis)
		r.Put("/region", s.handleRegion)
		r.Get("/stats", s.handleStats)

		// Catalog
		r.Get("/badges", s.handleBadges)
		r.Get("/emotions", s.handleEmotions)
		r.Get("/emotions/{id}/actions", s.handleActions)
		r.Get("/tags", s.handleTags)
		r.Get("/regions", s.handleRegions)
		r.Get("/regions/{id}", s.handleRegionResources)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
		return
	}
	status, code := "ok", http.StatusOK
	if !s.health.IsHealthy() {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": s.health.Statuses(),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for a local web front end.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
