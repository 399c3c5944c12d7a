package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/KenjaminButton/aws-courtvision-ai/internal/engine"
)

// MetricsSource exposes engine counters to the ops surface.
type MetricsSource interface {
	GetMetrics() engine.Metrics
}

// Handler contains dependencies for the ops HTTP endpoints.
type Handler struct {
	metrics MetricsSource
}

// NewHandler creates a new handler.
func NewHandler(metrics MetricsSource) *Handler {
	return &Handler{metrics: metrics}
}

// Router builds the ops router: health and metrics only - the read APIs for
// game state and patterns live in a separate service.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
	}))

	r.Get("/health", h.HealthCheck)
	r.Get("/metrics", h.Metrics)

	return r
}

// HealthCheck returns service health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "play-engine",
	})
}

// Metrics returns current engine counters.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.metrics.GetMetrics())
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
