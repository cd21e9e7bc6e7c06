package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type SystemHandler struct {
	db        *pgxpool.Pool
	collector *metrics.Collector
	enabled   bool
}

func NewSystemHandler(db *pgxpool.Pool, collector *metrics.Collector, metricsEnabled bool) *SystemHandler {
	return &SystemHandler{db: db, collector: collector, enabled: metricsEnabled}
}

func (h *SystemHandler) Register(r chi.Router) {
	r.Get("/healthz", h.health)
	r.Get("/readyz", h.ready)
	if h.enabled {
		r.Get("/metrics", h.metrics)
	}
}

func (h *SystemHandler) ready(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "ready"}, middleware.GetRequestID(r.Context()))
}

func (h *SystemHandler) health(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.db.Ping(r.Context()); err != nil {
		api.Fail(w, http.StatusServiceUnavailable, "unhealthy", "database unreachable", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "ok"}, requestID)
}

func (h *SystemHandler) metrics(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.collector.Snapshot(), middleware.GetRequestID(r.Context()))
}
