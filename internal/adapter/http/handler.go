package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"adpilot/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter
// for HTTP. It holds an Optimizer to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router
// for convenient method handling.
//
// Authentication is out of scope for this service: the caller identity
// arrives as an X-User-ID header set by the gateway in front of it.
type Handler struct {
	svc    port.Optimizer
	logger *slog.Logger
	router chi.Router

	// sweepSecret guards the sweep trigger endpoint. Empty disables the
	// check (local development).
	sweepSecret string
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.Optimizer, logger *slog.Logger, sweepSecret string) *Handler {
	h := &Handler{svc: svc, logger: logger, sweepSecret: sweepSecret}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tasks", h.handleListTasks)
		r.Post("/tasks/generate", h.handleGenerateTasks)
		r.Get("/tasks/statistics", h.handleTaskStatistics)
		r.Patch("/tasks/{id}", h.handleUpdateTask)
		r.Patch("/campaigns/{id}/tasks", h.handleUpdateCampaignTasks)
		r.Get("/cron/weekly-optimization", h.handleSweepHealth)
		r.Post("/cron/weekly-optimization", h.handleWeeklySweep)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// userID extracts the caller's user id from the X-User-ID header. A
// missing or malformed header writes HTTP 400 and returns false.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		http.Error(w, "missing X-User-ID header", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid X-User-ID header", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeJSON encodes v into the response. Encoding should rarely fail;
// errors are logged and the response left as is.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
