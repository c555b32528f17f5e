package httpadapter

import (
	"net/http"
	"time"

	"log/slog"
)

// handleWeeklySweep triggers the whole-system generation sweep followed
// by the retention cleanup. When a sweep secret is configured the
// request must carry it as a bearer token; external schedulers call
// this endpoint on their own cadence.
func (h *Handler) handleWeeklySweep(w http.ResponseWriter, r *http.Request) {
	if h.sweepSecret != "" && r.Header.Get("Authorization") != "Bearer "+h.sweepSecret {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.svc.GenerateWeeklyTasks(r.Context())
	if err != nil {
		h.logger.Error("weekly sweep error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	cleaned, err := h.svc.CleanupOldTasks(r.Context())
	if err != nil {
		h.logger.Error("cleanup error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"timestamp":    time.Now().UTC(),
		"totalUsers":   result.TotalUsers,
		"totalTasks":   result.TotalTasks,
		"cleanedTasks": cleaned,
		"userTasks":    result.UserTasks,
		"failed":       result.Failed,
	})
}

// handleSweepHealth is a liveness probe for the sweep endpoint.
func (h *Handler) handleSweepHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"service":   "weekly-optimization-sweep",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
