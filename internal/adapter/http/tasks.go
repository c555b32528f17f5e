package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// handleListTasks returns the caller's tasks plus their statistics. An
// optional `status` query parameter filters by lifecycle state;
// unknown values produce HTTP 400.
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var status *domain.TaskStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.TaskStatus(raw)
		if !s.Valid() {
			http.Error(w, "invalid status parameter", http.StatusBadRequest)
			return
		}
		status = &s
	}

	tasks, err := h.svc.UserTasks(r.Context(), userID, status)
	if err != nil {
		h.logger.Error("list tasks error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	stats, err := h.svc.TaskStatistics(r.Context(), userID)
	if err != nil {
		h.logger.Error("task statistics error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"tasks":      tasks,
		"statistics": stats,
	})
}

// handleGenerateTasks triggers on-demand task generation for the
// caller and returns the inserted count together with fresh
// statistics.
func (h *Handler) handleGenerateTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	count, err := h.svc.GenerateTasksForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("generate tasks error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	stats, err := h.svc.TaskStatistics(r.Context(), userID)
	if err != nil {
		h.logger.Error("task statistics error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"generatedTasks": count,
		"statistics":     stats,
	})
}

// handleTaskStatistics returns the caller's trailing-30-day task
// counts.
func (h *Handler) handleTaskStatistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	stats, err := h.svc.TaskStatistics(r.Context(), userID)
	if err != nil {
		h.logger.Error("task statistics error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// statusUpdateRequest is the body of both status-transition endpoints.
type statusUpdateRequest struct {
	Status domain.TaskStatus `json:"status"`
	Note   *string           `json:"note,omitempty"`
}

// handleUpdateTask transitions a single task. A task that does not
// exist, belongs to another user or already reached a terminal state
// results in HTTP 404.
func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	taskID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var req statusUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	updated, err := h.svc.UpdateTaskStatus(r.Context(), taskID, userID, req.Status, req.Note)
	if errors.Is(err, port.ErrInvalidStatus) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("update task error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateCampaignTasks bulk-completes or bulk-dismisses the
// campaign's pending tasks and reports how many rows changed. Zero is
// a normal outcome, not an error.
func (h *Handler) handleUpdateCampaignTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var req statusUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	count, err := h.svc.UpdateCampaignTasks(r.Context(), campaignID, userID, req.Status, req.Note)
	if errors.Is(err, port.ErrInvalidStatus) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("update campaign tasks error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"updated": count})
}
