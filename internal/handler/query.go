package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rslocke/choreboard/internal/chore"
	"github.com/rslocke/choreboard/internal/model"
	"github.com/rslocke/choreboard/internal/store"
)

// QueryHandler serves the on-demand due-tasks query.
type QueryHandler struct {
	tasks  *store.TaskStore
	logs   *store.LogStore
	logger *slog.Logger
}

func NewQueryHandler(ts *store.TaskStore, ls *store.LogStore, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{tasks: ts, logs: ls, logger: logger}
}

// DueTasks handles GET /api/tasks?email=. Every request re-reads the full
// task and log sets; there is no caching between calls.
func (h *QueryHandler) DueTasks(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email is required"})
		return
	}

	tasks, err := h.tasks.List()
	if err != nil {
		h.logger.Error("list tasks", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list tasks"})
		return
	}
	logs, err := h.logs.List()
	if err != nil {
		h.logger.Error("list logs", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list logs"})
		return
	}

	result := chore.DueTasksForOwner(tasks, logs, email, chore.DateOf(time.Now()))
	if result.DueTasks == nil {
		result.DueTasks = []model.DueStatus{}
	}
	if result.RecentHistory == nil {
		result.RecentHistory = []model.RecentEntry{}
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
