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
	"github.com/rslocke/choreboard/internal/websocket"
)

// LogHandler serves the completion-log mutations: logging a chore as done
// and unchecking a previously logged completion.
type LogHandler struct {
	logs   *store.LogStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewLogHandler(ls *store.LogStore, hub *websocket.Hub, logger *slog.Logger) *LogHandler {
	return &LogHandler{logs: ls, hub: hub, logger: logger}
}

func (h *LogHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

type logRequest struct {
	Email    string `json:"email"`
	TaskName string `json:"task_name"`
	RoomName string `json:"room_name"`
	Date     string `json:"date"`
}

// Log handles POST /api/log. The date defaults to today when omitted.
func (h *LogHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.TaskName = strings.TrimSpace(req.TaskName)
	if req.Email == "" || req.TaskName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email and task_name are required"})
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format(time.DateOnly)
	}

	entry := model.LogEntry{
		Task:        req.TaskName,
		Room:        req.RoomName,
		Date:        req.Date,
		CompletedBy: req.Email,
	}
	if err := h.logs.Append(entry); err != nil {
		h.logger.Error("append log", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to log completion"})
		return
	}

	h.broadcast(websocket.NewMessage("log", "logged", req.TaskName, req.RoomName, req.Date))

	writeJSON(w, http.StatusCreated, map[string]string{"status": "logged"})
}

// Uncheck handles POST /api/uncheck. When duplicate rows match, the
// highest-position one is removed; zero matches is a 404.
func (h *LogHandler) Uncheck(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.Date == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date is required"})
		return
	}

	entries, err := h.logs.List()
	if err != nil {
		h.logger.Error("list logs", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list logs"})
		return
	}

	pos, found := chore.LastMatchPosition(entries, req.TaskName, req.RoomName, req.Date, req.Email)
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "log entry not found"})
		return
	}

	if err := h.logs.DeleteAt(pos); err != nil {
		h.logger.Error("delete log", "position", pos, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete log entry"})
		return
	}

	h.broadcast(websocket.NewMessage("log", "unchecked", req.TaskName, req.RoomName, req.Date))

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
