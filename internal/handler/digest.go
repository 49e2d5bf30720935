package handler

import (
	"log/slog"
	"net/http"

	"github.com/rslocke/choreboard/internal/digest"
)

// DigestHandler exposes the digest pipeline for manual runs.
type DigestHandler struct {
	scheduler *digest.Scheduler
	logger    *slog.Logger
}

func NewDigestHandler(s *digest.Scheduler, logger *slog.Logger) *DigestHandler {
	return &DigestHandler{scheduler: s, logger: logger}
}

// Run handles POST /api/digest/run: the same zero-argument entry point the
// weekly trigger uses, for testing a digest without waiting for Monday.
func (h *DigestHandler) Run(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("manual digest run requested", "remote", r.RemoteAddr)
	h.scheduler.Run()
	writeJSON(w, http.StatusOK, map[string]string{"status": "digest run complete"})
}
