package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/rslocke/choreboard/internal/digest"
	"github.com/rslocke/choreboard/internal/email"
	"github.com/rslocke/choreboard/internal/handler"
	"github.com/rslocke/choreboard/internal/middleware"
	"github.com/rslocke/choreboard/internal/store"
	ws "github.com/rslocke/choreboard/internal/websocket"
)

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	queryH      *handler.QueryHandler
	logH        *handler.LogHandler
	digestH     *handler.DigestHandler
	scheduler   *digest.Scheduler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(db *sql.DB, emailClient *email.Client, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	taskStore := store.NewTaskStore(db)
	logStore := store.NewLogStore(db)

	scheduler := digest.NewScheduler(taskStore, logStore, emailClient, logger.With("component", "digest"))

	return &Server{
		db:          db,
		hub:         hub,
		queryH:      handler.NewQueryHandler(taskStore, logStore, logger.With("component", "query")),
		logH:        handler.NewLogHandler(logStore, hub, logger.With("component", "log")),
		digestH:     handler.NewDigestHandler(scheduler, logger.With("component", "digest_handler")),
		scheduler:   scheduler,
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// Scheduler returns the digest scheduler so main can start and stop it.
func (s *Server) Scheduler() *digest.Scheduler {
	return s.scheduler
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /api/tasks", s.queryH.DueTasks)
	mux.HandleFunc("POST /api/log", s.rateLimitedHandler(s.logH.Log))
	mux.HandleFunc("POST /api/uncheck", s.rateLimitedHandler(s.logH.Uncheck))
	mux.HandleFunc("POST /api/digest/run", s.rateLimitedHandler(s.digestH.Run))
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.logger.With("component", "websocket")))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	mux.HandleFunc("GET /", s.indexHandler)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, "web/static/index.html")
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 30, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
