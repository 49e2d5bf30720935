package digest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rslocke/choreboard/internal/chore"
	"github.com/rslocke/choreboard/internal/email"
	"github.com/rslocke/choreboard/internal/store"
)

const (
	digestWeekday = time.Monday
	digestHour    = 8
)

// Scheduler sends the weekly chores digest. It ticks once a minute and runs
// the digest pipeline when the send window opens, at most once per day.
type Scheduler struct {
	mu       sync.Mutex
	tasks    *store.TaskStore
	logs     *store.LogStore
	mailer   *email.Client
	logger   *slog.Logger
	interval time.Duration
	sentFor  string // date of the last send, YYYY-MM-DD
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewScheduler creates a digest scheduler over the given stores and mailer.
func NewScheduler(tasks *store.TaskStore, logs *store.LogStore, mailer *email.Client, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		tasks:    tasks,
		logs:     logs,
		mailer:   mailer,
		logger:   logger,
		interval: 60 * time.Second,
	}
}

// Start begins the scheduler loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick(time.Now())
			}
		}
	}()
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (s *Scheduler) tick(now time.Time) {
	if now.Weekday() != digestWeekday || now.Hour() != digestHour {
		return
	}

	today := now.Format(time.DateOnly)
	s.mu.Lock()
	alreadySent := s.sentFor == today
	if !alreadySent {
		s.sentFor = today
	}
	s.mu.Unlock()
	if alreadySent {
		return
	}

	s.Run()
}

// Run executes one full digest pass: re-read all tasks and logs, build the
// per-owner digest, and send one email per owner. A failed send is logged
// and skipped so one bad address cannot block the other owners' digests.
func (s *Scheduler) Run() {
	s.logger.Info("running weekly digest")

	tasks, err := s.tasks.List()
	if err != nil {
		s.logger.Error("digest: list tasks", "error", err)
		return
	}
	logs, err := s.logs.List()
	if err != nil {
		s.logger.Error("digest: list logs", "error", err)
		return
	}

	today := chore.DateOf(time.Now())
	byOwner := chore.BuildDigest(tasks, logs, today)

	sent := 0
	for owner, rooms := range byOwner {
		if err := s.mailer.SendDigest(owner, rooms); err != nil {
			s.logger.Error("digest: send failed", "owner", owner, "error", err)
			continue
		}
		s.logger.Info("digest sent", "owner", owner, "rooms", len(rooms))
		sent++
	}

	s.logger.Info("weekly digest complete", "owners", len(byOwner), "sent", sent)
}
