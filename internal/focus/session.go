package focus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Session couples a Timer to a real-time tick source for the lifetime
// of one focus sitting. The timer state is discarded with the session;
// nothing is persisted across runs.
type Session struct {
	timer  *Timer
	logger *zap.Logger
}

// NewSession builds a session around a fresh timer.
func NewSession(cfg Config, logger *zap.Logger) *Session {
	return &Session{timer: NewTimer(cfg), logger: logger}
}

// Timer exposes the underlying state machine for pre-run adjustments.
func (s *Session) Timer() *Timer {
	return s.timer
}

// Run starts the timer and ticks it once per interval, invoking observe
// after every tick, until the session completes or ctx is cancelled.
// Cancellation pauses the timer and stops the ticker before returning.
// The final snapshot is returned either way.
func (s *Session) Run(ctx context.Context, interval time.Duration, observe func(Snapshot)) Snapshot {
	cfg := s.timer.Config()
	s.logger.Info("Focus session started",
		zap.Int("work_minutes", cfg.WorkMinutes),
		zap.Int("break_minutes", cfg.BreakMinutes),
		zap.Int("rounds", cfg.TotalRounds))

	s.timer.Start()

	done := make(chan struct{})
	var once sync.Once
	stop := Repeat(ctx, interval, func() {
		s.timer.Tick()
		snap := s.timer.Snapshot()
		if observe != nil {
			observe(snap)
		}
		if snap.Done() {
			once.Do(func() { close(done) })
		}
	})
	defer stop()

	select {
	case <-done:
		s.logger.Info("Focus session completed")
	case <-ctx.Done():
		s.timer.Pause()
		s.logger.Info("Focus session cancelled")
	}
	return s.timer.Snapshot()
}
