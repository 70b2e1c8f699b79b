package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/alarm-clock/internal/clock"
	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/notifier"
)

// DefaultInterval is the alarm check period.
const DefaultInterval = time.Second

// Scheduler checks alarms on every tick and forwards transitions to the notifier.
type Scheduler struct {
	// manager owns the alarms.
	manager *alarm.Manager
	// source supplies the current time.
	source clock.TimeSource
	// notifier is rung once per fired alarm.
	notifier notifier.Notifier
	// interval is the polling period for Run.
	interval time.Duration

	// mu serializes checks with adds and cancels so that a notifier call
	// always completes before the next state change is applied.
	mu sync.Mutex
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval sets the polling period used by Run.
func WithInterval(interval time.Duration) Option {
	return func(s *Scheduler) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// New wires a scheduler around the manager.
func New(manager *alarm.Manager, source clock.TimeSource, n notifier.Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		manager:  manager,
		source:   source,
		notifier: n,
		interval: DefaultInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Manager returns the underlying alarm manager.
func (s *Scheduler) Manager() *alarm.Manager {
	return s.manager
}

// Now returns the current time as seconds since midnight.
func (s *Scheduler) Now() int {
	return clock.SecondsSinceMidnight(s.source.Now())
}

// Run checks alarms once right away and then on every interval until ctx
// is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "scheduler")

	logger.InfoKV(ctx, "Alarm scheduler started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Alarm scheduler stopped")

			return nil
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick performs one check at the current time and rings every newly fired
// alarm. It returns the fired alarms.
func (s *Scheduler) Tick(ctx context.Context) []*alarm.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	fired := s.manager.CheckAlarms(now)

	for _, a := range fired {
		logger.InfoKV(ctx, "Alarm fired", "alarm_id", a.ID.String(), "time", a.String(), "now_second", now)

		if err := s.notifier.Ring(ctx, a); err != nil {
			logger.ErrorKV(ctx, "Notifier failed to ring", "alarm_id", a.ID.String(), "error", err)
		}
	}

	return fired
}

// Add schedules a new alarm.
func (s *Scheduler) Add(ctx context.Context, hours, minutes int) (*alarm.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.manager.AddAlarm(hours, minutes)
	if err != nil {
		logger.WarnKV(ctx, "Alarm rejected", "hours", hours, "minutes", minutes, "error", err)

		return nil, err
	}

	logger.InfoKV(ctx, "Alarm added", "alarm_id", a.ID.String(), "time", a.String())

	return a, nil
}

// Cancel removes the alarm and silences the notifier if it was ringing.
// It reports whether an alarm was removed; unknown IDs are a no-op.
//
// A cancel that arrives while a check is ringing waits for it, so the
// notifier is never asked to ring an alarm that was already removed.
func (s *Scheduler) Cancel(ctx context.Context, id uuid.UUID) (*alarm.Alarm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.manager.CancelAlarm(id)
	if !ok {
		logger.DebugKV(ctx, "Cancel ignored, alarm not found", "alarm_id", id.String())

		return nil, false
	}

	logger.InfoKV(ctx, "Alarm cancelled",
		"alarm_id", removed.ID.String(), "time", removed.String(), "was_ringing", removed.IsRinging)

	if removed.IsRinging {
		if err := s.notifier.Silence(ctx, removed); err != nil {
			logger.ErrorKV(ctx, "Notifier failed to silence", "alarm_id", removed.ID.String(), "error", err)
		}
	}

	return removed, true
}

// Next returns the upcoming alarm relative to the current time and how long
// until it rings.
func (s *Scheduler) Next() (*alarm.Alarm, time.Duration, bool) {
	now := s.Now()

	next, ok := s.manager.NextAlarm(now)
	if !ok {
		return nil, 0, false
	}

	return next, next.TimeLeft(now), true
}
