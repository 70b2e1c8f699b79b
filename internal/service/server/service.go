package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

// service adapts the scheduler to the transport and records who changed what.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// scheduler owns the manager and the notifier boundary.
	scheduler *scheduler.Scheduler
}

// newService creates a service backed by the provided scheduler.
func newService(s *scheduler.Scheduler) *service {
	return &service{
		scheduler: s,
	}
}

// AddAlarm schedules an alarm on behalf of actor.
func (s *service) AddAlarm(ctx context.Context, actor *domain.Actor, hours, minutes int) (*domain.Alarm, error) {
	ctx = logger.WithKV(ctx, "actor", actor.String())

	return s.scheduler.Add(ctx, hours, minutes)
}

// CancelAlarm removes an alarm on behalf of actor, silencing it if it rings.
func (s *service) CancelAlarm(ctx context.Context, actor *domain.Actor, id uuid.UUID) (*domain.Alarm, bool) {
	ctx = logger.WithKV(ctx, "actor", actor.String())

	return s.scheduler.Cancel(ctx, id)
}

// ListAlarms returns the current second of day and the ordered alarms.
func (s *service) ListAlarms(ctx context.Context) (int, []*domain.Alarm) {
	alarms := s.scheduler.Manager().Alarms()

	logger.DebugKV(ctx, "Alarm list requested", "count", len(alarms))

	return s.scheduler.Now(), alarms
}

// NextAlarm returns the upcoming alarm.
func (s *service) NextAlarm(ctx context.Context) (*domain.Alarm, time.Duration, bool) {
	next, left, ok := s.scheduler.Next()

	logger.DebugKV(ctx, "Next alarm requested", "found", ok)

	return next, left, ok
}
