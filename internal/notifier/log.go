package notifier

import (
	"context"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// Log reports alarms through the context logger.
type Log struct{}

// NewLog returns a logging notifier.
func NewLog() *Log {
	return new(Log)
}

// Ring logs that the alarm started ringing.
func (*Log) Ring(ctx context.Context, a *alarm.Alarm) error {
	logger.WarnKV(ctx, "Alarm ringing", "alarm_id", a.ID.String(), "time", a.String())

	return nil
}

// Silence logs that the alarm was dismissed.
func (*Log) Silence(ctx context.Context, a *alarm.Alarm) error {
	logger.InfoKV(ctx, "Alarm silenced", "alarm_id", a.ID.String(), "time", a.String())

	return nil
}

// Close is a no-op.
func (*Log) Close() error {
	return nil
}
