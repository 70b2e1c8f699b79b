package notifier

import (
	"context"
	"errors"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// Multi forwards every call to each wrapped notifier.
// A failing notifier does not prevent the others from being called.
type Multi struct {
	// notifiers receive every call in order.
	notifiers []Notifier
}

// NewMulti returns a notifier fanning out to notifiers.
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

// Ring rings every notifier.
func (m *Multi) Ring(ctx context.Context, a *alarm.Alarm) error {
	var errs []error

	for _, n := range m.notifiers {
		errs = append(errs, n.Ring(ctx, a))
	}

	return errors.Join(errs...)
}

// Silence silences every notifier.
func (m *Multi) Silence(ctx context.Context, a *alarm.Alarm) error {
	var errs []error

	for _, n := range m.notifiers {
		errs = append(errs, n.Silence(ctx, a))
	}

	return errors.Join(errs...)
}

// Close closes every notifier.
func (m *Multi) Close() error {
	var errs []error

	for _, n := range m.notifiers {
		errs = append(errs, n.Close())
	}

	return errors.Join(errs...)
}
