package notifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// Notifier produces feedback for ringing alarms.
type Notifier interface {
	// Ring starts signaling for the alarm.
	Ring(ctx context.Context, a *alarm.Alarm) error
	// Silence stops signaling for the alarm. Unknown alarms are ignored.
	Silence(ctx context.Context, a *alarm.Alarm) error
	// Close stops every signal and releases resources.
	Close() error
}

// errUnknownKind is returned by FromConfig for unsupported notifier names.
var errUnknownKind = errors.New("unknown notifier kind")

// FromConfig builds the notifiers listed in cfg, fanned out through Multi.
// Bell output goes to bellOutput, or stdout when it is nil.
//
//nolint:ireturn // Callers only need the behaviour.
func FromConfig(cfg *config.Config, bellOutput io.Writer) (Notifier, error) {
	if bellOutput == nil {
		bellOutput = os.Stdout
	}

	notifiers := make([]Notifier, 0, len(cfg.Notifiers))

	for _, kind := range cfg.Notifiers {
		switch kind {
		case config.NotifierLog:
			notifiers = append(notifiers, NewLog())
		case config.NotifierBell:
			notifiers = append(notifiers, NewBell(bellOutput, DefaultBellInterval))
		case config.NotifierTone:
			notifiers = append(notifiers, NewTone(cfg.Tone.FrequencyHz, cfg.Tone.Volume))
		default:
			return nil, fmt.Errorf("%w: %q", errUnknownKind, kind)
		}
	}

	return NewMulti(notifiers...), nil
}

// DefaultBellInterval is how often the terminal bell repeats while ringing.
const DefaultBellInterval = 2 * time.Second
