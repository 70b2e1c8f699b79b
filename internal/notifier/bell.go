package notifier

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// bellCharacter makes most terminals beep or flash.
const bellCharacter = "\a"

// Bell rings the terminal bell repeatedly while an alarm is ringing.
type Bell struct {
	// out receives the bell characters and messages.
	out io.Writer
	// interval is the delay between repeated bells.
	interval time.Duration
	// stops holds the stop function of every ringing alarm.
	stops map[uuid.UUID]context.CancelFunc
	// wg tracks the ringing goroutines.
	wg sync.WaitGroup
	// mu protects stops and writes to out.
	mu sync.Mutex
}

// NewBell returns a bell notifier writing to out.
func NewBell(out io.Writer, interval time.Duration) *Bell {
	if interval <= 0 {
		interval = DefaultBellInterval
	}

	return &Bell{
		out:      out,
		interval: interval,
		stops:    make(map[uuid.UUID]context.CancelFunc),
	}
}

// Ring writes a bell right away and keeps repeating it until Silence.
func (b *Bell) Ring(ctx context.Context, a *alarm.Alarm) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.stops[a.ID]; ok {
		return nil
	}

	if err := b.writeLocked(a); err != nil {
		return err
	}

	// The loop outlives the caller's context; only Silence or Close stop it.
	loopCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	b.stops[a.ID] = stop

	b.wg.Add(1)

	go b.loop(loopCtx, a.Clone())

	return nil
}

// Silence stops the repeating bell for the alarm.
func (b *Bell) Silence(_ context.Context, a *alarm.Alarm) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if stop, ok := b.stops[a.ID]; ok {
		stop()
		delete(b.stops, a.ID)
	}

	return nil
}

// Close stops every repeating bell and waits for them to exit.
func (b *Bell) Close() error {
	b.mu.Lock()

	for id, stop := range b.stops {
		stop()
		delete(b.stops, id)
	}

	b.mu.Unlock()
	b.wg.Wait()

	return nil
}

// loop repeats the bell every interval until ctx is canceled.
func (b *Bell) loop(ctx context.Context, a *alarm.Alarm) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.mu.Lock()
			// A Silence racing with the tick wins.
			if ctx.Err() == nil {
				if err := b.writeLocked(a); err != nil {
					logger.ErrorKV(ctx, "Bell write failed", "alarm_id", a.ID.String(), "error", err)
				}
			}
			b.mu.Unlock()
		}
	}
}

// writeLocked emits one bell line. Callers hold b.mu.
func (b *Bell) writeLocked(a *alarm.Alarm) error {
	if _, err := fmt.Fprintf(b.out, "%sAlarm %s is ringing\n", bellCharacter, a.String()); err != nil {
		return fmt.Errorf("write bell: %w", err)
	}

	return nil
}
