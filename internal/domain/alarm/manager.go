package alarm

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns the ordered alarm collection.
//
// Alarms are kept in ascending TriggerSecond order, ties in insertion order.
// Every method is safe for concurrent use; all of them hold one mutex, so a
// check never observes a half-applied add or cancel. Values handed out are
// clones and mutating them has no effect on the collection.
type Manager struct {
	// alarms is the ordered collection.
	alarms []*Alarm
	// wallClock stamps CreatedAt on new alarms.
	wallClock func() time.Time
	// mu protects alarms.
	mu sync.Mutex
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithWallClock overrides the function used to stamp CreatedAt.
func WithWallClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.wallClock = now
		}
	}
}

// NewManager returns a manager with an empty collection.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		wallClock: time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// AddAlarm validates and inserts a new alarm, then restores the ordering.
// Invalid input returns *InvalidTimeError and leaves the collection as is.
func (m *Manager) AddAlarm(hours, minutes int) (*Alarm, error) {
	if err := ValidateTime(hours, minutes); err != nil {
		return nil, err
	}

	a := &Alarm{
		ID:        uuid.New(),
		Hours:     hours,
		Minutes:   minutes,
		CreatedAt: m.wallClock(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.alarms = append(m.alarms, a)
	slices.SortStableFunc(m.alarms, func(x, y *Alarm) int {
		return x.TriggerSecond() - y.TriggerSecond()
	})

	return a.Clone(), nil
}

// CancelAlarm removes the alarm with the given ID whether or not it is
// ringing. It returns the removed alarm as it was at removal time, so the
// caller can silence a ringing one. An unknown ID is a no-op that returns
// false.
func (m *Manager) CancelAlarm(id uuid.UUID) (*Alarm, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := slices.IndexFunc(m.alarms, func(a *Alarm) bool {
		return a.ID == id
	})
	if idx < 0 {
		return nil, false
	}

	removed := m.alarms[idx]
	m.alarms = slices.Delete(m.alarms, idx, idx+1)

	return removed.Clone(), true
}

// CheckAlarms marks every scheduled alarm whose trigger second is at or
// before now as ringing and returns exactly those alarms, in collection
// order. Alarms already ringing are not returned again.
//
// now is seconds since midnight. The model has no notion of days, so if
// polling stops across midnight, alarms meant for the next morning with a
// clock value below the last seen now fire on the next check.
func (m *Manager) CheckAlarms(now int) []*Alarm {
	m.mu.Lock()
	defer m.mu.Unlock()

	var fired []*Alarm

	for _, a := range m.alarms {
		if a.IsRinging || a.TriggerSecond() > now {
			continue
		}

		a.IsRinging = true
		fired = append(fired, a.Clone())
	}

	return fired
}

// NextAlarm returns the scheduled alarm closest in the future relative to
// now. Ringing alarms and alarms at or before now are skipped. Equal times
// resolve to the earliest inserted one.
func (m *Manager) NextAlarm(now int) (*Alarm, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var next *Alarm

	for _, a := range m.alarms {
		if a.IsRinging || a.TriggerSecond() <= now {
			continue
		}

		if next == nil || a.TriggerSecond() < next.TriggerSecond() {
			next = a
		}
	}

	if next == nil {
		return nil, false
	}

	return next.Clone(), true
}

// Alarms returns a snapshot of the collection in order.
func (m *Manager) Alarms() []*Alarm {
	m.mu.Lock()
	defer m.mu.Unlock()

	return cloneAll(m.alarms, nil)
}

// Ringing returns the ringing subset of the collection in order.
func (m *Manager) Ringing() []*Alarm {
	m.mu.Lock()
	defer m.mu.Unlock()

	return cloneAll(m.alarms, func(a *Alarm) bool {
		return a.IsRinging
	})
}

// Len returns the number of alarms in the collection.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.alarms)
}

// cloneAll copies the alarms accepted by keep, or all of them when keep is nil.
func cloneAll(alarms []*Alarm, keep func(*Alarm) bool) []*Alarm {
	result := make([]*Alarm, 0, len(alarms))

	for _, a := range alarms {
		if keep != nil && !keep(a) {
			continue
		}

		result = append(result, a.Clone())
	}

	return result
}
