package clock

import (
	"sync"
	"time"
)

// TimeSource supplies the current wall-clock time.
type TimeSource interface {
	Now() time.Time
}

// System reads the local wall clock.
type System struct{}

// Now returns time.Now in the local timezone.
func (System) Now() time.Time {
	return time.Now()
}

// SecondsSinceMidnight returns the seconds elapsed since local midnight of t.
func SecondsSinceMidnight(t time.Time) int {
	hours, minutes, seconds := t.Clock()

	return hours*3600 + minutes*60 + seconds
}

// Manual is a TimeSource whose time only moves when told to.
type Manual struct {
	// now is the current reading.
	now time.Time
	// mu protects now.
	mu sync.Mutex
}

// NewManual returns a Manual clock set to start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current reading.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)
}
