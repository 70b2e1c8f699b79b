package alarm

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// SecondsPerHour is the number of seconds in one clock hour.
	SecondsPerHour = 3600
	// SecondsPerMinute is the number of seconds in one clock minute.
	SecondsPerMinute = 60
	// SecondsPerDay is the length of the same-day scheduling window.
	SecondsPerDay = 24 * SecondsPerHour

	// MaxHours is the largest accepted hour value.
	MaxHours = 23
	// MaxMinutes is the largest accepted minute value.
	MaxMinutes = 59
)

// Actor identifies who performed an action in the system.
type Actor struct {
	// Hostname is the machine name where the action was performed.
	Hostname string
	// Username is the system user who triggered the action.
	Username string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// String renders the actor as username@hostname.
func (a *Actor) String() string {
	if a == nil {
		return "<unknown>"
	}

	return a.Username + "@" + a.Hostname
}

// Alarm is a single same-day wake-up time.
type Alarm struct {
	// ID identifies the alarm for cancellation.
	ID uuid.UUID
	// Hours is the hour of day, 0-23.
	Hours int
	// Minutes is the minute of hour, 0-59.
	Minutes int
	// IsRinging is set once the trigger second has been reached.
	IsRinging bool
	// CreatedAt is when the alarm entered the collection.
	CreatedAt time.Time
}

// TriggerSecond returns the alarm time as seconds since midnight.
func (a *Alarm) TriggerSecond() int {
	return TriggerSecond(a.Hours, a.Minutes)
}

// TimeLeft returns how long until the alarm fires, or zero when its time
// has already passed.
func (a *Alarm) TimeLeft(now int) time.Duration {
	left := a.TriggerSecond() - now
	if left <= 0 {
		return 0
	}

	return time.Duration(left) * time.Second
}

// String renders the alarm time as zero-padded HH:MM.
func (a *Alarm) String() string {
	return FormatClock(a.Hours, a.Minutes)
}

// Clone returns a copy of the alarm to avoid leaking internal references.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// TriggerSecond converts an hour and minute to seconds since midnight.
func TriggerSecond(hours, minutes int) int {
	return hours*SecondsPerHour + minutes*SecondsPerMinute
}

// FormatClock renders hours and minutes as zero-padded HH:MM.
func FormatClock(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// FormatTimeLeft renders a duration as zero-padded HH:MM, dropping seconds.
func FormatTimeLeft(d time.Duration) string {
	total := int(d / time.Second)

	return FormatClock(total/SecondsPerHour, (total%SecondsPerHour)/SecondsPerMinute)
}
