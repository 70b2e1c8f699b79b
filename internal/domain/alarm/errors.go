package alarm

import (
	"errors"
	"fmt"
)

// ErrInvalidTime matches every *InvalidTimeError via errors.Is.
var ErrInvalidTime = errors.New("invalid alarm time")

// InvalidTimeError is returned when an alarm time is out of range or is not
// made of integers.
type InvalidTimeError struct {
	// Input is the raw text that failed to parse, empty for numeric input.
	Input string
	// Hours is the rejected hour value.
	Hours int
	// Minutes is the rejected minute value.
	Minutes int
}

// Error implements the error interface.
func (e *InvalidTimeError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid alarm time %q: expected HH:MM with hours 0-%d and minutes 0-%d",
			e.Input, MaxHours, MaxMinutes)
	}

	return fmt.Sprintf("invalid alarm time %d:%d: hours must be 0-%d and minutes 0-%d",
		e.Hours, e.Minutes, MaxHours, MaxMinutes)
}

// Is reports whether target is ErrInvalidTime.
func (e *InvalidTimeError) Is(target error) bool {
	return target == ErrInvalidTime
}

// ValidateTime checks that hours and minutes fall in the clock range.
func ValidateTime(hours, minutes int) error {
	if hours < 0 || hours > MaxHours || minutes < 0 || minutes > MaxMinutes {
		return &InvalidTimeError{
			Hours:   hours,
			Minutes: minutes,
		}
	}

	return nil
}
