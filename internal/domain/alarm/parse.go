package alarm

import (
	"strconv"
	"strings"
)

// ParseTime parses "H:MM" or "HH:MM" into hours and minutes.
// Hours take one or two digits and minutes exactly two; signs, extra
// digits and out-of-range values yield *InvalidTimeError.
func ParseTime(s string) (int, int, error) {
	input := strings.TrimSpace(s)
	invalid := &InvalidTimeError{Input: s}

	hoursPart, minutesPart, ok := strings.Cut(input, ":")
	if !ok || !isDigits(hoursPart, 1, 2) || !isDigits(minutesPart, 2, 2) {
		return 0, 0, invalid
	}

	hours, err := strconv.Atoi(hoursPart)
	if err != nil {
		return 0, 0, invalid
	}

	minutes, err := strconv.Atoi(minutesPart)
	if err != nil {
		return 0, 0, invalid
	}

	if ValidateTime(hours, minutes) != nil {
		return 0, 0, invalid
	}

	return hours, minutes, nil
}

// isDigits reports whether s is between minLen and maxLen ASCII digits.
func isDigits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
