package roster

import (
	"fmt"
	"strconv"
	"strings"
)

// extendedShiftThresholdHours is the span at which a shift is treated as
// extended-duration and subject to the stricter consecutive-day rules.
const extendedShiftThresholdHours = 10.0

// ParseClock parses an "HH:MM" clock time into minutes since midnight
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", clock)
	}

	return hours*60 + minutes, nil
}

// ShiftHours returns the gross span of a shift in fractional hours.
// Start and end are minutes since midnight; an end at or before the start
// means the shift wraps past midnight.
func ShiftHours(start, end int) float64 {
	var minutes int
	if end > start {
		minutes = end - start
	} else {
		minutes = (24*60 - start) + end
	}
	return float64(minutes) / 60.0
}

// NetShiftHours returns the worked hours of a shift: gross span minus break
func NetShiftHours(start, end, breakMinutes int) float64 {
	return ShiftHours(start, end) - float64(breakMinutes)/60.0
}

// IsExtendedShift reports whether a shift's gross span reaches the
// extended-duration threshold.
func IsExtendedShift(start, end int) bool {
	return ShiftHours(start, end) >= extendedShiftThresholdHours
}

// Overtime returns the hours worked beyond the employee's contract day,
// never negative.
func Overtime(workedHours, contractHours float64) float64 {
	if workedHours <= contractHours {
		return 0
	}
	return workedHours - contractHours
}
