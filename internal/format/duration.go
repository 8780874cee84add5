package format

import (
	"fmt"
	"time"
)

// TimestampLayout renders local date and time with up to nanosecond precision
// and no zone, e.g. 2026-10-19T14:03:07.512034871.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatElapsedSeconds renders d in seconds with seven decimals.
func FormatElapsedSeconds(d time.Duration) string {
	return fmt.Sprintf("%.7f", float64(d.Nanoseconds())*0.000_000_001)
}

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
