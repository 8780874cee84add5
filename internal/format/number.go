package format

import "fmt"

// FormatResult renders an aggregate result with ten decimals.
func FormatResult(v float64) string {
	return fmt.Sprintf("%.10f", v)
}

// FormatPartial renders a worker's partial result with fourteen decimals.
func FormatPartial(v float64) string {
	return fmt.Sprintf("%.14f", v)
}

// FormatCPUSeconds renders processor time with three decimals.
func FormatCPUSeconds(seconds float64) string {
	return fmt.Sprintf("%.3f", seconds)
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
