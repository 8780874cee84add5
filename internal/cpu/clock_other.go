//go:build !linux

package cpu

import "time"

// ThreadTimeSupported reports whether ThreadTime returns real readings.
func ThreadTimeSupported() bool { return false }

// ThreadTime is unsupported on this platform and always returns zero.
func ThreadTime() time.Duration { return 0 }

// ProcessTime is unsupported on this platform and always returns zero.
func ProcessTime() time.Duration { return 0 }
