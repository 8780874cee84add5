//go:build linux

package cpu

import (
	"time"

	"golang.org/x/sys/unix"
)

// ThreadTimeSupported reports whether ThreadTime returns real readings.
func ThreadTimeSupported() bool {
	var ts unix.Timespec
	return unix.ClockGettime(unix.CLOCK_THREAD_CPUTIME_ID, &ts) == nil
}

// ThreadTime returns the CPU time consumed so far by the calling OS thread.
// The caller must be locked to its thread (see LockWorker) for consecutive
// readings to describe the same thread. Returns zero on error.
func ThreadTime() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_THREAD_CPUTIME_ID, &ts); err != nil {
		return 0
	}
	return time.Duration(ts.Nano())
}

// ProcessTime returns the user plus system CPU time consumed by the whole
// process. Returns zero on error.
func ProcessTime() time.Duration {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
}
