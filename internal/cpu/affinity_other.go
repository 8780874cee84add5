//go:build !linux

package cpu

import "runtime"

// LockWorker locks the calling goroutine to its own OS thread.
// CPU pinning is not available on this platform, so pin is ignored.
func LockWorker(workerID int, pin bool) func() {
	runtime.LockOSThread()

	return func() {
		runtime.UnlockOSThread()
	}
}
