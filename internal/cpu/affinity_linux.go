//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCore pins the current OS thread to a specific CPU core.
// Must be called after runtime.LockOSThread().
func pinToCore(cpuID int) error {
	numCPU := runtime.NumCPU()
	if cpuID < 0 || cpuID >= numCPU {
		cpuID = cpuID % numCPU
	}

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpuID)

	return unix.SchedSetaffinity(0, &mask) // 0 = current thread
}

// LockWorker locks the calling goroutine to its own OS thread and, when pin
// is set, restricts that thread to core workerID modulo the CPU count.
// Pinning failures are ignored. Returns a cleanup function that should be
// deferred.
//
// A pinned thread is never handed back to the scheduler: its cleanup keeps the
// lock so the runtime discards the thread when the goroutine exits.
func LockWorker(workerID int, pin bool) func() {
	runtime.LockOSThread()
	if pin && pinToCore(workerID) == nil {
		return func() {}
	}

	return func() {
		runtime.UnlockOSThread()
	}
}
