package cpu

import (
	"math"
	"runtime"
	"testing"
	"time"
)

func burn(d time.Duration) float64 {
	x := 0.0
	deadline := time.Now().Add(d)
	for i := 0; time.Now().Before(deadline); i++ {
		x += math.Sqrt(float64(i))
	}
	return x
}

func TestThreadTime_AdvancesWhileBusy(t *testing.T) {
	if !ThreadTimeSupported() {
		if got := ThreadTime(); got != 0 {
			t.Errorf("unsupported ThreadTime() = %v, want 0", got)
		}
		t.Skip("thread CPU clock unavailable on this platform")
	}

	unlock := LockWorker(0, false)
	defer unlock()

	before := ThreadTime()
	_ = burn(50 * time.Millisecond)
	after := ThreadTime()

	if after <= before {
		t.Errorf("ThreadTime did not advance: before=%v after=%v", before, after)
	}
}

func TestProcessTime_NonNegative(t *testing.T) {
	t.Parallel()
	if got := ProcessTime(); got < 0 {
		t.Errorf("ProcessTime() = %v, want >= 0", got)
	}
}

func TestLockWorker_PinOutOfRangeDoesNotPanic(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		unlock := LockWorker(runtime.NumCPU()+3, true)
		unlock()
	}()
	<-done
}
