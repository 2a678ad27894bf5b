// Package leaktest detects goroutines left running by a test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 500 * time.Millisecond
	pollInterval  = 10 * time.Millisecond
	stackBufBytes = 1 << 16
)

// GoroutineChecker compares the goroutine count at creation against a later Check
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test if more than tolerance goroutines are still alive once the settle timeout passes.
// Goroutines that exit during the wait are not counted.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after, ok := waitAtMost(g.before+tolerance, settleTimeout)
	if ok {
		return
	}

	buf := make([]byte, stackBufBytes)
	n := runtime.Stack(buf, true)
	g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)\n%s",
		g.before, after, after-g.before, tolerance, buf[:n])
}

// CheckNoGoroutineLeak runs fn and fails if it leaves any goroutine behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits for the goroutine count to drop to target or fails after timeout
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if current, ok := waitAtMost(target, timeout); !ok {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", current, target)
	}
}

func waitAtMost(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		current := runtime.NumGoroutine()
		if current <= target {
			return current, true
		}
		if time.Now().After(deadline) {
			return current, false
		}
		time.Sleep(pollInterval)
	}
}
