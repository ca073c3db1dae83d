package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultTimeout bounds how long Check waits for goroutines to exit
const DefaultTimeout = time.Second

// GoroutineChecker detects goroutines left running by the code under test
type GoroutineChecker struct {
	before  int
	timeout time.Duration
	t       testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	return &GoroutineChecker{
		before:  runtime.NumGoroutine(),
		timeout: DefaultTimeout,
		t:       t,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// once the timeout has passed. Stopped components usually exit within a few
// scheduler ticks, so it polls instead of sleeping a fixed amount.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, g.timeout)
	if leaked := after - g.before; leaked > tolerance {
		buf := make([]byte, 1<<16)
		n := runtime.Stack(buf, true)
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)\n%s",
			g.before, after, leaked, tolerance, buf[:n])
	}
}

// CheckNoGoroutineLeak runs fn and checks that it left nothing running
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until the goroutine count drops to target or the timeout passes
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(5 * time.Millisecond)
	}
}
