package region

import (
	"testing"
	"time"
)

func TestThrottleIdempotentWithinInterval(t *testing.T) {
	th := NewThrottle(30)
	if !th.ShouldRenderNow() {
		t.Fatal("first call should always succeed")
	}
	if th.ShouldRenderNow() {
		t.Fatal("second call within min_interval should return false")
	}
}

func TestThrottleAllowsAfterInterval(t *testing.T) {
	th := NewThrottle(1000) // 1ms interval
	if !th.ShouldRenderNow() {
		t.Fatal("first call should succeed")
	}
	time.Sleep(2 * time.Millisecond)
	if !th.ShouldRenderNow() {
		t.Fatal("call after interval elapsed should succeed")
	}
}

func TestThrottleResetAllowsImmediateRender(t *testing.T) {
	th := NewThrottle(30)
	th.ShouldRenderNow()
	th.Reset()
	if !th.ShouldRenderNow() {
		t.Fatal("call after Reset should succeed immediately")
	}
}

func TestThrottleTimeUntilNextFrame(t *testing.T) {
	th := NewThrottle(10) // 100ms interval
	th.ShouldRenderNow()
	d := th.TimeUntilNextFrame()
	if d <= 0 || d > 100*time.Millisecond {
		t.Errorf("TimeUntilNextFrame() = %v, want (0, 100ms]", d)
	}
}
