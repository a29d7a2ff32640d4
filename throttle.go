package region

import "time"

// DefaultFPS is the frame rate used when a Throttle is constructed with a
// non-positive target, matching the render loop's original default.
const DefaultFPS = 30

// Throttle is a monotonic-time rate limiter coalescing bursty frame
// requests down to a target frames-per-second. Generalized from the
// inline "time.Now().Sub(lastRender) < interval" check the render loop
// used directly.
type Throttle struct {
	lastFrame   time.Time
	minInterval time.Duration
}

// NewThrottle creates a Throttle targeting fps frames per second. fps <= 0
// falls back to DefaultFPS.
func NewThrottle(fps int) *Throttle {
	t := &Throttle{}
	t.SetFPS(fps)
	return t
}

// SetFPS changes the target frame rate. Does not reset lastFrame.
func (t *Throttle) SetFPS(fps int) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	t.minInterval = time.Second / time.Duration(fps)
}

// ShouldRenderNow reports whether enough time has elapsed since the last
// permitted frame. When true, it records now as the new last-frame time.
func (t *Throttle) ShouldRenderNow() bool {
	now := time.Now()
	if now.Sub(t.lastFrame) < t.minInterval {
		return false
	}
	t.lastFrame = now
	return true
}

// TimeUntilNextFrame returns how long the caller should wait before the
// next call to ShouldRenderNow is likely to succeed. Zero if it would
// succeed immediately.
func (t *Throttle) TimeUntilNextFrame() time.Duration {
	elapsed := time.Since(t.lastFrame)
	if elapsed >= t.minInterval {
		return 0
	}
	return t.minInterval - elapsed
}

// Reset clears the last-frame timestamp so the next ShouldRenderNow call
// always succeeds.
func (t *Throttle) Reset() {
	t.lastFrame = time.Time{}
}
