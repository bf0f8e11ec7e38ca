package backend

import "time"

// throttle enforces a minimum interval between successive operations. It is
// used from a single goroutine, so no locking is needed.
type throttle struct {
	interval time.Duration
	next     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

func (t *throttle) wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	if wait := time.Until(t.next); wait > 0 {
		time.Sleep(wait)
	}
	t.next = time.Now().Add(t.interval)
}
