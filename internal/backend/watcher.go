package backend

import (
	"context"
	"sync"
	"time"
)

// Event conveys a fresh snapshot or a collection error from the watcher.
type Event struct {
	Snapshot Snapshot
	Err      error
}

// Watcher re-collects the tmux state at a fixed interval and publishes the
// results. Collection shells out to tmux and git, so a gap throttle keeps
// slow collects from stacking when the interval is short.
type Watcher struct {
	socketPath string
	interval   time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	collect func(string) (Snapshot, error)
}

// NewWatcher creates a watcher that refreshes every interval.
func NewWatcher(socketPath string, interval time.Duration) *Watcher {
	return newWatcher(socketPath, interval, Collect)
}

func newWatcher(socketPath string, interval time.Duration, collect func(string) (Snapshot, error)) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		socketPath: socketPath,
		interval:   interval,
		ctx:        ctx,
		cancel:     cancel,
		events:     make(chan Event, 16),
		collect:    collect,
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of watcher events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current collect
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	gap := newThrottle(100 * time.Millisecond)

	emit := func() bool {
		gap.wait()
		snapshot, err := w.collect(w.socketPath)
		evt := Event{Snapshot: snapshot, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
