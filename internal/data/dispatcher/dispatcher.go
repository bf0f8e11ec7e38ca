// Package dispatcher routes watcher events into the session store and tells
// the UI whether anything it displays actually changed.
package dispatcher

import (
	"github.com/atomicstack/claude-tmux/internal/backend"
	"github.com/atomicstack/claude-tmux/internal/state"
)

type Result struct {
	SessionsUpdated bool
}

type Dispatcher struct {
	sessions state.SessionStore
}

func New(sessions state.SessionStore) *Dispatcher {
	return &Dispatcher{sessions: sessions}
}

// Handle applies a watcher event to the store. Errored events leave the
// previous snapshot in place so a transient tmux failure does not blank
// the dashboard.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	d.sessions.SetSessions(evt.Snapshot.Sessions)
	d.sessions.SetCurrent(evt.Snapshot.Current)
	res.SessionsUpdated = true
	return res
}
