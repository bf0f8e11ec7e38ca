package events

import "github.com/atomicstack/claude-tmux/internal/logging"

type PRTracer struct{}

var PR = PRTracer{}

func (PRTracer) Lookup(path string, found bool) {
	logging.Trace("pr.lookup", map[string]interface{}{"path": path, "found": found})
}

func (PRTracer) Create(path, base string) {
	logging.Trace("pr.create", map[string]interface{}{"path": path, "base": base})
}

func (PRTracer) View(path string) {
	logging.Trace("pr.view", map[string]interface{}{"path": path})
}

func (PRTracer) Merge(path string) {
	logging.Trace("pr.merge", map[string]interface{}{"path": path})
}

func (PRTracer) Close(path string) {
	logging.Trace("pr.close", map[string]interface{}{"path": path})
}
