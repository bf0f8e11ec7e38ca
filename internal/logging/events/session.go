package events

import "github.com/atomicstack/claude-tmux/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Refresh(count int) {
	logging.Trace("session.refresh", map[string]interface{}{"count": count})
}

func (SessionTracer) Switch(target string) {
	logging.Trace("session.switch", map[string]interface{}{"target": target})
}

func (SessionTracer) Create(name, path string, agent bool) {
	logging.Trace("session.create", map[string]interface{}{"name": name, "path": path, "agent": agent})
}

func (SessionTracer) Kill(target string) {
	logging.Trace("session.kill", map[string]interface{}{"target": target})
}

func (SessionTracer) Rename(target, name string) {
	logging.Trace("session.rename", map[string]interface{}{"target": target, "name": name})
}
