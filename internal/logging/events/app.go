// Package events defines one small tracer per domain so call sites emit
// structured trace entries without building payload maps inline.
package events

import "github.com/atomicstack/claude-tmux/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}
