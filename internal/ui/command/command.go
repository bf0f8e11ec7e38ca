// Package command executes session actions on behalf of the UI. Execution
// is deliberately synchronous: an operation always finishes before the next
// keystroke is processed, which the dialog-flow behavior depends on.
package command

import (
	"github.com/atomicstack/claude-tmux/internal/logging/events"
	"github.com/atomicstack/claude-tmux/internal/menu"
)

// Runner traces and runs action invocations.
type Runner struct{}

// New initialises a runner instance.
func New() *Runner {
	return &Runner{}
}

// Run invokes fn under the action's id and label, emitting trace events
// for the invocation and its outcome.
func (r *Runner) Run(id, label string, fn func() menu.ActionResult) menu.ActionResult {
	events.Command.Queue(id, label)
	if fn == nil {
		events.Command.Skip(id, label)
		return menu.ActionResult{}
	}
	res := fn()
	switch {
	case res.Err != nil:
		events.Command.Result(id, label, "error")
		events.Action.Error(res.Err)
	case res.Info != "":
		events.Command.Result(id, label, "info")
		events.Action.Success(res.Info)
	default:
		events.Command.NoOp(id, label)
	}
	return res
}
