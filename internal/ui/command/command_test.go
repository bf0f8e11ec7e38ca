package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/claude-tmux/internal/menu"
)

func TestRunReturnsResult(t *testing.T) {
	r := New()
	res := r.Run("kill", "Kill session", func() menu.ActionResult {
		return menu.ActionResult{Info: "Killed session 'a'", Refresh: true}
	})
	if res.Info != "Killed session 'a'" || !res.Refresh {
		t.Fatalf("result = %+v", res)
	}
}

func TestRunPropagatesError(t *testing.T) {
	r := New()
	boom := errors.New("no server")
	res := r.Run("switch", "Switch to session", func() menu.ActionResult {
		return menu.ActionResult{Err: boom}
	})
	if !errors.Is(res.Err, boom) {
		t.Fatalf("Err = %v", res.Err)
	}
}

func TestRunNilHandler(t *testing.T) {
	r := New()
	res := r.Run("noop", "Nothing", nil)
	if res != (menu.ActionResult{}) {
		t.Fatalf("result = %+v, want zero", res)
	}
}
