package ui

import (
	"errors"
	"testing"

	"github.com/atomicstack/claude-tmux/internal/backend"
	"github.com/atomicstack/claude-tmux/internal/session"
)

func sendSnapshot(m *Model, sessions []session.Session, current string) {
	NewHarness(m).Send(backendEventMsg{event: backend.Event{
		Snapshot: backend.Snapshot{Sessions: sessions, Current: current},
	}})
}

func TestBackendEventFollowsSelectionByName(t *testing.T) {
	m, _ := newTestModel(t, testSessions(), "")
	NewHarness(m).Keys("j") // beta
	sendSnapshot(m, testSessions()[1:], "")
	if got := m.selectedSession(); got == nil || got.Name != "beta" {
		t.Fatalf("selected = %v, want beta", got)
	}
	if m.selected != 0 {
		t.Fatalf("selected index = %d, want 0", m.selected)
	}
	if m.preview != "pane %2 output" {
		t.Fatalf("preview = %q", m.preview)
	}
}

func TestBackendEventResetsVanishedSelection(t *testing.T) {
	m, _ := newTestModel(t, testSessions(), "")
	NewHarness(m).Keys("j") // beta
	remaining := []session.Session{testSessions()[0], testSessions()[2]}
	sendSnapshot(m, remaining, "")
	if m.selected != 0 {
		t.Fatalf("selected = %d, want reset to 0", m.selected)
	}
}

func TestBackendEventCancelsStaleActionMenu(t *testing.T) {
	m, _ := newTestModel(t, testSessions(), "")
	NewHarness(m).Keys("l") // menu on alpha
	sendSnapshot(m, testSessions()[1:], "")
	if m.mode != ModeNormal {
		t.Fatalf("mode = %v, stale menu must close", m.mode)
	}
}

func TestBackendEventCancelsStaleConfirmation(t *testing.T) {
	m, _ := newTestModel(t, testSessions(), "")
	NewHarness(m).Keys("K")
	sendSnapshot(m, testSessions()[1:], "")
	if m.mode != ModeNormal || m.pendingAction != nil {
		t.Fatalf("mode = %v pending = %v, stale confirmation must close", m.mode, m.pendingAction)
	}
}

func TestBackendEventKeepsMenuWhenSelectionSurvives(t *testing.T) {
	m, _ := newTestModel(t, testSessions(), "")
	NewHarness(m).Keys("l") // menu on alpha
	all := testSessions()
	reordered := []session.Session{all[2], all[0], all[1]}
	sendSnapshot(m, reordered, "")
	if m.mode != ModeActionMenu {
		t.Fatalf("mode = %v, menu must survive a reorder", m.mode)
	}
	if got := m.selectedSession(); got == nil || got.Name != "alpha" {
		t.Fatalf("selected = %v, want alpha", got)
	}
	if m.selected != 1 {
		t.Fatalf("selected index = %d, want 1", m.selected)
	}
}

func TestBackendErrorEventKeepsSnapshot(t *testing.T) {
	m, _ := newTestModel(t, testSessions(), "")
	NewHarness(m).Send(backendEventMsg{event: backend.Event{Err: errors.New("collect failed")}})
	if got := len(m.sessions.Sessions()); got != 3 {
		t.Fatalf("store shrank to %d sessions", got)
	}
	// Periodic failures stay out of the status bar; only a manual refresh
	// reports them.
	if m.errMsg != "" || m.infoMsg != "" {
		t.Fatalf("outcome set: info=%q err=%q", m.infoMsg, m.errMsg)
	}
}

func TestBackendEventUpdatesCurrentSession(t *testing.T) {
	m, _ := newTestModel(t, testSessions(), "")
	sendSnapshot(m, testSessions(), "gamma")
	if got := m.sessions.Current(); got != "gamma" {
		t.Fatalf("current = %q", got)
	}
}

func TestBackendDoneDetachesWatcher(t *testing.T) {
	m, _ := newTestModel(t, testSessions(), "")
	NewHarness(m).Send(backendDoneMsg{})
	if m.backend != nil {
		t.Fatalf("watcher must detach after its channel closes")
	}
}
