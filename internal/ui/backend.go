package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/claude-tmux/internal/backend"
	"github.com/atomicstack/claude-tmux/internal/logging"
	uistate "github.com/atomicstack/claude-tmux/internal/ui/state"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent folds a periodic snapshot into the store. The cursor
// follows the previously selected session by name; an armed action menu or
// confirmation dialog is dropped when that session is no longer the one
// under the cursor, so a stale menu can never fire against a neighbour.
// Collection errors are traced and otherwise ignored: the previous
// snapshot stays on screen and a manual refresh will surface the problem.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		return
	}
	var keep string
	if s := m.selectedSession(); s != nil {
		keep = s.Name
	}
	res := m.dispatcher.Handle(evt)
	if !res.SessionsUpdated {
		return
	}
	filtered := m.filteredSessions()
	if idx := uistate.BestMatchIndex(filtered, keep); idx >= 0 {
		m.selected = idx
	} else {
		m.selected = 0
	}
	if m.mode == ModeActionMenu || m.mode == ModeConfirmAction {
		if s := m.selectedSession(); s == nil || s.Name != keep {
			m.cancel()
		}
	}
	m.updatePreview()
}
