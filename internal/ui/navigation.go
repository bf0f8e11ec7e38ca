package ui

import (
	"fmt"

	"github.com/atomicstack/claude-tmux/internal/backend"
	"github.com/atomicstack/claude-tmux/internal/logging/events"
	"github.com/atomicstack/claude-tmux/internal/menu"
	"github.com/atomicstack/claude-tmux/internal/session"
	uistate "github.com/atomicstack/claude-tmux/internal/ui/state"
)

// filteredSessions returns the sessions the list displays, in display order.
func (m *Model) filteredSessions() []session.Session {
	return uistate.FilterSessions(m.sessions.Sessions(), m.filter)
}

// selectedSession returns a copy of the session under the cursor, or nil
// when the filtered list is empty.
func (m *Model) selectedSession() *session.Session {
	filtered := m.filteredSessions()
	if m.selected < 0 || m.selected >= len(filtered) {
		return nil
	}
	s := filtered[m.selected]
	return &s
}

func (m *Model) selectNext() {
	if m.selected+1 < len(m.filteredSessions()) {
		m.selected++
		m.updatePreview()
	}
}

func (m *Model) selectPrev() {
	if m.selected > 0 {
		m.selected--
		m.updatePreview()
	}
}

// updatePreview captures the recent output of the selected session's agent
// pane, falling back to its first pane. Capture failures leave the preview
// empty; the pane may already be gone.
func (m *Model) updatePreview() {
	m.preview = ""
	s := m.selectedSession()
	if s == nil {
		return
	}
	pane := s.ClaudePane
	if pane == "" && len(s.Panes) > 0 {
		pane = s.Panes[0].ID
	}
	if pane == "" {
		return
	}
	if content, err := m.capture(m.socketPath, pane, m.previewLines, false); err == nil {
		m.preview = content
	}
}

// refresh re-collects on demand and reports the outcome, for the explicit
// R binding. Actions that refresh as a side effect go through
// refreshSessions directly so their own message is the one that survives.
func (m *Model) refresh() {
	if m.refreshSessions() {
		m.setInfo("Refreshed")
	}
}

// refreshSessions swaps in a fresh snapshot, keeps the cursor in range,
// and re-captures the preview. On failure the previous snapshot stays and
// the error lands in the outcome channel.
func (m *Model) refreshSessions() bool {
	snap, err := m.collect(m.socketPath)
	if err != nil {
		m.setError(fmt.Sprintf("Failed to refresh: %v", err))
		return false
	}
	m.dispatcher.Handle(backend.Event{Snapshot: snap})
	if count := len(m.filteredSessions()); count > 0 && m.selected >= count {
		m.selected = count - 1
	}
	m.updatePreview()
	return true
}

func (m *Model) startFilter() {
	m.filterInput = m.filter
	m.setMode(ModeFilter)
}

func (m *Model) applyFilter() {
	m.filter = m.filterInput
	m.selected = 0
	m.setMode(ModeNormal)
	m.updatePreview()
	events.Filter.Apply(m.filter, len(m.filteredSessions()))
}

func (m *Model) clearFilter() {
	m.filter = ""
	m.selected = 0
	m.updatePreview()
	events.Filter.Clear()
}

// enterActionMenu expands the action list under the selected session.
// Availability runs fresh on every entry.
func (m *Model) enterActionMenu() {
	s := m.selectedSession()
	if s == nil {
		return
	}
	m.availableActions, m.prInfo = menu.Compute(s, m.env)
	m.selectedAction = 0
	m.setMode(ModeActionMenu)
	events.UI.ActionMenu(s.Name, len(m.availableActions))
}

func (m *Model) selectNextAction() {
	if n := len(m.availableActions); n > 0 {
		m.selectedAction = (m.selectedAction + 1) % n
	}
}

func (m *Model) selectPrevAction() {
	if n := len(m.availableActions); n > 0 {
		m.selectedAction = (m.selectedAction + n - 1) % n
	}
}

// cancel backs out of whatever flow is open and returns to the plain list.
func (m *Model) cancel() {
	m.pendingAction = nil
	m.prInfo = nil
	m.closeForms()
	m.setMode(ModeNormal)
}

func (m *Model) closeForms() {
	m.renameForm = nil
	m.commitForm = nil
	m.sessionForm = nil
	m.worktreeForm = nil
	m.prForm = nil
}

// flatListIndex maps the selection onto the flattened row list the view
// renders. With the action menu open the selected session contributes its
// detail rows before the action entries, so the highlighted action's row
// index accounts for the metadata row, the optional git and pull request
// rows, and the separator.
func (m *Model) flatListIndex() int {
	if len(m.filteredSessions()) == 0 {
		return 0
	}
	if m.mode != ModeActionMenu {
		return m.selected
	}
	idx := m.selected + 2
	if s := m.selectedSession(); s != nil && s.Repo != nil {
		idx++
		if m.prInfo != nil {
			idx++
		}
	}
	idx++
	return idx + m.selectedAction
}

// totalListItems counts the flattened rows, matching flatListIndex.
func (m *Model) totalListItems() int {
	count := len(m.filteredSessions())
	if count == 0 {
		return 0
	}
	if m.mode != ModeActionMenu {
		return count
	}
	total := count + 1
	if s := m.selectedSession(); s != nil && s.Repo != nil {
		total++
		if m.prInfo != nil {
			total++
		}
	}
	return total + 1 + len(m.availableActions) + 1
}
