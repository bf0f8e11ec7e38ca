package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes a keypress to the handler for the current mode.
// Whatever the key does, the previous action's outcome is wiped first so
// messages never outlive the next input event.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.clearOutcome()
	switch m.mode {
	case ModeNormal:
		return m.handleNormalKey(key)
	case ModeActionMenu:
		return m.handleActionMenuKey(key)
	case ModeFilter:
		return m.handleFilterKey(key)
	case ModeConfirmAction:
		return m.handleConfirmKey(key)
	case ModeNewSession:
		return m.handleNewSessionKey(key)
	case ModeRename:
		return m.handleRenameKey(key)
	case ModeCommit:
		return m.handleCommitKey(key)
	case ModeNewWorktree:
		return m.handleWorktreeKey(key)
	case ModeCreatePullRequest:
		return m.handleCreatePRKey(key)
	case ModeHelp:
		return m.handleHelpKey(key)
	}
	return nil
}

func (m *Model) handleNormalKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "q", "esc":
		m.quitting = true
		return tea.Quit
	case "ctrl+c":
		// With a filter applied ctrl+c lifts it; otherwise it quits.
		if m.filter != "" {
			m.clearFilter()
			return nil
		}
		m.quitting = true
		return tea.Quit
	case "j", "down":
		m.selectNext()
	case "k", "up":
		m.selectPrev()
	case "l", "right":
		m.enterActionMenu()
	case "enter":
		return m.switchToSelected()
	case "n":
		m.startNewSession()
	case "K":
		m.startKill()
	case "r":
		m.startRename()
	case "/":
		m.startFilter()
	case "R":
		m.refresh()
	case "?":
		m.setMode(ModeHelp)
	}
	return nil
}

func (m *Model) handleActionMenuKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "q":
		m.quitting = true
		return tea.Quit
	case "j", "down":
		m.selectNextAction()
	case "k", "up":
		m.selectPrevAction()
	case "enter", "l", "right":
		return m.executeSelectedAction()
	case "h", "left", "esc":
		m.cancel()
	}
	return nil
}

func (m *Model) handleFilterKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc:
		m.cancel()
	case tea.KeyEnter:
		m.applyFilter()
	case tea.KeyBackspace:
		if runes := []rune(m.filterInput); len(runes) > 0 {
			m.filterInput = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.filterInput += " "
	case tea.KeyRunes:
		m.filterInput += string(key.Runes)
	}
	return nil
}

func (m *Model) handleConfirmKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter", "y", "Y":
		return m.confirmPending()
	case "n", "N", "esc":
		m.cancel()
	}
	return nil
}

func (m *Model) handleNewSessionKey(key tea.KeyMsg) tea.Cmd {
	form := m.sessionForm
	if form == nil {
		m.setMode(ModeNormal)
		return nil
	}
	switch key.Type {
	case tea.KeyEsc:
		m.cancel()
		return nil
	case tea.KeyEnter:
		return m.confirmNewSession()
	case tea.KeyTab:
		return form.toggleField()
	case tea.KeyDown:
		if form.field == fieldPath {
			form.nextSuggestion()
			return nil
		}
	case tea.KeyUp:
		if form.field == fieldPath {
			form.prevSuggestion()
			return nil
		}
	case tea.KeyRight:
		if form.field == fieldPath && atLineEnd(form.path) {
			form.acceptSuggestion()
			return nil
		}
	}
	return form.Update(key)
}

func (m *Model) handleRenameKey(key tea.KeyMsg) tea.Cmd {
	form := m.renameForm
	if form == nil {
		m.setMode(ModeNormal)
		return nil
	}
	switch key.Type {
	case tea.KeyEsc:
		m.cancel()
		return nil
	case tea.KeyEnter:
		return m.confirmRename()
	}
	return form.Update(key)
}

func (m *Model) handleCommitKey(key tea.KeyMsg) tea.Cmd {
	form := m.commitForm
	if form == nil {
		m.setMode(ModeNormal)
		return nil
	}
	switch key.Type {
	case tea.KeyEsc:
		m.cancel()
		return nil
	case tea.KeyEnter:
		return m.confirmCommit()
	}
	return form.Update(key)
}

func (m *Model) handleWorktreeKey(key tea.KeyMsg) tea.Cmd {
	form := m.worktreeForm
	if form == nil {
		m.setMode(ModeNormal)
		return nil
	}
	switch key.Type {
	case tea.KeyEsc:
		m.cancel()
		return nil
	case tea.KeyEnter:
		return m.confirmNewWorktree()
	case tea.KeyTab:
		return form.nextField()
	case tea.KeyShiftTab:
		return form.prevField()
	case tea.KeyDown:
		switch form.field {
		case wtFieldBranch:
			form.nextBranch()
			return nil
		case wtFieldPath:
			form.nextPathSuggestion()
			return nil
		}
	case tea.KeyUp:
		switch form.field {
		case wtFieldBranch:
			form.prevBranch()
			return nil
		case wtFieldPath:
			form.prevPathSuggestion()
			return nil
		}
	case tea.KeyRight:
		switch form.field {
		case wtFieldBranch:
			if atLineEnd(form.branch) {
				form.acceptBranch()
				return nil
			}
		case wtFieldPath:
			if atLineEnd(form.path) {
				form.acceptPathSuggestion()
				return nil
			}
		}
	}
	return form.Update(key)
}

func (m *Model) handleCreatePRKey(key tea.KeyMsg) tea.Cmd {
	form := m.prForm
	if form == nil {
		m.setMode(ModeNormal)
		return nil
	}
	switch key.Type {
	case tea.KeyEsc:
		m.cancel()
		return nil
	case tea.KeyEnter:
		return m.confirmCreatePullRequest()
	case tea.KeyTab:
		return form.nextField()
	case tea.KeyShiftTab:
		return form.prevField()
	}
	return form.Update(key)
}

func (m *Model) handleHelpKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "q", "esc", "?":
		m.setMode(ModeNormal)
	}
	return nil
}
