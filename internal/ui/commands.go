package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/claude-tmux/internal/menu"
)

// switchToSelected switches the tmux client straight to the session under
// the cursor, bypassing the action menu.
func (m *Model) switchToSelected() tea.Cmd {
	s := m.selectedSession()
	if s == nil {
		return nil
	}
	name := s.Name
	res := m.runner.Run(menu.ActionSwitchTo.ID(), menu.ActionSwitchTo.Label(), func() menu.ActionResult {
		return menu.Execute(m.deps, menu.ActionSwitchTo, menu.Target{Session: name})
	})
	return m.applyResult(res)
}

// executeSelectedAction runs the highlighted menu entry, diverting through
// the confirmation dialog when the action is destructive.
func (m *Model) executeSelectedAction() tea.Cmd {
	if m.selectedAction < 0 || m.selectedAction >= len(m.availableActions) {
		return nil
	}
	action := m.availableActions[m.selectedAction]
	if action.RequiresConfirmation() {
		m.pendingAction = &action
		m.setMode(ModeConfirmAction)
		return nil
	}
	return m.executeAction(action)
}

// startKill arms the confirmation dialog for the direct K binding.
func (m *Model) startKill() {
	if m.selectedSession() == nil {
		return
	}
	action := menu.ActionKill
	m.pendingAction = &action
	m.setMode(ModeConfirmAction)
}

// confirmPending runs the action the confirmation dialog was guarding.
func (m *Model) confirmPending() tea.Cmd {
	action := m.pendingAction
	m.pendingAction = nil
	var cmd tea.Cmd
	if action != nil {
		cmd = m.executeAction(*action)
	}
	if m.mode == ModeConfirmAction {
		m.setMode(ModeNormal)
	}
	return cmd
}

// executeAction dispatches one action: dialog-backed actions open their
// dialog, everything else executes synchronously against the selected
// session. Pull request details live only while the menu is expanded.
func (m *Model) executeAction(action menu.SessionAction) tea.Cmd {
	m.prInfo = nil
	s := m.selectedSession()
	if s == nil {
		m.setMode(ModeNormal)
		return nil
	}
	switch action {
	case menu.ActionRename:
		m.startRename()
		return nil
	case menu.ActionCommit:
		m.commitForm = newCommitForm()
		m.setMode(ModeCommit)
		return nil
	case menu.ActionNewWorktree:
		m.startNewWorktree()
		return nil
	case menu.ActionCreatePullRequest:
		m.startCreatePullRequest()
		return nil
	}
	target := menu.Target{
		Session:    s.Name,
		Path:       s.WorkingDirectory,
		IsWorktree: s.Repo != nil && s.Repo.IsWorktree,
	}
	res := m.runner.Run(action.ID(), action.Label(), func() menu.ActionResult {
		return menu.Execute(m.deps, action, target)
	})
	m.setMode(ModeNormal)
	return m.applyResult(res)
}

func (m *Model) startRename() {
	s := m.selectedSession()
	if s == nil {
		return
	}
	m.renameForm = newRenameForm(s.Name)
	m.setMode(ModeRename)
}

func (m *Model) confirmRename() tea.Cmd {
	form := m.renameForm
	if form == nil {
		m.setMode(ModeNormal)
		return nil
	}
	oldName, newName := form.oldName, form.input.Value()
	m.closeForms()
	m.setMode(ModeNormal)
	res := m.runner.Run(menu.ActionRename.ID(), menu.ActionRename.Label(), func() menu.ActionResult {
		return menu.ConfirmRename(m.deps, oldName, newName)
	})
	return m.applyResult(res)
}

func (m *Model) confirmCommit() tea.Cmd {
	form := m.commitForm
	s := m.selectedSession()
	m.closeForms()
	m.setMode(ModeNormal)
	if form == nil || s == nil {
		return nil
	}
	path, message := s.WorkingDirectory, form.input.Value()
	res := m.runner.Run(menu.ActionCommit.ID(), menu.ActionCommit.Label(), func() menu.ActionResult {
		return menu.ConfirmCommit(m.deps, path, message)
	})
	return m.applyResult(res)
}

func (m *Model) startNewSession() {
	path, err := os.Getwd()
	if err != nil || path == "" {
		path = "~"
	}
	m.sessionForm = newNewSessionForm(path)
	m.setMode(ModeNewSession)
}

func (m *Model) confirmNewSession() tea.Cmd {
	form := m.sessionForm
	if form == nil {
		m.setMode(ModeNormal)
		return nil
	}
	name, path := form.name.Value(), form.path.Value()
	m.closeForms()
	m.setMode(ModeNormal)
	res := m.runner.Run("session-new", "New session", func() menu.ActionResult {
		return menu.ConfirmNewSession(m.deps, name, path, true)
	})
	return m.applyResult(res)
}

// startNewWorktree opens the worktree dialog. Listing branches can fail,
// in which case the error is reported and the mode is left untouched.
func (m *Model) startNewWorktree() {
	s := m.selectedSession()
	if s == nil || s.Repo == nil {
		return
	}
	source := menu.WorktreeSource(s)
	branches, err := m.deps.ListBranches(source)
	if err != nil {
		m.setError(fmt.Sprintf("Failed to list branches: %v", err))
		return
	}
	m.worktreeForm = newWorktreeForm(source, branches)
	m.setMode(ModeNewWorktree)
}

func (m *Model) confirmNewWorktree() tea.Cmd {
	form := m.worktreeForm
	if form == nil {
		m.setMode(ModeNormal)
		return nil
	}
	req := menu.WorktreeRequest{
		SourceRepo:   form.sourceRepo,
		AllBranches:  form.allBranches,
		BranchInput:  form.branch.Value(),
		SelectedIdx:  form.branchIdx,
		WorktreePath: form.path.Value(),
		SessionName:  form.session.Value(),
	}
	m.closeForms()
	m.setMode(ModeNormal)
	res := m.runner.Run(menu.ActionNewWorktree.ID(), menu.ActionNewWorktree.Label(), func() menu.ActionResult {
		return menu.ConfirmNewWorktree(m.deps, req)
	})
	return m.applyResult(res)
}

func (m *Model) startCreatePullRequest() {
	s := m.selectedSession()
	if s == nil {
		return
	}
	base := m.env.DefaultBranch(s.WorkingDirectory)
	if base == "" {
		base = "main"
	}
	m.prForm = newCreatePRForm(base)
	m.setMode(ModeCreatePullRequest)
}

func (m *Model) confirmCreatePullRequest() tea.Cmd {
	form := m.prForm
	s := m.selectedSession()
	m.closeForms()
	m.setMode(ModeNormal)
	if form == nil || s == nil {
		return nil
	}
	path := s.WorkingDirectory
	title, body, base := form.title.Value(), form.body.Value(), form.base.Value()
	res := m.runner.Run(menu.ActionCreatePullRequest.ID(), menu.ActionCreatePullRequest.Label(), func() menu.ActionResult {
		return menu.ConfirmCreatePR(m.deps, path, title, body, base)
	})
	return m.applyResult(res)
}
