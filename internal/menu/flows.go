package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/claude-tmux/internal/complete"
	"github.com/atomicstack/claude-tmux/internal/logging/events"
	"github.com/atomicstack/claude-tmux/internal/session"
)

// ConfirmRename applies an accepted rename dialog. Renaming a session to
// its current name is a silent no-op that never reaches tmux.
func ConfirmRename(deps Deps, oldName, newName string) ActionResult {
	if oldName == newName {
		return ActionResult{}
	}
	events.Session.Rename(oldName, newName)
	if err := deps.RenameSession(oldName, newName); err != nil {
		return ActionResult{Err: fmt.Errorf("Failed to rename: %v", err)}
	}
	return ActionResult{
		Info:    fmt.Sprintf("Renamed '%s' to '%s'", oldName, newName),
		Refresh: true,
	}
}

// ConfirmCommit commits staged changes with the dialog's message. A blank
// message is rejected before git is touched.
func ConfirmCommit(deps Deps, path, message string) ActionResult {
	if strings.TrimSpace(message) == "" {
		return ActionResult{Err: errors.New("Commit message cannot be empty")}
	}
	events.Git.Commit(path)
	if err := deps.Commit(path, message); err != nil {
		return ActionResult{Err: fmt.Errorf("Commit failed: %v", err)}
	}
	return ActionResult{Info: "Committed changes", Refresh: true}
}

// ConfirmNewSession creates a session rooted at the dialog's path, with ~
// expanded. startAgent controls whether Claude is launched in the first
// pane.
func ConfirmNewSession(deps Deps, name, path string, startAgent bool) ActionResult {
	if name == "" {
		return ActionResult{Err: errors.New("Session name cannot be empty")}
	}
	dir := complete.ExpandPath(path)
	events.Session.Create(name, dir, startAgent)
	if err := deps.NewSession(name, dir, startAgent); err != nil {
		return ActionResult{Err: fmt.Errorf("Failed to create session: %v", err)}
	}
	return ActionResult{
		Info:    fmt.Sprintf("Created session '%s'", name),
		Refresh: true,
	}
}

// WorktreeRequest carries the state of the new-worktree dialog at confirm
// time. SelectedIdx indexes the filtered branch list, -1 for no highlight.
type WorktreeRequest struct {
	SourceRepo   string
	AllBranches  []string
	BranchInput  string
	SelectedIdx  int
	WorktreePath string
	SessionName  string
}

// ConfirmNewWorktree creates the worktree, then a session rooted in it
// with the agent auto-started. A session failure after the worktree
// succeeded is reported as partial: the worktree is not rolled back.
func ConfirmNewWorktree(deps Deps, req WorktreeRequest) ActionResult {
	if req.BranchInput == "" && req.SelectedIdx < 0 {
		return ActionResult{Err: errors.New("Branch name cannot be empty")}
	}
	if req.SessionName == "" {
		return ActionResult{Err: errors.New("Session name cannot be empty")}
	}
	if req.WorktreePath == "" {
		return ActionResult{Err: errors.New("Worktree path cannot be empty")}
	}

	branch, newBranch := ResolveBranch(req.AllBranches, req.BranchInput, req.SelectedIdx)
	path := complete.ExpandPath(req.WorktreePath)

	events.Git.WorktreeCreate(req.SourceRepo, branch, path, newBranch)
	if err := deps.CreateWorktree(req.SourceRepo, path, branch, newBranch); err != nil {
		return ActionResult{Err: fmt.Errorf("Failed to create worktree: %v", err)}
	}

	events.Session.Create(req.SessionName, path, true)
	if err := deps.NewSession(req.SessionName, path, true); err != nil {
		return ActionResult{Err: fmt.Errorf("Worktree created but session creation failed: %v", err)}
	}
	return ActionResult{
		Info:    fmt.Sprintf("Created worktree '%s' and session '%s'", branch, req.SessionName),
		Refresh: true,
	}
}

// ResolveBranch decides which branch the worktree uses. A highlighted
// suggestion always wins; otherwise input exactly matching an existing
// branch reuses it, and anything else becomes a new branch off the source
// repository's HEAD.
func ResolveBranch(allBranches []string, input string, selectedIdx int) (branch string, newBranch bool) {
	if selectedIdx >= 0 {
		filtered := FilterBranches(allBranches, input)
		if selectedIdx < len(filtered) {
			return filtered[selectedIdx], false
		}
		return input, false
	}
	for _, b := range allBranches {
		if b == input {
			return b, false
		}
	}
	return input, true
}

// ConfirmCreatePR opens a pull request with the dialog's title, body, and
// base branch. The session list is unaffected, so no refresh is requested.
func ConfirmCreatePR(deps Deps, path, title, body, base string) ActionResult {
	if strings.TrimSpace(title) == "" {
		return ActionResult{Err: errors.New("PR title cannot be empty")}
	}
	events.PR.Create(path, base)
	url, err := deps.CreatePR(path, title, body, base)
	if err != nil {
		return ActionResult{Err: fmt.Errorf("Failed to create PR: %v", err)}
	}
	return ActionResult{Info: fmt.Sprintf("Created PR: %s", url)}
}

// WorktreeSource returns the repository new worktrees are created from:
// the main checkout for worktree sessions, the working directory
// otherwise, and "" for sessions outside git.
func WorktreeSource(s *session.Session) string {
	if s == nil || s.Repo == nil {
		return ""
	}
	if s.Repo.IsWorktree && s.Repo.MainRepoPath != "" {
		return s.Repo.MainRepoPath
	}
	return s.WorkingDirectory
}
