package menu

import (
	"fmt"

	"github.com/atomicstack/claude-tmux/internal/forge"
	"github.com/atomicstack/claude-tmux/internal/git"
	"github.com/atomicstack/claude-tmux/internal/logging/events"
	"github.com/atomicstack/claude-tmux/internal/tmux"
)

// Deps bundles every collaborator call an action or dialog flow can make.
// DefaultDeps binds them to the real tmux, git, and gh implementations;
// tests substitute fakes to drive the failure ladders.
type Deps struct {
	SwitchClient    func(target string) error
	KillSession     func(name string) error
	RenameSession   func(oldName, newName string) error
	NewSession      func(name, dir string, startAgent bool) error
	StageAll        func(path string) error
	Commit          func(path, message string) error
	Push            func(path string) error
	PushSetUpstream func(path string) error
	Fetch           func(path string) error
	Pull            func(path string) error
	ListBranches    func(path string) ([]string, error)
	CreateWorktree  func(repo, path, branch string, newBranch bool) error
	DeleteWorktree  func(path string, force bool) error
	CreatePR        func(path, title, body, base string) (string, error)
	ViewPR          func(path string) error
	MergePR         func(path string) error
	ClosePR         func(path string) error
}

// DefaultDeps wires the dependency set against a tmux server socket.
func DefaultDeps(socketPath string) Deps {
	return Deps{
		SwitchClient: func(target string) error {
			return tmux.SwitchClient(socketPath, target)
		},
		KillSession: func(name string) error {
			return tmux.KillSession(socketPath, name)
		},
		RenameSession: func(oldName, newName string) error {
			return tmux.RenameSession(socketPath, oldName, newName)
		},
		NewSession: func(name, dir string, startAgent bool) error {
			return tmux.NewSession(socketPath, name, dir, startAgent)
		},
		StageAll:        git.StageAll,
		Commit:          git.Commit,
		Push:            git.Push,
		PushSetUpstream: git.PushSetUpstream,
		Fetch:           git.Fetch,
		Pull:            git.Pull,
		ListBranches:    git.ListBranches,
		CreateWorktree:  git.CreateWorktree,
		DeleteWorktree:  git.DeleteWorktree,
		CreatePR:        forge.CreatePR,
		ViewPR:          forge.ViewPR,
		MergePR:         forge.MergePR,
		ClosePR:         forge.ClosePR,
	}
}

// Target identifies the session an action operates on.
type Target struct {
	Session    string
	Path       string
	IsWorktree bool
}

// ActionResult is the outcome of one executed action or dialog flow. At
// most one of Info or Err is set; Refresh asks for a new snapshot; Quit
// ends the program after a successful switch.
type ActionResult struct {
	Info    string
	Err     error
	Refresh bool
	Quit    bool
}

// Execute runs one immediately-effectful action. The dialog-opening
// actions (Rename, Commit, NewWorktree, CreatePullRequest) are routed to
// their flows by the UI and fall through to an empty result here.
func Execute(deps Deps, action SessionAction, target Target) ActionResult {
	switch action {
	case ActionSwitchTo:
		events.Session.Switch(target.Session)
		if err := deps.SwitchClient(target.Session); err != nil {
			return ActionResult{Err: fmt.Errorf("Failed to switch: %v", err)}
		}
		return ActionResult{Quit: true}

	case ActionStage:
		events.Git.Stage(target.Path)
		if err := deps.StageAll(target.Path); err != nil {
			return ActionResult{Err: fmt.Errorf("Stage failed: %v", err)}
		}
		return ActionResult{Info: "Staged all changes", Refresh: true}

	case ActionPush:
		events.Git.Push(target.Path, false)
		if err := deps.Push(target.Path); err != nil {
			return ActionResult{Err: fmt.Errorf("Push failed: %v", err)}
		}
		return ActionResult{Info: "Pushed to remote", Refresh: true}

	case ActionPushSetUpstream:
		events.Git.Push(target.Path, true)
		if err := deps.PushSetUpstream(target.Path); err != nil {
			return ActionResult{Err: fmt.Errorf("Push failed: %v", err)}
		}
		return ActionResult{Info: "Pushed and set upstream", Refresh: true}

	case ActionFetch:
		events.Git.Fetch(target.Path)
		if err := deps.Fetch(target.Path); err != nil {
			return ActionResult{Err: fmt.Errorf("Fetch failed: %v", err)}
		}
		return ActionResult{Info: "Fetched from remote", Refresh: true}

	case ActionPull:
		events.Git.Pull(target.Path)
		if err := deps.Pull(target.Path); err != nil {
			return ActionResult{Err: fmt.Errorf("Pull failed: %v", err)}
		}
		return ActionResult{Info: "Pulled from remote", Refresh: true}

	case ActionViewPullRequest:
		events.PR.View(target.Path)
		if err := deps.ViewPR(target.Path); err != nil {
			return ActionResult{Err: fmt.Errorf("Failed to open PR: %v", err)}
		}
		return ActionResult{Info: "Opened PR in browser"}

	case ActionClosePullRequest:
		events.PR.Close(target.Path)
		if err := deps.ClosePR(target.Path); err != nil {
			return ActionResult{Err: fmt.Errorf("Failed to close PR: %v", err)}
		}
		return ActionResult{Info: "Closed pull request"}

	case ActionMergePullRequest:
		events.PR.Merge(target.Path)
		if err := deps.MergePR(target.Path); err != nil {
			return ActionResult{Err: fmt.Errorf("Failed to merge PR: %v", err)}
		}
		return ActionResult{Info: "Merged pull request", Refresh: true}

	case ActionMergePullRequestAndClose:
		return executeMergeAndClose(deps, target)

	case ActionKill:
		events.Session.Kill(target.Session)
		if err := deps.KillSession(target.Session); err != nil {
			return ActionResult{Err: fmt.Errorf("Failed to kill: %v", err)}
		}
		return ActionResult{
			Info:    fmt.Sprintf("Killed session '%s'", target.Session),
			Refresh: true,
		}

	case ActionKillAndDeleteWorktree:
		return executeKillAndDelete(deps, target)
	}
	return ActionResult{}
}

// executeMergeAndClose runs the three-stage merge flow: merge the PR,
// delete the worktree when there is one, then kill the session. A failure
// reports how far the flow got and leaves the state actually reached.
func executeMergeAndClose(deps Deps, target Target) ActionResult {
	events.PR.Merge(target.Path)
	if err := deps.MergePR(target.Path); err != nil {
		return ActionResult{Err: fmt.Errorf("Failed to merge PR: %v", err)}
	}

	if target.IsWorktree {
		events.Git.WorktreeDelete(target.Path, true)
		if err := deps.DeleteWorktree(target.Path, true); err != nil {
			// The session stays alive so the user can intervene.
			return ActionResult{Err: fmt.Errorf("PR merged but failed to delete worktree: %v", err)}
		}
	}

	events.Session.Kill(target.Session)
	if err := deps.KillSession(target.Session); err != nil {
		return ActionResult{
			Err:     fmt.Errorf("PR merged but failed to kill session: %v", err),
			Refresh: true,
		}
	}
	info := "Merged PR and closed session"
	if target.IsWorktree {
		info = "Merged PR, removed worktree, and closed session"
	}
	return ActionResult{Info: info, Refresh: true}
}

// executeKillAndDelete deletes the worktree before killing the session;
// the worktree's git metadata is only resolvable while the checkout still
// exists.
func executeKillAndDelete(deps Deps, target Target) ActionResult {
	events.Git.WorktreeDelete(target.Path, false)
	if err := deps.DeleteWorktree(target.Path, false); err != nil {
		return ActionResult{Err: fmt.Errorf("Failed to delete worktree: %v", err)}
	}

	events.Session.Kill(target.Session)
	if err := deps.KillSession(target.Session); err != nil {
		return ActionResult{
			Err:     fmt.Errorf("Worktree deleted but failed to kill session: %v", err),
			Refresh: true,
		}
	}
	return ActionResult{
		Info:    fmt.Sprintf("Deleted worktree and killed session '%s'", target.Session),
		Refresh: true,
	}
}
