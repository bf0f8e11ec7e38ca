// Package menu defines the per-session action model: which actions a
// session offers, how they are labelled, and how each one executes against
// tmux, git, and the GitHub CLI.
package menu

// SessionAction identifies one operation offered for the selected session.
type SessionAction int

const (
	ActionSwitchTo SessionAction = iota
	ActionRename
	ActionNewWorktree
	ActionStage
	ActionCommit
	ActionPush
	ActionPushSetUpstream
	ActionFetch
	ActionPull
	ActionCreatePullRequest
	ActionViewPullRequest
	ActionClosePullRequest
	ActionMergePullRequest
	ActionMergePullRequestAndClose
	ActionKill
	ActionKillAndDeleteWorktree
)

// Label returns the text shown for the action in the menu.
func (a SessionAction) Label() string {
	switch a {
	case ActionSwitchTo:
		return "Switch to session"
	case ActionRename:
		return "Rename session"
	case ActionNewWorktree:
		return "New session from worktree"
	case ActionStage:
		return "Stage all changes"
	case ActionCommit:
		return "Commit staged changes"
	case ActionPush:
		return "Push to remote"
	case ActionPushSetUpstream:
		return "Push and set upstream"
	case ActionFetch:
		return "Fetch from remote"
	case ActionPull:
		return "Pull from remote"
	case ActionCreatePullRequest:
		return "Create pull request"
	case ActionViewPullRequest:
		return "View pull request"
	case ActionClosePullRequest:
		return "Close pull request"
	case ActionMergePullRequest:
		return "Merge pull request"
	case ActionMergePullRequestAndClose:
		return "Merge PR + close session"
	case ActionKill:
		return "Kill session"
	case ActionKillAndDeleteWorktree:
		return "Kill session + delete worktree"
	}
	return ""
}

// RequiresConfirmation reports whether the action must pass through the
// confirmation dialog before executing.
func (a SessionAction) RequiresConfirmation() bool {
	switch a {
	case ActionKill,
		ActionKillAndDeleteWorktree,
		ActionClosePullRequest,
		ActionMergePullRequest,
		ActionMergePullRequestAndClose:
		return true
	}
	return false
}

// ID returns the stable identifier used in trace payloads.
func (a SessionAction) ID() string {
	switch a {
	case ActionSwitchTo:
		return "switch"
	case ActionRename:
		return "rename"
	case ActionNewWorktree:
		return "new-worktree"
	case ActionStage:
		return "stage"
	case ActionCommit:
		return "commit"
	case ActionPush:
		return "push"
	case ActionPushSetUpstream:
		return "push-set-upstream"
	case ActionFetch:
		return "fetch"
	case ActionPull:
		return "pull"
	case ActionCreatePullRequest:
		return "pr-create"
	case ActionViewPullRequest:
		return "pr-view"
	case ActionClosePullRequest:
		return "pr-close"
	case ActionMergePullRequest:
		return "pr-merge"
	case ActionMergePullRequestAndClose:
		return "pr-merge-close"
	case ActionKill:
		return "kill"
	case ActionKillAndDeleteWorktree:
		return "kill-delete-worktree"
	}
	return ""
}
