package menu

import (
	"github.com/atomicstack/claude-tmux/internal/forge"
	"github.com/atomicstack/claude-tmux/internal/logging/events"
	"github.com/atomicstack/claude-tmux/internal/session"
)

// Env carries the collaborator probes the availability engine consults.
// They are injected rather than called directly so tests can substitute
// fakes; the process-wide checks are cached behind the forge package.
type Env struct {
	GHAvailable    func() bool
	IsGitHubRemote func(path string) bool
	DefaultBranch  func(path string) string
	LookupPR       func(path string) *forge.PullRequest
}

// DefaultEnv binds the probes to the real gh-backed implementations.
func DefaultEnv() Env {
	return Env{
		GHAvailable:    forge.Available,
		IsGitHubRemote: forge.IsGitHubRemote,
		DefaultBranch:  forge.DefaultBranch,
		LookupPR:       forge.LookupPR,
	}
}

// Compute derives the ordered action list for a session, plus the pull
// request fetched while deciding between the create and manage actions.
// The slice order is the on-screen order.
func Compute(s *session.Session, env Env) ([]SessionAction, *forge.PullRequest) {
	if s == nil {
		return nil, nil
	}

	actions := []SessionAction{ActionSwitchTo, ActionRename}
	var pr *forge.PullRequest

	if repo := s.Repo; repo != nil {
		actions = append(actions, ActionNewWorktree)

		if repo.HasUnstaged {
			actions = append(actions, ActionStage)
		}
		if repo.HasStaged {
			actions = append(actions, ActionCommit)
		}

		// Fetch only updates tracking branches, so dirty state is irrelevant.
		if repo.HasRemote {
			actions = append(actions, ActionFetch)
		}

		if repo.HasUpstream {
			// Pushing already-committed work is allowed even while dirty;
			// pulling is not, since a fast-forward could collide with
			// uncommitted changes.
			if repo.Ahead > 0 {
				actions = append(actions, ActionPush)
			}
			if repo.Behind > 0 && !repo.Dirty() {
				actions = append(actions, ActionPull)
			}

			if env.GHAvailable() && env.IsGitHubRemote(s.WorkingDirectory) {
				if def := env.DefaultBranch(s.WorkingDirectory); def != "" && def != repo.Branch {
					pr = env.LookupPR(s.WorkingDirectory)
					events.PR.Lookup(s.WorkingDirectory, pr != nil)
					if pr != nil && pr.State == "OPEN" {
						actions = append(actions,
							ActionViewPullRequest,
							ActionClosePullRequest,
							ActionMergePullRequest,
							ActionMergePullRequestAndClose,
						)
					} else {
						// A closed or merged PR does not block opening a
						// fresh one for the branch.
						actions = append(actions, ActionCreatePullRequest)
					}
				}
			}
		} else if repo.HasRemote {
			actions = append(actions, ActionPushSetUpstream)
		}
	}

	actions = append(actions, ActionKill)
	if s.Repo != nil && s.Repo.IsWorktree {
		actions = append(actions, ActionKillAndDeleteWorktree)
	}
	return actions, pr
}
