package events

import "github.com/atomicstack/claude-tmux/internal/logging"

type GitTracer struct{}

var Git = GitTracer{}

func (GitTracer) Stage(path string) {
	logging.Trace("git.stage", map[string]interface{}{"path": path})
}

func (GitTracer) Commit(path string) {
	logging.Trace("git.commit", map[string]interface{}{"path": path})
}

func (GitTracer) Push(path string, setUpstream bool) {
	logging.Trace("git.push", map[string]interface{}{"path": path, "set_upstream": setUpstream})
}

func (GitTracer) Fetch(path string) {
	logging.Trace("git.fetch", map[string]interface{}{"path": path})
}

func (GitTracer) Pull(path string) {
	logging.Trace("git.pull", map[string]interface{}{"path": path})
}

func (GitTracer) WorktreeCreate(repo, branch, path string, newBranch bool) {
	logging.Trace("git.worktree.create", map[string]interface{}{
		"repo":   repo,
		"branch": branch,
		"path":   path,
		"new":    newBranch,
	})
}

func (GitTracer) WorktreeDelete(path string, force bool) {
	logging.Trace("git.worktree.delete", map[string]interface{}{"path": path, "force": force})
}
