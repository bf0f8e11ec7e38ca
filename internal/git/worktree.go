package git

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ListBranches returns the local branch names of the repository at dir,
// default branch first.
func ListBranches(dir string) ([]string, error) {
	out, err := run(dir, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	SortBranches(names)
	return names, nil
}

// SortBranches orders main first, then master, then the rest
// alphabetically.
func SortBranches(names []string) {
	rank := func(name string) int {
		switch name {
		case "main":
			return 0
		case "master":
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
}

// CreateWorktree adds a worktree of the repository at repo, checked out at
// path. With newBranch set, branch is created from the repository's current
// HEAD; otherwise branch must be an existing local branch that is not
// checked out in the main worktree.
func CreateWorktree(repo, path, branch string, newBranch bool) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("path '%s' already exists", path)
	}
	if newBranch {
		if _, err := run(repo, "worktree", "add", "-b", branch, path); err != nil {
			return fmt.Errorf("failed to create worktree: %s", err)
		}
		return nil
	}
	if _, err := run(repo, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch); err != nil {
		return fmt.Errorf("branch '%s' not found", branch)
	}
	if head, err := run(repo, "symbolic-ref", "--short", "-q", "HEAD"); err == nil && head == branch {
		return fmt.Errorf("branch '%s' is checked out in the main worktree; create a new branch instead, or check out a different branch there first", branch)
	}
	if _, err := run(repo, "worktree", "add", path, branch); err != nil {
		return fmt.Errorf("failed to create worktree: %s (the branch may be checked out in another worktree)", err)
	}
	return nil
}

// DeleteWorktree removes the worktree at path via the main repository.
// Without force, git refuses to remove a worktree with local changes; the
// returned error carries a hint for the common refusals.
func DeleteWorktree(path string, force bool) error {
	gitDir, errA := run(path, "rev-parse", "--git-dir")
	commonDir, errB := run(path, "rev-parse", "--git-common-dir")
	if errA != nil || errB != nil || gitDir == commonDir {
		return fmt.Errorf("'%s' is not a worktree (it may be the main repository)", path)
	}
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	if _, err := run(mainRepoPath(commonDir), args...); err != nil {
		msg := err.Error()
		hint := ""
		switch {
		case strings.Contains(msg, "contains modified or untracked files"):
			hint = " Commit or stash your changes first, or use force delete."
		case strings.Contains(msg, "is locked"):
			hint = fmt.Sprintf(" Unlock it first with: git worktree unlock %s", path)
		}
		return fmt.Errorf("git worktree remove failed: %s.%s", msg, hint)
	}
	return nil
}
