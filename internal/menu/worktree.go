package menu

import (
	"path/filepath"
	"strings"
)

var branchSanitizer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	" ", "-",
	":", "-",
	".", "-",
)

// SanitizeBranch reduces a branch name to its last path segment with
// filesystem-unfriendly characters replaced, "feature/new-thing" ->
// "new-thing".
func SanitizeBranch(branch string) string {
	seg := branch
	if i := strings.LastIndex(branch, "/"); i >= 0 {
		seg = branch[i+1:]
	}
	return branchSanitizer.Replace(seg)
}

// WorktreePath proposes a sibling directory of the repository named after
// it and the branch: ~/repos/project + feature/foo -> ~/repos/project-foo.
func WorktreePath(repoPath, branch string) string {
	parent := filepath.Dir(repoPath)
	return filepath.Join(parent, SessionNameFor(repoPath, branch))
}

// SessionNameFor derives the session name for a worktree checkout,
// "<repo>-<sanitized-branch-suffix>".
func SessionNameFor(repoPath, branch string) string {
	return filepath.Base(repoPath) + "-" + SanitizeBranch(branch)
}

// FilterBranches keeps branches whose name contains the input,
// case-insensitively. Empty input keeps everything.
func FilterBranches(branches []string, input string) []string {
	if input == "" {
		return branches
	}
	needle := strings.ToLower(input)
	var out []string
	for _, b := range branches {
		if strings.Contains(strings.ToLower(b), needle) {
			out = append(out, b)
		}
	}
	return out
}
