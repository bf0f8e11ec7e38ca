// Package git reads and mutates repository state by shelling out to the
// git CLI, the same commands a user would run by hand. Failures carry
// git's own stderr text so they can surface in the UI unchanged.
package git

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/claude-tmux/internal/session"
)

var execCommand = exec.Command

// run executes git -C dir with args and returns trimmed stdout. On failure
// the error text is the trimmed stderr when git produced any.
func run(dir string, args ...string) (string, error) {
	cmd := execCommand("git", append([]string{"-C", dir}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.New(msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Probe returns the git state of dir, or nil when dir is not inside a
// working tree. Every field is best-effort: a failing sub-query leaves its
// zero value rather than failing the whole probe.
func Probe(dir string) *session.Repo {
	if dir == "" {
		return nil
	}
	if out, err := run(dir, "rev-parse", "--is-inside-work-tree"); err != nil || out != "true" {
		return nil
	}
	repo := &session.Repo{Branch: CurrentBranch(dir)}

	if porcelain, err := run(dir, "status", "--porcelain"); err == nil {
		repo.HasStaged, repo.HasUnstaged = parsePorcelain(porcelain)
	}

	gitDir, errA := run(dir, "rev-parse", "--git-dir")
	commonDir, errB := run(dir, "rev-parse", "--git-common-dir")
	if errA == nil && errB == nil && gitDir != commonDir {
		repo.IsWorktree = true
		repo.MainRepoPath = mainRepoPath(commonDir)
	}

	if remotes, err := run(dir, "remote"); err == nil && remotes != "" {
		repo.HasRemote = true
	}
	if _, err := run(dir, "rev-parse", "--abbrev-ref", "@{upstream}"); err == nil {
		repo.HasUpstream = true
		if counts, err := run(dir, "rev-list", "--left-right", "--count", "HEAD...@{upstream}"); err == nil {
			repo.Ahead, repo.Behind = parseAheadBehind(counts)
		}
	}
	return repo
}

// CurrentBranch returns the checked-out branch name, the 7-character short
// hash when HEAD is detached, or "HEAD" when even that fails.
func CurrentBranch(dir string) string {
	if branch, err := run(dir, "symbolic-ref", "--short", "-q", "HEAD"); err == nil && branch != "" {
		return branch
	}
	if hash, err := run(dir, "rev-parse", "--short=7", "HEAD"); err == nil && hash != "" {
		return hash
	}
	return "HEAD"
}

// FirstRemote returns the first configured remote name.
func FirstRemote(dir string) (string, error) {
	out, err := run(dir, "remote")
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
	}
	return "", errors.New("no remotes configured")
}

// parsePorcelain reads `status --porcelain` output. The index column (X)
// marks staged work; the worktree column (Y) and untracked entries mark
// unstaged work.
func parsePorcelain(out string) (staged, unstaged bool) {
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 2 {
			continue
		}
		x, y := line[0], line[1]
		if x == '?' || y == '?' {
			unstaged = true
			continue
		}
		if x != ' ' {
			staged = true
		}
		if y != ' ' {
			unstaged = true
		}
	}
	return staged, unstaged
}

// parseAheadBehind reads `rev-list --left-right --count HEAD...@{upstream}`
// output: commits only on HEAD, a tab, commits only on upstream.
func parseAheadBehind(out string) (ahead, behind int) {
	parts := strings.Fields(out)
	if len(parts) != 2 {
		return 0, 0
	}
	ahead, _ = strconv.Atoi(parts[0])
	behind, _ = strconv.Atoi(parts[1])
	return ahead, behind
}

// mainRepoPath maps a worktree's common git dir (".../repo/.git") to the
// main repository root.
func mainRepoPath(commonDir string) string {
	if filepath.Base(commonDir) == ".git" {
		return filepath.Dir(commonDir)
	}
	return commonDir
}
