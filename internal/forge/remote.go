package forge

import (
	"bytes"
	"errors"
	"strings"
)

func runGit(dir string, args ...string) (string, error) {
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

func firstRemote(dir string) string {
	out, err := runGit(dir, "remote")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			return name
		}
	}
	return ""
}

// IsGitHubRemote reports whether dir's first remote points at github.com.
func IsGitHubRemote(dir string) bool {
	remote := firstRemote(dir)
	if remote == "" {
		return false
	}
	url, err := runGit(dir, "remote", "get-url", remote)
	if err != nil {
		return false
	}
	return strings.Contains(url, "github.com")
}

// DefaultBranch resolves the default branch of dir's first remote:
// the remote HEAD ref when known, else a main/master remote-tracking
// branch, else literal "main". Empty when the repository has no remotes.
func DefaultBranch(dir string) string {
	remote := firstRemote(dir)
	if remote == "" {
		return ""
	}
	if ref, err := runGit(dir, "symbolic-ref", "refs/remotes/"+remote+"/HEAD"); err == nil && ref != "" {
		return lastRefSegment(ref)
	}
	for _, name := range []string{"main", "master"} {
		if _, err := runGit(dir, "show-ref", "--verify", "--quiet", "refs/remotes/"+remote+"/"+name); err == nil {
			return name
		}
	}
	return "main"
}

func lastRefSegment(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
