// Package forge talks to GitHub through the gh CLI. Everything runs with
// the session's working directory so gh resolves the repository and branch
// the same way the user's own shell would.
package forge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"os/exec"
)

var execCommand = exec.Command

// Available reports whether gh is installed and authenticated. The probe
// runs two commands, so it is computed once per process; tests inject their
// own answer instead of calling this.
var Available = sync.OnceValue(func() bool {
	if err := execCommand("gh", "--version").Run(); err != nil {
		return false
	}
	return execCommand("gh", "auth", "status").Run() == nil
})

// PullRequest is the slice of `gh pr view --json` the dashboard shows.
// State is OPEN, CLOSED, or MERGED; Mergeable is MERGEABLE, CONFLICTING,
// or UNKNOWN.
type PullRequest struct {
	Number    int    `json:"number"`
	URL       string `json:"url"`
	State     string `json:"state"`
	Mergeable string `json:"mergeable"`
}

func runGH(dir string, args ...string) (string, error) {
	cmd := execCommand("gh", args...)
	cmd.Dir = dir
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

// LookupPR returns the pull request for the branch checked out in dir, or
// nil when there is none (or gh is unavailable). gh failures mean "no PR",
// never an error.
func LookupPR(dir string) *PullRequest {
	if !Available() {
		return nil
	}
	out, err := runGH(dir, "pr", "view", "--json", "number,url,state,mergeable")
	if err != nil {
		return nil
	}
	return decodePR(out)
}

func decodePR(out string) *PullRequest {
	var pr PullRequest
	if err := json.Unmarshal([]byte(out), &pr); err != nil {
		return nil
	}
	if pr.Mergeable == "" {
		pr.Mergeable = "UNKNOWN"
	}
	return &pr
}

// CreatePR opens a pull request for the branch checked out in dir and
// returns its URL. The body is always passed, even when empty.
func CreatePR(dir, title, body, base string) (string, error) {
	if !Available() {
		return "", errors.New("GitHub CLI (gh) is not available or not authenticated")
	}
	out, err := runGH(dir, "pr", "create", "--title", title, "--base", base, "--body", body)
	if err != nil {
		return "", fmt.Errorf("gh pr create failed: %s", err)
	}
	return strings.TrimSpace(out), nil
}

// ViewPR opens the branch's pull request in the browser.
func ViewPR(dir string) error {
	if _, err := runGH(dir, "pr", "view", "--web"); err != nil {
		return fmt.Errorf("gh pr view failed: %s", err)
	}
	return nil
}

// MergePR merges the branch's pull request with a merge commit.
func MergePR(dir string) error {
	if _, err := runGH(dir, "pr", "merge", "--merge"); err != nil {
		return fmt.Errorf("gh pr merge failed: %s", err)
	}
	return nil
}

// ClosePR closes the branch's pull request without merging.
func ClosePR(dir string) error {
	if _, err := runGH(dir, "pr", "close"); err != nil {
		return fmt.Errorf("gh pr close failed: %s", err)
	}
	return nil
}
