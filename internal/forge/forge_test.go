package forge

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	testutil "github.com/atomicstack/claude-tmux/internal/testutil"
)

func TestDecodePR(t *testing.T) {
	out := `{"number":42,"url":"https://github.com/acme/api/pull/42","state":"OPEN","mergeable":"MERGEABLE"}`
	pr := decodePR(out)
	if pr == nil {
		t.Fatal("decodePR returned nil")
	}
	if pr.Number != 42 || pr.State != "OPEN" || pr.Mergeable != "MERGEABLE" {
		t.Errorf("pr = %+v", pr)
	}
	if pr.URL != "https://github.com/acme/api/pull/42" {
		t.Errorf("URL = %q", pr.URL)
	}
}

func TestDecodePRDefaultsMergeable(t *testing.T) {
	pr := decodePR(`{"number":7,"state":"MERGED","mergeable":""}`)
	if pr == nil {
		t.Fatal("decodePR returned nil")
	}
	if pr.Mergeable != "UNKNOWN" {
		t.Errorf("Mergeable = %q, want UNKNOWN", pr.Mergeable)
	}
}

func TestDecodePRBadJSON(t *testing.T) {
	if pr := decodePR("no pull requests found"); pr != nil {
		t.Errorf("decodePR of non-JSON = %+v, want nil", pr)
	}
}

func TestLastRefSegment(t *testing.T) {
	cases := map[string]string{
		"refs/remotes/origin/main":        "main",
		"refs/remotes/origin/release/2.0": "2.0",
		"main":                            "main",
	}
	for in, want := range cases {
		if got := lastRefSegment(in); got != want {
			t.Errorf("lastRefSegment(%q) = %q, want %q", in, got, want)
		}
	}
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, args := range [][]string{
		{"init"},
		{"config", "user.name", "test"},
		{"config", "user.email", "test@example.com"},
	} {
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, args := range [][]string{{"add", "-A"}, {"commit", "-m", "initial"}} {
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
	return dir
}

func addRemote(t *testing.T, dir, name, url string) {
	t.Helper()
	cmd := exec.Command("git", "-C", dir, "remote", "add", name, url)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("remote add: %v\n%s", err, out)
	}
}

func TestIsGitHubRemoteIntegration(t *testing.T) {
	testutil.RequireGit(t)

	dir := initRepo(t)
	if IsGitHubRemote(dir) {
		t.Error("IsGitHubRemote = true with no remotes")
	}

	https := initRepo(t)
	addRemote(t, https, "origin", "https://github.com/acme/api.git")
	if !IsGitHubRemote(https) {
		t.Error("IsGitHubRemote = false for https github URL")
	}

	ssh := initRepo(t)
	addRemote(t, ssh, "origin", "git@github.com:acme/api.git")
	if !IsGitHubRemote(ssh) {
		t.Error("IsGitHubRemote = false for ssh github URL")
	}

	other := initRepo(t)
	addRemote(t, other, "origin", "https://gitlab.com/acme/api.git")
	if IsGitHubRemote(other) {
		t.Error("IsGitHubRemote = true for gitlab URL")
	}
}

func TestDefaultBranchIntegration(t *testing.T) {
	testutil.RequireGit(t)

	dir := initRepo(t)
	if got := DefaultBranch(dir); got != "" {
		t.Errorf("DefaultBranch with no remote = %q, want empty", got)
	}

	addRemote(t, dir, "origin", "https://github.com/acme/api.git")
	// Remote configured but nothing fetched: fall through to literal main.
	if got := DefaultBranch(dir); got != "main" {
		t.Errorf("DefaultBranch fallback = %q, want main", got)
	}
}
