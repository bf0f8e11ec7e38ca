package menu

import (
	"strings"
	"testing"

	"github.com/atomicstack/claude-tmux/internal/session"
)

func TestConfirmRenameNoOp(t *testing.T) {
	r := newRecorder()
	res := ConfirmRename(r.deps(), "alpha", "alpha")
	if res != (ActionResult{}) {
		t.Fatalf("result = %+v, want zero", res)
	}
	if len(r.calls) != 0 {
		t.Fatalf("no-op rename must not call tmux, got %v", r.calls)
	}
}

func TestConfirmRename(t *testing.T) {
	r := newRecorder()
	res := ConfirmRename(r.deps(), "alpha", "beta")
	if res.Info != "Renamed 'alpha' to 'beta'" || !res.Refresh {
		t.Fatalf("result = %+v", res)
	}
	r.assertCalls(t, "rename alpha beta")

	r = newRecorder("rename")
	res = ConfirmRename(r.deps(), "alpha", "beta")
	if res.Err == nil || !strings.HasPrefix(res.Err.Error(), "Failed to rename: ") {
		t.Fatalf("Err = %v", res.Err)
	}
	if res.Refresh {
		t.Fatal("failed rename must not refresh")
	}
}

func TestConfirmCommitValidation(t *testing.T) {
	r := newRecorder()
	for _, message := range []string{"", "   ", "\t\n"} {
		res := ConfirmCommit(r.deps(), "/p", message)
		if res.Err == nil || res.Err.Error() != "Commit message cannot be empty" {
			t.Fatalf("message %q: Err = %v", message, res.Err)
		}
	}
	if len(r.calls) != 0 {
		t.Fatalf("validation failures must not touch git, got %v", r.calls)
	}
}

func TestConfirmCommit(t *testing.T) {
	r := newRecorder()
	res := ConfirmCommit(r.deps(), "/p", "fix parser")
	if res.Info != "Committed changes" || !res.Refresh {
		t.Fatalf("result = %+v", res)
	}
	r.assertCalls(t, "commit fix parser")

	r = newRecorder("commit")
	res = ConfirmCommit(r.deps(), "/p", "fix parser")
	if res.Err == nil || !strings.HasPrefix(res.Err.Error(), "Commit failed: ") {
		t.Fatalf("Err = %v", res.Err)
	}
}

func TestConfirmNewSessionValidation(t *testing.T) {
	r := newRecorder()
	res := ConfirmNewSession(r.deps(), "", "/tmp", true)
	if res.Err == nil || res.Err.Error() != "Session name cannot be empty" {
		t.Fatalf("Err = %v", res.Err)
	}
	if len(r.calls) != 0 {
		t.Fatalf("unexpected calls %v", r.calls)
	}
}

func TestConfirmNewSession(t *testing.T) {
	r := newRecorder()
	res := ConfirmNewSession(r.deps(), "scratch", "/tmp/work", false)
	if res.Info != "Created session 'scratch'" || !res.Refresh {
		t.Fatalf("result = %+v", res)
	}
	r.assertCalls(t, "new-session scratch /tmp/work agent=false")

	r = newRecorder("new-session")
	res = ConfirmNewSession(r.deps(), "scratch", "/tmp/work", true)
	if res.Err == nil || !strings.HasPrefix(res.Err.Error(), "Failed to create session: ") {
		t.Fatalf("Err = %v", res.Err)
	}
}

func TestConfirmNewWorktreeValidationOrder(t *testing.T) {
	r := newRecorder()

	res := ConfirmNewWorktree(r.deps(), WorktreeRequest{SelectedIdx: -1})
	if res.Err == nil || res.Err.Error() != "Branch name cannot be empty" {
		t.Fatalf("Err = %v", res.Err)
	}

	res = ConfirmNewWorktree(r.deps(), WorktreeRequest{BranchInput: "b", SelectedIdx: -1})
	if res.Err == nil || res.Err.Error() != "Session name cannot be empty" {
		t.Fatalf("Err = %v", res.Err)
	}

	res = ConfirmNewWorktree(r.deps(), WorktreeRequest{
		BranchInput: "b", SelectedIdx: -1, SessionName: "s",
	})
	if res.Err == nil || res.Err.Error() != "Worktree path cannot be empty" {
		t.Fatalf("Err = %v", res.Err)
	}

	if len(r.calls) != 0 {
		t.Fatalf("validation failures must not touch git, got %v", r.calls)
	}
}

func TestConfirmNewWorktreeHighlightSatisfiesBranchCheck(t *testing.T) {
	// An empty input with a highlighted suggestion is a valid branch choice.
	r := newRecorder()
	res := ConfirmNewWorktree(r.deps(), WorktreeRequest{
		SourceRepo:   "/home/u/proj",
		AllBranches:  []string{"main", "feature/x"},
		BranchInput:  "",
		SelectedIdx:  1,
		WorktreePath: "/home/u/proj-x",
		SessionName:  "proj-x",
	})
	if res.Err != nil {
		t.Fatalf("Err = %v", res.Err)
	}
	r.assertCalls(t,
		"create-worktree /home/u/proj-x feature/x new=false",
		"new-session proj-x /home/u/proj-x agent=true",
	)
}

func TestConfirmNewWorktreeSuccess(t *testing.T) {
	r := newRecorder()
	res := ConfirmNewWorktree(r.deps(), WorktreeRequest{
		SourceRepo:   "/home/u/proj",
		AllBranches:  []string{"main"},
		BranchInput:  "feature/login",
		SelectedIdx:  -1,
		WorktreePath: "/home/u/proj-login",
		SessionName:  "proj-login",
	})
	if res.Info != "Created worktree 'feature/login' and session 'proj-login'" || !res.Refresh {
		t.Fatalf("result = %+v", res)
	}
	r.assertCalls(t,
		"create-worktree /home/u/proj-login feature/login new=true",
		"new-session proj-login /home/u/proj-login agent=true",
	)
}

func TestConfirmNewWorktreePartialFailure(t *testing.T) {
	r := newRecorder("new-session")
	res := ConfirmNewWorktree(r.deps(), WorktreeRequest{
		SourceRepo:   "/home/u/proj",
		AllBranches:  []string{"main"},
		BranchInput:  "main",
		SelectedIdx:  -1,
		WorktreePath: "/home/u/proj-main",
		SessionName:  "proj-main",
	})
	if res.Err == nil || !strings.HasPrefix(res.Err.Error(), "Worktree created but session creation failed: ") {
		t.Fatalf("Err = %v", res.Err)
	}
	if res.Refresh {
		t.Fatal("partial failure must not refresh")
	}
}

func TestConfirmNewWorktreeCreateFailure(t *testing.T) {
	r := newRecorder("create-worktree")
	res := ConfirmNewWorktree(r.deps(), WorktreeRequest{
		SourceRepo:   "/home/u/proj",
		AllBranches:  []string{"main"},
		BranchInput:  "topic",
		SelectedIdx:  -1,
		WorktreePath: "/home/u/proj-topic",
		SessionName:  "proj-topic",
	})
	if res.Err == nil || !strings.HasPrefix(res.Err.Error(), "Failed to create worktree: ") {
		t.Fatalf("Err = %v", res.Err)
	}
	// The session must never be created after a failed worktree.
	r.assertCalls(t, "create-worktree /home/u/proj-topic topic new=true")
}

func TestResolveBranch(t *testing.T) {
	branches := []string{"main", "feature/login", "feature/logout"}

	t.Run("highlighted suggestion wins", func(t *testing.T) {
		// Input "log" filters to the two feature branches; index 1 picks
		// logout even though "log" matches nothing exactly.
		branch, newBranch := ResolveBranch(branches, "log", 1)
		if branch != "feature/logout" || newBranch {
			t.Fatalf("got %q new=%v", branch, newBranch)
		}
	})

	t.Run("highlight beats exact match", func(t *testing.T) {
		branch, newBranch := ResolveBranch(branches, "main", 0)
		if branch != "main" || newBranch {
			t.Fatalf("got %q new=%v", branch, newBranch)
		}
	})

	t.Run("exact match uses existing", func(t *testing.T) {
		branch, newBranch := ResolveBranch(branches, "feature/login", -1)
		if branch != "feature/login" || newBranch {
			t.Fatalf("got %q new=%v", branch, newBranch)
		}
	})

	t.Run("no match creates new", func(t *testing.T) {
		branch, newBranch := ResolveBranch(branches, "hotfix", -1)
		if branch != "hotfix" || !newBranch {
			t.Fatalf("got %q new=%v", branch, newBranch)
		}
	})

	t.Run("stale index falls back to input as existing", func(t *testing.T) {
		branch, newBranch := ResolveBranch(branches, "main", 99)
		if branch != "main" || newBranch {
			t.Fatalf("got %q new=%v", branch, newBranch)
		}
	})

	t.Run("case-sensitive exact match", func(t *testing.T) {
		branch, newBranch := ResolveBranch(branches, "MAIN", -1)
		if branch != "MAIN" || !newBranch {
			t.Fatalf("got %q new=%v", branch, newBranch)
		}
	})
}

func TestConfirmCreatePR(t *testing.T) {
	r := newRecorder()
	res := ConfirmCreatePR(r.deps(), "/p", "Add login", "body text", "main")
	if res.Info != "Created PR: https://github.com/u/r/pull/7" {
		t.Fatalf("Info = %q", res.Info)
	}
	if res.Refresh {
		t.Fatal("creating a PR must not refresh the session list")
	}
	r.assertCalls(t, `create-pr "Add login" base=main`)

	r = newRecorder()
	res = ConfirmCreatePR(r.deps(), "/p", "   ", "", "main")
	if res.Err == nil || res.Err.Error() != "PR title cannot be empty" {
		t.Fatalf("Err = %v", res.Err)
	}

	r = newRecorder("create-pr")
	res = ConfirmCreatePR(r.deps(), "/p", "Add login", "", "main")
	if res.Err == nil || !strings.HasPrefix(res.Err.Error(), "Failed to create PR: ") {
		t.Fatalf("Err = %v", res.Err)
	}
}

func TestWorktreeSource(t *testing.T) {
	if got := WorktreeSource(nil); got != "" {
		t.Fatalf("nil session: %q", got)
	}
	if got := WorktreeSource(&session.Session{WorkingDirectory: "/p"}); got != "" {
		t.Fatalf("no repo: %q", got)
	}
	plain := &session.Session{
		WorkingDirectory: "/home/u/proj",
		Repo:             &session.Repo{Branch: "main"},
	}
	if got := WorktreeSource(plain); got != "/home/u/proj" {
		t.Fatalf("plain checkout: %q", got)
	}
	wt := &session.Session{
		WorkingDirectory: "/home/u/proj-x",
		Repo: &session.Repo{
			Branch:       "feature/x",
			IsWorktree:   true,
			MainRepoPath: "/home/u/proj",
		},
	}
	if got := WorktreeSource(wt); got != "/home/u/proj" {
		t.Fatalf("worktree: %q", got)
	}
	orphan := &session.Session{
		WorkingDirectory: "/home/u/proj-x",
		Repo:             &session.Repo{IsWorktree: true},
	}
	if got := WorktreeSource(orphan); got != "/home/u/proj-x" {
		t.Fatalf("worktree without main path: %q", got)
	}
}
