package menu

import (
	"reflect"
	"testing"
)

func TestSanitizeBranch(t *testing.T) {
	tests := []struct {
		branch string
		want   string
	}{
		{"feature/new-thing", "new-thing"},
		{"main", "main"},
		{"fix.bug", "fix-bug"},
		{"a b:c", "a-b-c"},
		{"release/v1.2", "v1-2"},
		{"user/nested/branch", "branch"},
		{"back\\slash", "back-slash"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := SanitizeBranch(tc.branch); got != tc.want {
			t.Errorf("SanitizeBranch(%q) = %q, want %q", tc.branch, got, tc.want)
		}
	}
}

func TestWorktreePath(t *testing.T) {
	tests := []struct {
		repo   string
		branch string
		want   string
	}{
		{"/home/u/repos/project", "feature/foo", "/home/u/repos/project-foo"},
		{"/home/u/repos/project", "main", "/home/u/repos/project-main"},
		{"/srv/app", "release/v2.0", "/srv/app-v2-0"},
	}
	for _, tc := range tests {
		if got := WorktreePath(tc.repo, tc.branch); got != tc.want {
			t.Errorf("WorktreePath(%q, %q) = %q, want %q", tc.repo, tc.branch, got, tc.want)
		}
	}
}

func TestSessionNameFor(t *testing.T) {
	if got := SessionNameFor("/home/u/proj", "feature/login"); got != "proj-login" {
		t.Fatalf("got %q", got)
	}
	if got := SessionNameFor("/home/u/proj", "main"); got != "proj-main" {
		t.Fatalf("got %q", got)
	}
}

func TestFilterBranches(t *testing.T) {
	branches := []string{"main", "Feature/Login", "feature/logout", "hotfix"}

	if got := FilterBranches(branches, ""); !reflect.DeepEqual(got, branches) {
		t.Fatalf("empty input: %v", got)
	}
	if got := FilterBranches(branches, "LOG"); !reflect.DeepEqual(got, []string{"Feature/Login", "feature/logout"}) {
		t.Fatalf("case-insensitive: %v", got)
	}
	if got := FilterBranches(branches, "zzz"); got != nil {
		t.Fatalf("no matches: %v", got)
	}
}
