package session

import (
	"testing"
	"time"
)

func TestStatusSymbolsAndLabels(t *testing.T) {
	cases := []struct {
		status Status
		symbol string
		label  string
	}{
		{StatusWorking, "●", "Working"},
		{StatusWaitingInput, "◐", "Waiting"},
		{StatusIdle, "○", "Idle"},
		{StatusUnknown, "·", "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.status.Symbol(); got != tc.symbol {
			t.Errorf("%s symbol = %q, want %q", tc.label, got, tc.symbol)
		}
		if got := tc.status.Label(); got != tc.label {
			t.Errorf("label = %q, want %q", got, tc.label)
		}
	}
}

func TestDisplayPathAbbreviatesHome(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	cases := []struct {
		wd   string
		want string
	}{
		{"/home/alice/projects/api", "~/projects/api"},
		{"/home/alice", "~"},
		{"/home/alicette/projects", "/home/alicette/projects"},
		{"/tmp/scratch", "/tmp/scratch"},
		{"", ""},
	}
	for _, tc := range cases {
		s := Session{WorkingDirectory: tc.wd}
		if got := s.DisplayPath(); got != tc.want {
			t.Errorf("DisplayPath(%q) = %q, want %q", tc.wd, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{42 * time.Second, "42s"},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m"},
		{45 * time.Minute, "45m"},
		{2*time.Hour + 30*time.Minute, "2h"},
		{26 * time.Hour, "1d"},
		{73 * time.Hour, "3d"},
		{-5 * time.Second, "0s"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.d); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestSortAttachedFirstThenName(t *testing.T) {
	sessions := []Session{
		{Name: "zeta"},
		{Name: "mike", Attached: true},
		{Name: "alpha"},
		{Name: "echo", Attached: true},
	}
	Sort(sessions)
	want := []string{"echo", "mike", "alpha", "zeta"}
	for i, name := range want {
		if sessions[i].Name != name {
			t.Fatalf("sessions[%d] = %q, want %q", i, sessions[i].Name, name)
		}
	}
}

func TestCountStatusesIgnoresUnknown(t *testing.T) {
	sessions := []Session{
		{ClaudeStatus: StatusWorking},
		{ClaudeStatus: StatusWorking},
		{ClaudeStatus: StatusWaitingInput},
		{ClaudeStatus: StatusIdle},
		{ClaudeStatus: StatusUnknown},
	}
	counts := CountStatuses(sessions)
	if counts.Working != 2 || counts.Waiting != 1 || counts.Idle != 1 {
		t.Fatalf("counts = %+v, want {Working:2 Waiting:1 Idle:1}", counts)
	}
}

func TestRepoDirty(t *testing.T) {
	if (Repo{}).Dirty() {
		t.Fatal("clean repo reported dirty")
	}
	if !(Repo{HasStaged: true}).Dirty() {
		t.Fatal("staged repo reported clean")
	}
	if !(Repo{HasUnstaged: true}).Dirty() {
		t.Fatal("unstaged repo reported clean")
	}
}
