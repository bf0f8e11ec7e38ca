package backend

import (
	"testing"
	"time"

	"github.com/atomicstack/claude-tmux/internal/session"
)

func TestAgentPane(t *testing.T) {
	tests := []struct {
		name  string
		panes []session.Pane
		want  string
	}{
		{
			name: "exact command",
			panes: []session.Pane{
				{ID: "%0", Command: "zsh"},
				{ID: "%1", Command: "claude"},
			},
			want: "%1",
		},
		{
			name: "wrapper command",
			panes: []session.Pane{
				{ID: "%0", Command: "claude-code"},
			},
			want: "%0",
		},
		{
			name: "first match wins",
			panes: []session.Pane{
				{ID: "%2", Command: "claude"},
				{ID: "%3", Command: "claude"},
			},
			want: "%2",
		},
		{
			name: "no agent",
			panes: []session.Pane{
				{ID: "%0", Command: "vim"},
				{ID: "%1", Command: "bash"},
			},
			want: "",
		},
		{
			name: "empty",
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pane := agentPane(tc.panes)
			if tc.want == "" {
				if pane != nil {
					t.Fatalf("expected no agent pane, got %v", pane)
				}
				return
			}
			if pane == nil || pane.ID != tc.want {
				t.Fatalf("agentPane = %v, want ID %q", pane, tc.want)
			}
		})
	}
}

func TestWorkingDirectory(t *testing.T) {
	tests := []struct {
		name  string
		panes []session.Pane
		want  string
	}{
		{
			name: "agent pane path preferred",
			panes: []session.Pane{
				{ID: "%0", Command: "zsh", Path: "/home/u"},
				{ID: "%1", Command: "claude", Path: "/home/u/proj"},
			},
			want: "/home/u/proj",
		},
		{
			name: "first pane fallback",
			panes: []session.Pane{
				{ID: "%0", Command: "zsh", Path: "/home/u"},
				{ID: "%1", Command: "vim", Path: "/tmp"},
			},
			want: "/home/u",
		},
		{
			name: "agent pane without path falls back",
			panes: []session.Pane{
				{ID: "%0", Command: "zsh", Path: "/home/u"},
				{ID: "%1", Command: "claude", Path: ""},
			},
			want: "/home/u",
		},
		{
			name: "no panes",
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := workingDirectory(tc.panes); got != tc.want {
				t.Fatalf("workingDirectory = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(30 * time.Millisecond)
	start := time.Now()
	th.wait()
	th.wait()
	th.wait()
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Fatalf("three waits finished in %v, want >= 60ms", elapsed)
	}
}

func TestThrottleZeroIntervalNeverBlocks(t *testing.T) {
	th := newThrottle(0)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			th.wait()
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("zero-interval throttle blocked")
	}
}
