// Package session defines the data model for tmux sessions as shown on the
// dashboard: the session itself, its panes, the state of any Claude pane,
// and the git context of its working directory.
package session

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Status classifies what a session's Claude pane is doing, judged from the
// pane's visible output.
type Status int

const (
	StatusUnknown Status = iota
	StatusWorking
	StatusWaitingInput
	StatusIdle
)

// Symbol returns the one-cell marker shown in the session list.
func (s Status) Symbol() string {
	switch s {
	case StatusWorking:
		return "●"
	case StatusWaitingInput:
		return "◐"
	case StatusIdle:
		return "○"
	default:
		return "·"
	}
}

// Label returns the human-readable form shown next to the symbol.
func (s Status) Label() string {
	switch s {
	case StatusWorking:
		return "Working"
	case StatusWaitingInput:
		return "Waiting"
	case StatusIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Pane is a single tmux pane inside a session.
type Pane struct {
	ID      string
	Command string
	Path    string
}

// Repo captures the git state of a session's working directory at the time
// the session list was collected.
type Repo struct {
	Branch       string
	HasStaged    bool
	HasUnstaged  bool
	IsWorktree   bool
	MainRepoPath string
	HasRemote    bool
	HasUpstream  bool
	Ahead        int
	Behind       int
}

// Dirty reports whether the working tree has staged or unstaged changes.
func (r Repo) Dirty() bool {
	return r.HasStaged || r.HasUnstaged
}

// Session is one tmux session together with everything the dashboard shows
// about it. Repo is nil when the working directory is not inside a git
// repository.
type Session struct {
	Name             string
	Created          time.Time
	Attached         bool
	Windows          int
	WorkingDirectory string
	Panes            []Pane
	ClaudePane       string
	ClaudeStatus     Status
	Repo             *Repo
}

// DisplayPath returns the working directory with the home directory
// abbreviated to "~".
func (s Session) DisplayPath() string {
	wd := s.WorkingDirectory
	if wd == "" {
		return ""
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return wd
	}
	if wd == home {
		return "~"
	}
	if strings.HasPrefix(wd, home+"/") {
		return "~" + wd[len(home):]
	}
	return wd
}

// Uptime formats how long the session has existed relative to now.
func (s Session) Uptime(now time.Time) string {
	return FormatDuration(now.Sub(s.Created))
}

// FormatDuration renders a duration with its largest whole unit, "42s"
// through "3d".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch secs := int64(d.Seconds()); {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 60*60:
		return fmt.Sprintf("%dm", secs/60)
	case secs < 24*60*60:
		return fmt.Sprintf("%dh", secs/(60*60))
	default:
		return fmt.Sprintf("%dd", secs/(24*60*60))
	}
}

// Sort orders sessions attached-first, then by name.
func Sort(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Attached != sessions[j].Attached {
			return sessions[i].Attached
		}
		return sessions[i].Name < sessions[j].Name
	})
}

// StatusCounts aggregates Claude pane states across sessions.
type StatusCounts struct {
	Working int
	Waiting int
	Idle    int
}

// CountStatuses tallies the Claude pane state of every session, independent
// of any filter applied to the visible list.
func CountStatuses(sessions []Session) StatusCounts {
	var counts StatusCounts
	for _, s := range sessions {
		switch s.ClaudeStatus {
		case StatusWorking:
			counts.Working++
		case StatusWaitingInput:
			counts.Waiting++
		case StatusIdle:
			counts.Idle++
		}
	}
	return counts
}
