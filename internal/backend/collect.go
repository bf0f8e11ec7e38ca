package backend

import (
	"strings"

	"github.com/atomicstack/claude-tmux/internal/detect"
	"github.com/atomicstack/claude-tmux/internal/git"
	"github.com/atomicstack/claude-tmux/internal/logging/events"
	"github.com/atomicstack/claude-tmux/internal/session"
	"github.com/atomicstack/claude-tmux/internal/tmux"
)

// detectLines bounds how much pane output the status heuristic examines.
const detectLines = 15

// Snapshot is a complete view of the tmux server collected in one pass.
type Snapshot struct {
	Sessions []session.Session
	Current  string
}

// Collect lists every session and enriches each with its panes, the state
// of any Claude pane, and the git context of its working directory. A
// session that disappears mid-collection degrades to its bare listing
// instead of failing the snapshot.
func Collect(socketPath string) (Snapshot, error) {
	infos, err := tmux.ListSessions(socketPath)
	if err != nil {
		return Snapshot{}, err
	}
	sessions := make([]session.Session, 0, len(infos))
	for _, info := range infos {
		sessions = append(sessions, collectSession(socketPath, info))
	}
	session.Sort(sessions)
	events.Session.Refresh(len(sessions))
	return Snapshot{
		Sessions: sessions,
		Current:  tmux.CurrentSession(socketPath),
	}, nil
}

func collectSession(socketPath string, info tmux.SessionInfo) session.Session {
	s := session.Session{
		Name:     info.Name,
		Created:  info.Created,
		Attached: info.Attached,
		Windows:  info.Windows,
	}
	panes, err := tmux.ListPanes(socketPath, info.Name)
	if err != nil {
		return s
	}
	s.Panes = panes
	s.WorkingDirectory = workingDirectory(panes)
	if pane := agentPane(panes); pane != nil {
		s.ClaudePane = pane.ID
		s.ClaudeStatus = paneStatus(socketPath, pane.ID)
	}
	if s.WorkingDirectory != "" {
		s.Repo = git.Probe(s.WorkingDirectory)
	}
	return s
}

// agentPane returns the first pane running Claude, matched on the pane
// command so wrapper invocations like "claude-code" still count.
func agentPane(panes []session.Pane) *session.Pane {
	for i := range panes {
		if strings.Contains(panes[i].Command, "claude") {
			return &panes[i]
		}
	}
	return nil
}

// workingDirectory prefers the Claude pane's path so the git context
// tracks the agent, falling back to the session's first pane.
func workingDirectory(panes []session.Pane) string {
	if pane := agentPane(panes); pane != nil && pane.Path != "" {
		return pane.Path
	}
	if len(panes) > 0 {
		return panes[0].Path
	}
	return ""
}

func paneStatus(socketPath, pane string) session.Status {
	content, err := tmux.CapturePane(socketPath, pane, detectLines, true)
	if err != nil {
		return session.StatusUnknown
	}
	return detect.Status(content)
}
