package tmux

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/claude-tmux/internal/session"
)

const (
	sessionFormat = "#{session_name}\t#{session_created}\t#{session_attached}\t#{session_windows}"
	paneFormat    = "#{pane_id}\t#{pane_current_command}\t#{pane_current_path}"
)

// SessionInfo is the raw per-session line from list-sessions, before panes
// and git state are attached.
type SessionInfo struct {
	Name     string
	Created  time.Time
	Attached bool
	Windows  int
}

// ListSessions returns every session on the server. A missing server or a
// server with no sessions is an empty list, not an error.
func ListSessions(socketPath string) ([]SessionInfo, error) {
	out, err := output(socketPath, "list-sessions", "-F", sessionFormat)
	if err != nil {
		if isNoServer(err.Error()) {
			return nil, nil
		}
		return nil, fmt.Errorf("tmux list-sessions failed: %s", err)
	}
	var infos []SessionInfo
	for _, line := range strings.Split(out, "\n") {
		if info, ok := parseSessionLine(line); ok {
			infos = append(infos, info)
		}
	}
	return infos, nil
}

// isNoServer recognises the stderr forms tmux uses when there is nothing
// to list: a stopped server ("no server running on ..."), a server without
// sessions ("no sessions"), and a socket path that was never created
// ("error connecting to <sock> (No such file or directory)").
func isNoServer(msg string) bool {
	return strings.Contains(msg, "no server running") ||
		strings.Contains(msg, "no sessions") ||
		strings.Contains(msg, "error connecting to")
}

func parseSessionLine(line string) (SessionInfo, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return SessionInfo{}, false
	}
	parts := strings.Split(line, "\t")
	if len(parts) < 4 {
		return SessionInfo{}, false
	}
	created, _ := strconv.ParseInt(parts[1], 10, 64)
	attached, _ := strconv.Atoi(parts[2])
	windows, _ := strconv.Atoi(parts[3])
	return SessionInfo{
		Name:     parts[0],
		Created:  time.Unix(created, 0),
		Attached: attached > 0,
		Windows:  windows,
	}, true
}

// ListPanes returns every pane in a session, across all of its windows.
func ListPanes(socketPath, target string) ([]session.Pane, error) {
	out, err := output(socketPath, "list-panes", "-s", "-t", target, "-F", paneFormat)
	if err != nil {
		return nil, err
	}
	var panes []session.Pane
	for _, line := range strings.Split(out, "\n") {
		if pane, ok := parsePaneLine(line); ok {
			panes = append(panes, pane)
		}
	}
	return panes, nil
}

func parsePaneLine(line string) (session.Pane, bool) {
	if strings.TrimSpace(line) == "" {
		return session.Pane{}, false
	}
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 {
		return session.Pane{}, false
	}
	return session.Pane{ID: parts[0], Command: parts[1], Path: parts[2]}, true
}
