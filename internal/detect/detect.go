// Package detect infers what a Claude pane is doing from its captured
// output. The heuristics key off the prompt box Claude Code draws: a "❯"
// input marker directly under a horizontal border means the prompt is on
// screen, and the "ctrl+c to interrupt" hint distinguishes an in-flight
// response from an idle prompt.
package detect

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/claude-tmux/internal/session"
)

// Status classifies captured pane content. Escape sequences are stripped
// first so captures taken with -e still match.
func Status(content string) session.Status {
	content = ansi.Strip(content)
	if hasInputField(content) {
		if strings.Contains(content, "ctrl+c") && strings.Contains(content, "to interrupt") {
			return session.StatusWorking
		}
		return session.StatusIdle
	}
	if strings.Contains(content, "[y/n]") || strings.Contains(content, "[Y/n]") || strings.Contains(content, "Do you want") {
		return session.StatusWaitingInput
	}
	return session.StatusUnknown
}

// hasInputField reports whether some line contains the "❯" prompt marker
// with a box border on the line directly above it.
func hasInputField(content string) bool {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !strings.ContainsRune(line, '❯') {
			continue
		}
		if i > 0 && strings.ContainsRune(lines[i-1], '─') {
			return true
		}
	}
	return false
}
