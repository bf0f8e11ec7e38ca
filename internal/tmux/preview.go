package tmux

import "strings"

// CapturePane returns the tail of a pane's visible content. Escape
// sequences are preserved (-e) and wrapped lines are joined (-J). With
// stripEmpty set, blank lines are dropped before taking the last n lines;
// otherwise only trailing blanks are removed so internal spacing survives
// for display.
func CapturePane(socketPath, pane string, n int, stripEmpty bool) (string, error) {
	out, err := output(socketPath, "capture-pane", "-t", pane, "-p", "-J", "-e")
	if err != nil {
		return "", err
	}
	return tailLines(out, n, stripEmpty), nil
}

func tailLines(content string, n int, stripEmpty bool) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if stripEmpty {
		kept := lines[:0]
		for _, line := range lines {
			if strings.TrimSpace(line) != "" {
				kept = append(kept, line)
			}
		}
		lines = kept
	} else {
		for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
			lines = lines[:len(lines)-1]
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
