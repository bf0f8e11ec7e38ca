// Package tmux drives a tmux server through its CLI. Every call takes the
// server socket path; an empty socket means the default server (or the one
// named by $TMUX when running inside a session).
package tmux

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
)

var execCommand = exec.Command

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

// output runs a tmux command and returns its trimmed stdout. Failures carry
// the trimmed stderr text so callers can surface it directly.
func output(socketPath string, args ...string) (string, error) {
	cmd := execCommand("tmux", append(baseArgs(socketPath), args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.New(msg)
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}

func run(socketPath string, args ...string) error {
	_, err := output(socketPath, args...)
	return err
}

// InsideTmux reports whether the process is running inside a tmux client.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// CurrentSession returns the name of the session the client is attached to,
// or empty when not inside tmux.
func CurrentSession(socketPath string) string {
	out, err := output(socketPath, "display-message", "-p", "#{session_name}")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// SwitchClient moves the attached client to another session.
func SwitchClient(socketPath, target string) error {
	return run(socketPath, "switch-client", "-t", target)
}

// NewSession creates a detached session rooted at dir. When startAgent is
// set, a claude process is launched in the initial pane; a failure to start
// it is ignored so the session itself survives.
func NewSession(socketPath, name, dir string, startAgent bool) error {
	args := []string{"new-session", "-d", "-s", name}
	if dir != "" {
		args = append(args, "-c", dir)
	}
	if err := run(socketPath, args...); err != nil {
		return err
	}
	if startAgent {
		_ = run(socketPath, "send-keys", "-t", name, "claude", "Enter")
	}
	return nil
}

// KillSession destroys a session and everything in it.
func KillSession(socketPath, name string) error {
	return run(socketPath, "kill-session", "-t", name)
}

// RenameSession renames an existing session.
func RenameSession(socketPath, oldName, newName string) error {
	return run(socketPath, "rename-session", "-t", oldName, newName)
}
