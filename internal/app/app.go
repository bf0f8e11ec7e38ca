package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/claude-tmux/internal/backend"
	"github.com/atomicstack/claude-tmux/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	PreviewLines int
	Refresh      time.Duration
}

// Run collects the initial session snapshot and executes the Bubble Tea
// program. An empty socket path targets the default tmux server. A Refresh
// interval above zero starts a background watcher that feeds periodic
// snapshots into the model.
func Run(cfg Config) error {
	snap, err := backend.Collect(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("collect sessions: %w", err)
	}

	var watcher *backend.Watcher
	if cfg.Refresh > 0 {
		watcher = backend.NewWatcher(cfg.SocketPath, cfg.Refresh)
		defer watcher.Stop()
	}

	model := ui.NewModel(cfg.SocketPath, snap, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, cfg.PreviewLines, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
