package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.SocketPath != "" || cfg.Width != 0 || cfg.Height != 0 {
		t.Errorf("defaults = %+v", cfg)
	}
	if !cfg.ShowFooter {
		t.Error("ShowFooter default = false, want true")
	}
	if cfg.PreviewLines != 15 {
		t.Errorf("PreviewLines default = %d, want 15", cfg.PreviewLines)
	}
	if cfg.Refresh != 0 {
		t.Errorf("Refresh default = %s, want 0", cfg.Refresh)
	}
	if !cfg.Verbose || cfg.Logging.Trace {
		t.Errorf("verbose/trace defaults = %+v", cfg)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"-socket", "/tmp/test.sock",
		"-footer=false",
		"-preview-lines", "30",
		"-refresh", "2s",
		"-trace",
		"-verbose",
		"-log-file", "/tmp/claude-tmux-test.log",
	}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.SocketPath != "/tmp/test.sock" {
		t.Errorf("SocketPath = %q", cfg.SocketPath)
	}
	if cfg.ShowFooter {
		t.Error("ShowFooter = true, want false")
	}
	if cfg.PreviewLines != 30 {
		t.Errorf("PreviewLines = %d", cfg.PreviewLines)
	}
	if cfg.Refresh != 2*time.Second {
		t.Errorf("Refresh = %s", cfg.Refresh)
	}
	if !cfg.Logging.Trace || !cfg.Verbose {
		t.Errorf("trace/verbose = %+v", cfg)
	}
	if cfg.Logging.FilePath != "/tmp/claude-tmux-test.log" {
		t.Errorf("FilePath = %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	environ := []string{
		"CLAUDE_TMUX_SOCKET=/tmp/env.sock",
		"CLAUDE_TMUX_REFRESH=500ms",
		"CLAUDE_TMUX_VERBOSE=1",
		"CLAUDE_TMUX_PREVIEW_LINES=20",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.SocketPath != "/tmp/env.sock" {
		t.Errorf("SocketPath = %q", cfg.SocketPath)
	}
	if cfg.Refresh != 500*time.Millisecond {
		t.Errorf("Refresh = %s", cfg.Refresh)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true from env")
	}
	if cfg.PreviewLines != 20 {
		t.Errorf("PreviewLines = %d", cfg.PreviewLines)
	}
}

func TestLoadArgsFlagOverridesEnv(t *testing.T) {
	cfg, err := LoadArgs([]string{"-socket", "/tmp/flag.sock"}, []string{"CLAUDE_TMUX_SOCKET=/tmp/env.sock"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.SocketPath != "/tmp/flag.sock" {
		t.Errorf("SocketPath = %q, want flag value", cfg.SocketPath)
	}
}

func TestLoadArgsBadEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"CLAUDE_TMUX_FOOTER=maybe", "CLAUDE_TMUX_REFRESH=soon"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if !cfg.ShowFooter {
		t.Error("bad bool env should fall back to default true")
	}
	if cfg.Refresh != 0 {
		t.Errorf("bad duration env should fall back to 0, got %s", cfg.Refresh)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Error("negative width accepted")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Error("negative height accepted")
	}
	if _, err := LoadArgs([]string{"-preview-lines", "0"}, nil); err == nil {
		t.Error("zero preview-lines accepted")
	}
}

func TestValidateRefreshBounds(t *testing.T) {
	if err := Validate(Config{Refresh: 0}); err != nil {
		t.Errorf("Validate(0) = %v", err)
	}
	if err := Validate(Config{Refresh: time.Second}); err != nil {
		t.Errorf("Validate(1s) = %v", err)
	}
	if err := Validate(Config{Refresh: 50 * time.Millisecond}); err == nil {
		t.Error("Validate(50ms) accepted, want error")
	}
	if err := Validate(Config{Refresh: -time.Second}); err == nil {
		t.Error("Validate(-1s) accepted, want error")
	}
}
