package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration for the application.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	ShowFooter   bool
	PreviewLines int
	Refresh      time.Duration
	Verbose      bool
	Logging      Logging
	Flags        map[string]string
	Args         []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath   = "CLAUDE_TMUX_SOCKET"
	envWidth        = "CLAUDE_TMUX_WIDTH"
	envHeight       = "CLAUDE_TMUX_HEIGHT"
	envShowFooter   = "CLAUDE_TMUX_FOOTER"
	envPreviewLines = "CLAUDE_TMUX_PREVIEW_LINES"
	envRefresh      = "CLAUDE_TMUX_REFRESH"
	envVerbose      = "CLAUDE_TMUX_VERBOSE"
	envTrace        = "CLAUDE_TMUX_TRACE"
	envLogFile      = "CLAUDE_TMUX_LOG_FILE"
)

const defaultPreviewLines = 15

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("claude-tmux", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "maximum viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "maximum viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key-hint footer row")
	previewLines := fs.Int("preview-lines", envOrInt(env, envPreviewLines, defaultPreviewLines), "number of pane lines captured for the preview")
	refresh := fs.Duration("refresh", envOrDuration(env, envRefresh, 0), "auto-refresh interval (0 disables)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, true), "show success messages in the status bar")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *previewLines <= 0 {
		return Config{}, fmt.Errorf("preview-lines must be > 0 (got %d)", *previewLines)
	}

	cfg := Config{
		SocketPath:   *socket,
		Width:        *width,
		Height:       *height,
		ShowFooter:   *footer,
		PreviewLines: *previewLines,
		Refresh:      *refresh,
		Verbose:      *verbose,
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"socket":       *socket,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"previewLines": strconv.Itoa(*previewLines),
			"refresh":      refresh.String(),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.Refresh < 0 {
		return fmt.Errorf("refresh interval must be >= 0 (got %s)", cfg.Refresh)
	}
	if cfg.Refresh > 0 && cfg.Refresh < 100*time.Millisecond {
		return fmt.Errorf("refresh interval must be at least 100ms (got %s)", cfg.Refresh)
	}
	return nil
}
