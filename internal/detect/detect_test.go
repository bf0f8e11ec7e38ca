package detect

import (
	"testing"

	"github.com/atomicstack/claude-tmux/internal/session"
)

func TestStatusWorking(t *testing.T) {
	content := "Thinking about the problem...\n" +
		"esc to interrupt · ctrl+c to interrupt\n" +
		"╭──────────────╮\n" +
		"│ ❯            │\n" +
		"╰──────────────╯"
	if got := Status(content); got != session.StatusWorking {
		t.Fatalf("Status = %v, want Working", got)
	}
}

func TestStatusIdle(t *testing.T) {
	content := "Done.\n" +
		"╭──────────────╮\n" +
		"│ ❯            │\n" +
		"╰──────────────╯"
	if got := Status(content); got != session.StatusIdle {
		t.Fatalf("Status = %v, want Idle", got)
	}
}

func TestStatusUnknownWhenBorderNotDirectlyAbove(t *testing.T) {
	content := "╭──────────────╮\n" +
		"│ some text    │\n" +
		"│ ❯            │"
	if got := Status(content); got != session.StatusUnknown {
		t.Fatalf("Status = %v, want Unknown", got)
	}
}

func TestStatusWaitingInput(t *testing.T) {
	content := "Overwrite existing file? [y/n]"
	if got := Status(content); got != session.StatusWaitingInput {
		t.Fatalf("Status = %v, want WaitingInput", got)
	}
	content = "Proceed? [Y/n]"
	if got := Status(content); got != session.StatusWaitingInput {
		t.Fatalf("Status = %v, want WaitingInput", got)
	}
	content = "Do you want to make this edit?\n1. Yes\n2. No"
	if got := Status(content); got != session.StatusWaitingInput {
		t.Fatalf("Status = %v, want WaitingInput", got)
	}
}

func TestStatusUnknownForPlainOutput(t *testing.T) {
	if got := Status("just some shell output\n$ ls\nfoo bar"); got != session.StatusUnknown {
		t.Fatalf("Status = %v, want Unknown", got)
	}
}

func TestStatusStripsEscapeSequences(t *testing.T) {
	content := "\x1b[1mesc to interrupt · ctrl+c to interrupt\x1b[0m\n" +
		"\x1b[38;5;240m╭──────╮\x1b[0m\n" +
		"\x1b[38;5;240m│\x1b[0m ❯"
	if got := Status(content); got != session.StatusWorking {
		t.Fatalf("Status = %v, want Working after stripping escapes", got)
	}
}

func TestStatusEmptyContent(t *testing.T) {
	if got := Status(""); got != session.StatusUnknown {
		t.Fatalf("Status(\"\") = %v, want Unknown", got)
	}
}
