package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header        *lipgloss.Style
	Muted         *lipgloss.Style
	Value         *lipgloss.Style
	Selected      *lipgloss.Style
	Accent        *lipgloss.Style
	Success       *lipgloss.Style
	Warning       *lipgloss.Style
	Danger        *lipgloss.Style
	Worktree      *lipgloss.Style
	StatusIdle    *lipgloss.Style
	StatusUnknown *lipgloss.Style
	Input         *lipgloss.Style
	ActiveLabel   *lipgloss.Style
	Ghost         *lipgloss.Style
	Footer        *lipgloss.Style
	MessageInfo   *lipgloss.Style
	MessageError  *lipgloss.Style
	Cursor        *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	),
	Value: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	),
	Selected: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("8")),
	),
	Accent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	Danger: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	),
	Worktree: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	),
	StatusIdle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	),
	StatusUnknown: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	ActiveLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	),
	Ghost: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	),
	MessageInfo: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2")),
	),
	MessageError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
