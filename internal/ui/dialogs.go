package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/claude-tmux/internal/complete"
	"github.com/atomicstack/claude-tmux/internal/format/table"
	"github.com/atomicstack/claude-tmux/internal/menu"
)

// maxSuggestionRows caps how many completion candidates a dialog shows at
// once; the remainder collapses to a "... and N more" line.
const maxSuggestionRows = 5

var dangerBold = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

func (m *Model) dialogActive() bool {
	switch m.mode {
	case ModeConfirmAction, ModeNewSession, ModeRename, ModeCommit, ModeNewWorktree, ModeCreatePullRequest, ModeHelp:
		return true
	}
	return false
}

// dialogRegion renders the active dialog centered in the rows the list and
// preview normally occupy.
func (m *Model) dialogRegion(width, regionH int) []styledLine {
	var box []styledLine
	switch m.mode {
	case ModeConfirmAction:
		box = m.confirmDialog(width)
	case ModeNewSession:
		box = m.newSessionDialog(width)
	case ModeRename:
		box = m.renameDialog(width)
	case ModeCommit:
		box = m.commitDialog(width)
	case ModeNewWorktree:
		box = m.worktreeDialog(width)
	case ModeCreatePullRequest:
		box = m.createPRDialog(width)
	case ModeHelp:
		box = helpDialog(width)
	}
	if m.height <= 0 {
		return box
	}
	box = limitHeight(box, regionH, width)
	out := make([]styledLine, 0, regionH)
	for i := (regionH - len(box)) / 2; i > 0; i-- {
		out = append(out, styledLine{})
	}
	out = append(out, box...)
	for len(out) < regionH {
		out = append(out, styledLine{})
	}
	return out
}

// dialogBox frames content lines in a bordered box with the title embedded
// in the top edge, centered horizontally on the screen. Content lines may
// carry their own ANSI styling; padding is measured visually.
func dialogBox(title string, border *lipgloss.Style, boxW, screenW int, centered bool, content []string) []styledLine {
	if boxW > screenW {
		boxW = screenW
	}
	innerW := boxW - 2
	if innerW < 1 {
		innerW = 1
		boxW = innerW + 2
	}
	margin := ""
	if leftPad := (screenW - boxW) / 2; leftPad > 0 {
		margin = strings.Repeat(" ", leftPad)
	}

	if runes := []rune(title); len(runes) > innerW {
		title = string(runes[:innerW])
	}
	dashes := innerW - len([]rune(title))

	out := make([]styledLine, 0, len(content)+2)
	out = append(out, styledLine{
		text: margin + border.Render("╭") + title + border.Render(strings.Repeat("─", dashes)+"╮"),
		raw:  true,
	})
	for _, line := range content {
		w := lipgloss.Width(line)
		if w > innerW {
			line = truncate.StringWithTail(line, uint(innerW-1), "…")
			w = lipgloss.Width(line)
		}
		pad := innerW - w
		left := 0
		if centered {
			left = pad / 2
		}
		out = append(out, styledLine{
			text: margin + border.Render("│") + strings.Repeat(" ", left) + line + strings.Repeat(" ", pad-left) + border.Render("│"),
			raw:  true,
		})
	}
	out = append(out, styledLine{
		text: margin + border.Render("╰"+strings.Repeat("─", innerW)+"╯"),
		raw:  true,
	})
	return out
}

// fieldLine renders "Label: value" with the label highlighted and a cursor
// appended while the field has focus, plus optional ghost text for inline
// completion.
func fieldLine(label, value string, valueStyle *lipgloss.Style, ghost string, active bool) string {
	var b strings.Builder
	if active {
		b.WriteString(styles.ActiveLabel.Render(label))
	} else {
		b.WriteString(label)
	}
	if valueStyle != nil {
		b.WriteString(valueStyle.Render(value))
	} else {
		b.WriteString(value)
	}
	if ghost != "" {
		b.WriteString(styles.Ghost.Render(ghost))
	}
	if active {
		b.WriteString("_")
	}
	return b.String()
}

// suggestionBlock renders a ruled list of completion candidates with the
// highlighted entry pulled out by a "> " marker.
func suggestionBlock(items []string, selected, indent, ruleWidth int) []string {
	if len(items) == 0 {
		return nil
	}
	pad := strings.Repeat(" ", indent)
	rule := styles.Muted.Render(pad + strings.Repeat("─", ruleWidth))
	out := make([]string, 0, len(items)+3)
	out = append(out, rule)
	show := items
	if len(show) > maxSuggestionRows {
		show = show[:maxSuggestionRows]
	}
	for i, item := range show {
		if i == selected {
			out = append(out, styles.Header.Render(strings.Repeat(" ", indent-2)+"> "+item))
		} else {
			out = append(out, styles.Muted.Render(pad+item))
		}
	}
	if extra := len(items) - maxSuggestionRows; extra > 0 {
		out = append(out, styles.Muted.Render(fmt.Sprintf("%s... and %d more", pad, extra)))
	}
	out = append(out, rule)
	return out
}

func (m *Model) confirmDialog(width int) []styledLine {
	if m.pendingAction == nil {
		return nil
	}
	action := *m.pendingAction

	name := "?"
	displayPath := "?"
	isWorktree := false
	if s := m.selectedSession(); s != nil {
		name = s.Name
		displayPath = s.DisplayPath()
		if s.Repo != nil {
			isWorktree = s.Repo.IsWorktree
		}
	}
	isCurrent := name != "?" && m.sessions.Current() == name
	currentWarning := styles.ActiveLabel.Render("⚠ This is your current session - tmux will exit!")

	switch action {
	case menu.ActionKillAndDeleteWorktree:
		content := []string{
			fmt.Sprintf("Kill session '%s'", name),
			"AND delete worktree at:",
			styles.Input.Render("  " + displayPath),
			"",
			dangerBold.Render("⚠ This will permanently delete the directory!"),
		}
		if isCurrent {
			content = append(content, currentWarning)
		}
		content = append(content, "", "[Y]es  [n]o")
		return dialogBox(" Confirm ", styles.Danger, 55, width, true, content)

	case menu.ActionClosePullRequest:
		return dialogBox(" Close Pull Request ", styles.Warning, 50, width, true, []string{
			"Close this pull request without merging?",
			"",
			"[Y]es  [n]o",
		})

	case menu.ActionMergePullRequest:
		return dialogBox(" Merge Pull Request ", styles.Success, 50, width, true, []string{
			"Merge this pull request?",
			"",
			"[Y]es  [n]o",
		})

	case menu.ActionMergePullRequestAndClose:
		content := []string{
			"This will:",
			styles.Success.Render("  • Merge the pull request"),
		}
		if isWorktree {
			content = append(content, styles.Danger.Render("  • Remove the local worktree"))
		}
		content = append(content, styles.Danger.Render(fmt.Sprintf("  • Kill session '%s'", name)))
		if isCurrent {
			content = append(content, "", currentWarning)
		}
		content = append(content, "", "[Y]es  [n]o")
		return dialogBox(" Merge PR + Close ", styles.Warning, 58, width, true, content)

	default:
		content := []string{fmt.Sprintf("%s '%s'?", action.Label(), name)}
		if action == menu.ActionKill && isCurrent {
			content = append(content, "", currentWarning)
		}
		content = append(content, "", "[Y]es  [n]o")
		return dialogBox(" Confirm ", styles.Danger, 55, width, true, content)
	}
}

func (m *Model) newSessionDialog(width int) []styledLine {
	f := m.sessionForm
	if f == nil {
		return nil
	}
	content := make([]string, 0, maxSuggestionRows+8)
	content = append(content, fieldLine("Name: ", f.name.Value(), nil, "", f.field == fieldName))
	content = append(content, "")

	ghost := ""
	if f.field == fieldPath {
		ghost = f.completion.Ghost
	}
	content = append(content, fieldLine("Path: ", f.path.Value(), styles.Input, ghost, f.field == fieldPath))
	if f.field == fieldPath {
		content = append(content, suggestionBlock(f.completion.Suggestions, f.suggestIdx, 6, 36)...)
	}

	content = append(content, "")
	content = append(content, styles.Muted.Render("Tab switch  ↑↓ select  → accept  Enter create  Esc cancel"))
	return dialogBox(" New Session ", styles.Accent, 60, width, false, content)
}

func (m *Model) renameDialog(width int) []styledLine {
	f := m.renameForm
	if f == nil {
		return nil
	}
	return dialogBox(fmt.Sprintf(" Rename '%s' ", f.oldName), styles.Accent, 50, width, false, []string{
		"New name: " + styles.Input.Render(f.input.Value()) + "_",
		"",
		styles.Muted.Render("Press Enter to confirm"),
	})
}

func (m *Model) commitDialog(width int) []styledLine {
	f := m.commitForm
	if f == nil {
		return nil
	}
	return dialogBox(" Commit ", styles.Accent, 60, width, false, []string{
		"Message: " + styles.Input.Render(f.input.Value()) + "_",
		"",
		styles.Muted.Render("Press Enter to commit"),
	})
}

func (m *Model) worktreeDialog(width int) []styledLine {
	f := m.worktreeForm
	if f == nil {
		return nil
	}
	content := make([]string, 0, 2*maxSuggestionRows+12)

	branchGhost := ""
	if f.field == wtFieldBranch {
		branchGhost = complete.BranchGhost(f.branch.Value(), f.filtered, f.branchIdx)
	}
	branchLine := fieldLine("Branch:  ", f.branch.Value(), styles.Input, branchGhost, f.field == wtFieldBranch)
	if f.isNewBranch() {
		branchLine += styles.Success.Render(" (new)")
	} else if f.branchIdx >= 0 {
		branchLine += styles.Accent.Render(" (existing)")
	}
	content = append(content, branchLine)
	if f.field == wtFieldBranch {
		content = append(content, suggestionBlock(f.filtered, f.branchIdx, 9, 29)...)
	}

	content = append(content, "")
	pathGhost := ""
	if f.field == wtFieldPath {
		pathGhost = f.pathCompletion.Ghost
	}
	content = append(content, fieldLine("Path:    ", f.path.Value(), styles.Input, pathGhost, f.field == wtFieldPath))
	if f.field == wtFieldPath {
		content = append(content, suggestionBlock(f.pathCompletion.Suggestions, f.pathIdx, 9, 36)...)
	}

	content = append(content, "")
	content = append(content, fieldLine("Session: ", f.session.Value(), styles.Input, "", f.field == wtFieldSession))
	content = append(content, "")
	content = append(content, styles.Muted.Render("Tab switch  ↑↓ select  → accept  Enter create  Esc cancel"))
	return dialogBox(" New Session from Worktree ", styles.Accent, 65, width, false, content)
}

func (m *Model) createPRDialog(width int) []styledLine {
	f := m.prForm
	if f == nil {
		return nil
	}
	bodyText := f.body.Value()
	bodyStyle := styles.Input
	if bodyText == "" {
		bodyText = "(optional)"
		bodyStyle = styles.Muted
	}
	return dialogBox(" Create Pull Request ", styles.Success, 65, width, false, []string{
		fieldLine("Title: ", f.title.Value(), styles.Input, "", f.field == prFieldTitle),
		"",
		fieldLine("Body:  ", bodyText, bodyStyle, "", f.field == prFieldBody),
		"",
		fieldLine("Base:  ", f.base.Value(), styles.Accent, "", f.field == prFieldBase),
		"",
		styles.Muted.Render("[Tab] Next field  [Enter] Create PR  [Esc] Cancel"),
	})
}

type keyBinding struct {
	keys string
	does string
}

var helpSections = []struct {
	title    string
	bindings []keyBinding
}{
	{"Navigation", []keyBinding{
		{"j / ↓", "Move down"},
		{"k / ↑", "Move up"},
		{"l / →", "Open action menu"},
		{"Enter", "Switch to session"},
	}},
	{"Actions", []keyBinding{
		{"n", "New session"},
		{"K", "Kill session"},
		{"r", "Rename session"},
		{"/", "Filter sessions"},
		{"R", "Refresh list"},
	}},
	{"Action Menu", []keyBinding{
		{"h / ←", "Go back"},
		{"Enter", "Execute action"},
	}},
	{"Other", []keyBinding{
		{"?", "Show this help"},
		{"q / Esc", "Quit"},
	}},
}

func helpDialog(width int) []styledLine {
	rows := make([][]string, 0, 16)
	for _, section := range helpSections {
		for _, binding := range section.bindings {
			rows = append(rows, []string{binding.keys, binding.does})
		}
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})

	content := make([]string, 0, len(aligned)+2*len(helpSections))
	next := 0
	for i, section := range helpSections {
		if i > 0 {
			content = append(content, "")
		}
		content = append(content, boldStyle.Render(section.title))
		for range section.bindings {
			content = append(content, "  "+aligned[next])
			next++
		}
	}
	return dialogBox(" Help ", styles.Accent, 60, width, false, content)
}
