package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/claude-tmux/internal/forge"
	"github.com/atomicstack/claude-tmux/internal/session"
	uistate "github.com/atomicstack/claude-tmux/internal/ui/state"
)

const (
	// The preview block takes half of whatever height remains after the
	// fixed chrome rows, clamped so it neither vanishes on short
	// terminals nor swallows the list on tall ones.
	previewHeightPercent = 50
	previewMinHeight     = 8
	previewMaxHeight     = 20

	minListHeight = 3
	minNameColumn = 10
	fallbackWidth = 80

	headerTitle = "─ claude-tmux ─"
)

var boldStyle = lipgloss.NewStyle().Bold(true)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	previewH := m.previewHeight()
	footerRows := 0
	if m.showFooter {
		footerRows = 1
	}

	rows := m.listRows()
	listH := len(rows)
	if m.height > 0 {
		listH = m.height - 2 - footerRows - previewH
		if listH < minListHeight {
			listH = minListHeight
		}
	}

	lines := make([]styledLine, 0, listH+previewH+3)
	lines = append(lines, m.headerLine(width))
	if m.dialogActive() {
		lines = append(lines, m.dialogRegion(width, listH+previewH)...)
	} else {
		lines = append(lines, m.windowListRows(rows, listH)...)
		lines = append(lines, m.previewBlock(width, previewH)...)
	}
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, styledLine{text: footerHint(m.mode), style: styles.Footer})
	}
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// previewHeight returns the number of rows reserved for the preview block,
// separators included.
func (m *Model) previewHeight() int {
	avail := m.height - 4
	if avail < 0 {
		avail = 0
	}
	h := avail * previewHeightPercent / 100
	if h < previewMinHeight {
		h = previewMinHeight
	}
	if h > previewMaxHeight {
		h = previewMaxHeight
	}
	return h
}

// headerLine renders the title bar with the attached session name, when
// known, packed against the right edge.
func (m *Model) headerLine(width int) styledLine {
	current := ""
	if name := m.sessions.Current(); name != "" {
		current = fmt.Sprintf(" attached: %s ", name)
	}
	field := width - runewidth.StringWidth(headerTitle)
	if field < 0 {
		field = 0
	}
	pad := field - runewidth.StringWidth(current)
	if pad < 0 {
		pad = 0
	}
	return styledLine{text: headerTitle + strings.Repeat("─", pad) + current, style: styles.Header}
}

// listRows builds the flattened session list: one row per filtered session,
// with the selected session's detail and action rows spliced in while the
// action menu is open.
func (m *Model) listRows() []styledLine {
	filtered := m.filteredSessions()
	if len(filtered) == 0 {
		msg := "No tmux sessions found. Press 'n' to create one."
		if m.filter != "" {
			msg = "No sessions match the filter."
		}
		return []styledLine{{text: "  " + msg, style: styles.Muted}}
	}
	current := m.sessions.Current()
	nameW := nameColumnWidth(filtered)
	rows := make([]styledLine, 0, len(filtered)+8)
	for i, s := range filtered {
		selected := i == m.selected
		expanded := selected && m.mode == ModeActionMenu
		rows = append(rows, sessionRow(s, nameW, selected, expanded, s.Name == current))
		if expanded {
			rows = append(rows, m.expandedRows(s)...)
		}
	}
	return rows
}

// windowListRows slices the flat row list to the visible window, keeping the
// cursor row centered, and pads short lists to a stable height.
func (m *Model) windowListRows(rows []styledLine, listH int) []styledLine {
	if m.height <= 0 {
		return rows
	}
	if len(rows) > listH {
		offset := uistate.CenteredOffset(m.flatListIndex(), len(rows), listH)
		rows = rows[offset : offset+listH]
	}
	out := rows
	for len(out) < listH {
		out = append(out, styledLine{})
	}
	return out
}

func nameColumnWidth(sessions []session.Session) int {
	w := minNameColumn
	for _, s := range sessions {
		if nw := runewidth.StringWidth(s.Name); nw > w {
			w = nw
		}
	}
	return w
}

func padRight(text string, width int) string {
	if pad := width - runewidth.StringWidth(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}

// sessionRow renders one session line: cursor marker, name, Claude status,
// working directory, and a compact git badge.
func sessionRow(s session.Session, nameW int, selected, expanded, current bool) styledLine {
	marker := " "
	if selected {
		marker = "▸"
		if expanded {
			marker = "▾"
		}
	}

	var b strings.Builder
	b.WriteString(" " + marker + " ")

	name := padRight(s.Name, nameW)
	if current {
		b.WriteString(boldStyle.Render(name))
	} else {
		b.WriteString(name)
	}
	b.WriteString("  ")

	st := statusStyle(s.ClaudeStatus, selected)
	b.WriteString(st.Render(s.ClaudeStatus.Symbol()))
	b.WriteString(" ")
	b.WriteString(st.Render(fmt.Sprintf("%-8s", s.ClaudeStatus.Label())))
	b.WriteString("  ")

	pathStyle := styles.Muted
	if selected {
		pathStyle = styles.Value
	}
	b.WriteString(pathStyle.Render(s.DisplayPath()))
	b.WriteString(gitBadge(s.Repo))

	return styledLine{text: b.String(), raw: true}
}

func statusStyle(st session.Status, selected bool) *lipgloss.Style {
	switch st {
	case session.StatusWorking:
		return styles.Success
	case session.StatusWaitingInput:
		return styles.Warning
	case session.StatusIdle:
		if selected {
			return styles.StatusIdle
		}
		return styles.Muted
	default:
		if selected {
			return styles.StatusUnknown
		}
		return styles.Muted
	}
}

// gitBadge renders the branch in brackets, square for worktrees and round
// for plain checkouts, plus +/* markers for staged and unstaged changes.
func gitBadge(repo *session.Repo) string {
	if repo == nil {
		return ""
	}
	opening, closing := "(", ")"
	bracket := styles.Accent
	if repo.IsWorktree {
		opening, closing = "[", "]"
		bracket = styles.Worktree
	}
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(bracket.Render(opening))
	b.WriteString(styles.Accent.Render(repo.Branch))
	b.WriteString(bracket.Render(closing))

	marks := ""
	if repo.HasStaged {
		marks += "+"
	}
	if repo.HasUnstaged {
		marks += "*"
	}
	if marks != "" {
		style := styles.Warning
		if repo.HasStaged && !repo.HasUnstaged {
			style = styles.Success
		}
		b.WriteString(style.Render(" " + marks))
	}
	return b.String()
}

// expandedRows renders the detail block shown under the selected session in
// action-menu mode: session metadata, git and PR summaries, then the action
// list itself.
func (m *Model) expandedRows(s session.Session) []styledLine {
	rows := make([]styledLine, 0, len(m.availableActions)+5)
	rows = append(rows, metaRow(s))
	if s.Repo != nil {
		rows = append(rows, gitRow(*s.Repo))
		if m.prInfo != nil {
			rows = append(rows, prRow(m.prInfo))
		}
	}
	rows = append(rows, styledLine{text: "     ────────────────────────", style: styles.Muted})
	for i, action := range m.availableActions {
		marker := " "
		style := styles.Value
		if i == m.selectedAction {
			marker = "▸"
			style = styles.Input
		}
		rows = append(rows, styledLine{text: fmt.Sprintf("     %s %s", marker, action.Label()), style: style})
	}
	rows = append(rows, styledLine{})
	return rows
}

func metaRow(s session.Session) styledLine {
	attached := "no"
	if s.Attached {
		attached = "yes"
	}
	var b strings.Builder
	b.WriteString("     ")
	b.WriteString(styles.Muted.Render("windows: "))
	b.WriteString(styles.Value.Render(strconv.Itoa(s.Windows)))
	b.WriteString("  ")
	b.WriteString(styles.Muted.Render("panes: "))
	b.WriteString(styles.Value.Render(strconv.Itoa(len(s.Panes))))
	b.WriteString("  ")
	b.WriteString(styles.Muted.Render("uptime: "))
	b.WriteString(styles.Value.Render(s.Uptime(time.Now())))
	b.WriteString("  ")
	b.WriteString(styles.Muted.Render("attached: "))
	b.WriteString(styles.Value.Render(attached))
	return styledLine{text: b.String(), raw: true}
}

func gitRow(repo session.Repo) styledLine {
	var b strings.Builder
	b.WriteString("     ")
	b.WriteString(styles.Muted.Render("branch: "))
	b.WriteString(styles.Accent.Render(repo.Branch))
	if repo.Ahead > 0 {
		b.WriteString("  ")
		b.WriteString(styles.Success.Render(fmt.Sprintf("↑%d", repo.Ahead)))
	}
	if repo.Behind > 0 {
		b.WriteString("  ")
		b.WriteString(styles.Danger.Render(fmt.Sprintf("↓%d", repo.Behind)))
	}
	if repo.HasStaged {
		b.WriteString("  ")
		b.WriteString(styles.Muted.Render("staged: "))
		b.WriteString(styles.Success.Render("yes"))
	}
	if repo.HasUnstaged {
		b.WriteString("  ")
		b.WriteString(styles.Muted.Render("unstaged: "))
		b.WriteString(styles.Warning.Render("yes"))
	}
	if repo.IsWorktree {
		b.WriteString("  ")
		b.WriteString(styles.Muted.Render("worktree: "))
		b.WriteString(styles.Worktree.Render("yes"))
	}
	return styledLine{text: b.String(), raw: true}
}

func prRow(pr *forge.PullRequest) styledLine {
	var b strings.Builder
	b.WriteString("     ")
	b.WriteString(styles.Muted.Render("PR #"))
	b.WriteString(styles.Accent.Render(strconv.Itoa(pr.Number)))
	b.WriteString(": ")

	switch pr.State {
	case "OPEN":
		b.WriteString(styles.Success.Render("open"))
	case "CLOSED":
		b.WriteString(styles.Danger.Render("closed"))
	case "MERGED":
		b.WriteString(styles.Worktree.Render("merged"))
	default:
		b.WriteString(styles.StatusUnknown.Render(pr.State))
	}

	if pr.State == "OPEN" {
		b.WriteString("  ")
		switch pr.Mergeable {
		case "MERGEABLE":
			b.WriteString(styles.Success.Render("ready to merge"))
		case "CONFLICTING":
			b.WriteString(styles.Danger.Render("has conflicts"))
		default:
			b.WriteString(styles.Warning.Render("merge status unknown"))
		}
	}
	return styledLine{text: b.String(), raw: true}
}

// previewBlock renders the pane capture between two horizontal rules. The
// block is always previewH rows tall so the status bar stays put.
func (m *Model) previewBlock(width, previewH int) []styledLine {
	if previewH < 2 {
		return nil
	}
	sep := strings.Repeat("─", width)
	out := make([]styledLine, 0, previewH)
	out = append(out, styledLine{text: sep, style: styles.Muted})

	contentH := previewH - 2
	if m.preview == "" {
		out = append(out, styledLine{text: "  No preview available", style: styles.Muted})
	} else {
		content := strings.Split(m.preview, "\n")
		if len(content) > contentH {
			content = content[len(content)-contentH:]
		}
		for _, line := range content {
			out = append(out, styledLine{text: line, raw: true})
		}
	}
	for len(out) < previewH-1 {
		out = append(out, styledLine{})
	}
	out = append(out, styledLine{text: sep, style: styles.Value})
	return out
}

// statusLine renders the bottom status row. The filter prompt takes over
// while the filter is being edited, and action outcomes replace the counts
// until the next keypress.
func (m *Model) statusLine() styledLine {
	if m.mode == ModeFilter {
		return styledLine{text: "  / " + m.filterInput, style: styles.Input}
	}
	if m.errMsg != "" {
		return styledLine{text: " " + m.errMsg + " ", style: styles.MessageError}
	}
	if m.infoMsg != "" && m.verbose {
		return styledLine{text: " " + m.infoMsg + " ", style: styles.MessageInfo}
	}

	all := m.sessions.Sessions()
	counts := session.CountStatuses(all)
	parts := []string{fmt.Sprintf("%d sessions", len(all))}
	if counts.Working > 0 {
		parts = append(parts, fmt.Sprintf("%d working", counts.Working))
	}
	if counts.Waiting > 0 {
		parts = append(parts, fmt.Sprintf("%d awaiting input", counts.Waiting))
	}
	text := "  " + strings.Join(parts, " │ ")
	if m.filter != "" {
		text += fmt.Sprintf(" │ filter: %q", m.filter)
	}
	return styledLine{text: text, style: styles.Muted}
}

func footerHint(mode Mode) string {
	switch mode {
	case ModeActionMenu:
		return "  jk navigate  ⏎/l select  h/esc back  q quit"
	case ModeFilter:
		return "  ⏎ apply  esc cancel"
	case ModeConfirmAction:
		return "  y/⏎ confirm  n/esc cancel"
	case ModeNewSession, ModeNewWorktree:
		return "  ⏎ create  tab switch  ↑↓ select  → accept  esc cancel"
	case ModeRename:
		return "  ⏎ confirm  esc cancel"
	case ModeCommit:
		return "  ⏎ commit  esc cancel"
	case ModeCreatePullRequest:
		return "  ⏎ create PR  tab switch  esc cancel"
	case ModeHelp:
		return "  q close"
	default:
		return "  ? help  jk navigate  l actions  ⏎ switch  n new  K kill  r rename  / filter  q quit"
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if !line.raw && line.style != nil {
			out[i] = line.style.Render(line.text)
			continue
		}
		out[i] = line.text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
