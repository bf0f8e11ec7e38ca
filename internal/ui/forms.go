package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/claude-tmux/internal/complete"
	"github.com/atomicstack/claude-tmux/internal/menu"
)

// sessionNameRune reports whether a rune may appear in a tmux session
// name as the dashboard creates them.
func sessionNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

// branchRune additionally admits the path separator and the dot so base
// branches like "release/1.2" stay typable.
func branchRune(r rune) bool {
	return sessionNameRune(r) || r == '/' || r == '.'
}

// restrictKey filters a keypress against an allowed-rune predicate before
// it reaches a text input. Returns false when nothing of the keypress
// survives.
func restrictKey(msg tea.KeyMsg, allowed func(rune) bool) (tea.KeyMsg, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return msg, allowed(' ')
	case tea.KeyRunes:
		kept := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if allowed(r) {
				kept = append(kept, r)
			}
		}
		if len(kept) == 0 {
			return msg, false
		}
		msg.Runes = kept
		return msg, true
	}
	return msg, true
}

func newDialogInput(initial string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(initial)
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	return ti
}

// atLineEnd reports whether the input's cursor sits after the last rune,
// the only position where ghost text may be accepted.
func atLineEnd(ti textinput.Model) bool {
	return ti.Position() >= len([]rune(ti.Value()))
}

// clampHighlight keeps a suggestion highlight in range after the list
// shrinks: past-the-end snaps to the last entry, an empty list clears it.
func clampHighlight(idx, n int) int {
	if idx < 0 || n == 0 {
		return -1
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// nextHighlight advances a suggestion highlight with wraparound; from the
// unselected state it lands on the first entry.
func nextHighlight(idx, n int) int {
	if n == 0 {
		return idx
	}
	if idx < 0 {
		return 0
	}
	return (idx + 1) % n
}

// prevHighlight moves a suggestion highlight backwards with wraparound;
// from the unselected state it lands on the last entry.
func prevHighlight(idx, n int) int {
	if n == 0 {
		return idx
	}
	if idx < 0 {
		return n - 1
	}
	return (idx + n - 1) % n
}

// renameForm backs the rename dialog, remembering the original name so an
// unchanged submit can be treated as a no-op.
type renameForm struct {
	oldName string
	input   textinput.Model
}

func newRenameForm(oldName string) *renameForm {
	ti := newDialogInput(oldName)
	ti.CharLimit = 64
	ti.Focus()
	ti.CursorEnd()
	return &renameForm{oldName: oldName, input: ti}
}

func (f *renameForm) Update(msg tea.KeyMsg) tea.Cmd {
	msg, ok := restrictKey(msg, sessionNameRune)
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// commitForm backs the commit-message dialog. The message itself is free
// text; validation happens on submit.
type commitForm struct {
	input textinput.Model
}

func newCommitForm() *commitForm {
	ti := newDialogInput("")
	ti.Focus()
	return &commitForm{input: ti}
}

func (f *commitForm) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

type sessionField int

const (
	fieldName sessionField = iota
	fieldPath
)

// newSessionForm backs the new-session dialog: a name field and a path
// field with filesystem completion.
type newSessionForm struct {
	name       textinput.Model
	path       textinput.Model
	field      sessionField
	completion complete.Completion
	suggestIdx int
}

func newNewSessionForm(defaultPath string) *newSessionForm {
	name := newDialogInput("")
	name.CharLimit = 64
	name.Focus()
	path := newDialogInput(defaultPath)
	path.CursorEnd()
	return &newSessionForm{
		name:       name,
		path:       path,
		completion: complete.Path(defaultPath),
		suggestIdx: -1,
	}
}

func (f *newSessionForm) toggleField() tea.Cmd {
	if f.field == fieldName {
		return f.setField(fieldPath)
	}
	return f.setField(fieldName)
}

func (f *newSessionForm) setField(field sessionField) tea.Cmd {
	f.field = field
	f.name.Blur()
	f.path.Blur()
	if field == fieldName {
		return f.name.Focus()
	}
	return f.path.Focus()
}

func (f *newSessionForm) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch f.field {
	case fieldName:
		restricted, ok := restrictKey(msg, sessionNameRune)
		if !ok {
			return nil
		}
		f.name, cmd = f.name.Update(restricted)
	case fieldPath:
		before := f.path.Value()
		f.path, cmd = f.path.Update(msg)
		if f.path.Value() != before {
			f.refreshCompletion()
		}
	}
	return cmd
}

func (f *newSessionForm) refreshCompletion() {
	f.completion = complete.Path(f.path.Value())
	f.suggestIdx = clampHighlight(f.suggestIdx, len(f.completion.Suggestions))
}

func (f *newSessionForm) nextSuggestion() {
	f.suggestIdx = nextHighlight(f.suggestIdx, len(f.completion.Suggestions))
}

func (f *newSessionForm) prevSuggestion() {
	f.suggestIdx = prevHighlight(f.suggestIdx, len(f.completion.Suggestions))
}

// acceptSuggestion replaces the path with the highlighted suggestion, or
// with the first one (the ghost) when nothing is highlighted, then
// recompletes against the new value.
func (f *newSessionForm) acceptSuggestion() {
	var target string
	if f.suggestIdx >= 0 && f.suggestIdx < len(f.completion.Suggestions) {
		target = f.completion.Suggestions[f.suggestIdx]
	} else if len(f.completion.Suggestions) > 0 {
		target = f.completion.Suggestions[0]
	}
	if target == "" {
		return
	}
	f.path.SetValue(target)
	f.path.CursorEnd()
	f.completion = complete.Path(target)
	f.suggestIdx = -1
}

type worktreeField int

const (
	wtFieldBranch worktreeField = iota
	wtFieldPath
	wtFieldSession
)

// worktreeForm backs the new-session-from-worktree dialog. The branch
// field drives the other two: while the user has not edited path or
// session name by hand, both are re-derived from the branch on every
// branch edit and on every highlight move. A manual edit pins its field
// for the rest of the dialog.
type worktreeForm struct {
	sourceRepo  string
	allBranches []string

	branch  textinput.Model
	path    textinput.Model
	session textinput.Model
	field   worktreeField

	filtered  []string
	branchIdx int

	pathCompletion complete.Completion
	pathIdx        int

	pathEdited    bool
	sessionEdited bool
}

func newWorktreeForm(sourceRepo string, branches []string) *worktreeForm {
	branch := newDialogInput("")
	branch.Focus()
	session := newDialogInput("")
	session.CharLimit = 64
	return &worktreeForm{
		sourceRepo:  sourceRepo,
		allBranches: branches,
		branch:      branch,
		path:        newDialogInput(""),
		session:     session,
		filtered:    branches,
		branchIdx:   -1,
		pathIdx:     -1,
	}
}

func (f *worktreeForm) nextField() tea.Cmd {
	switch f.field {
	case wtFieldBranch:
		return f.setField(wtFieldPath)
	case wtFieldPath:
		return f.setField(wtFieldSession)
	default:
		return f.setField(wtFieldBranch)
	}
}

func (f *worktreeForm) prevField() tea.Cmd {
	switch f.field {
	case wtFieldBranch:
		return f.setField(wtFieldSession)
	case wtFieldPath:
		return f.setField(wtFieldBranch)
	default:
		return f.setField(wtFieldPath)
	}
}

func (f *worktreeForm) setField(field worktreeField) tea.Cmd {
	f.field = field
	f.branch.Blur()
	f.path.Blur()
	f.session.Blur()
	switch field {
	case wtFieldBranch:
		return f.branch.Focus()
	case wtFieldPath:
		return f.path.Focus()
	default:
		return f.session.Focus()
	}
}

func (f *worktreeForm) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch f.field {
	case wtFieldBranch:
		before := f.branch.Value()
		f.branch, cmd = f.branch.Update(msg)
		if f.branch.Value() != before {
			f.branchEdited()
		}
	case wtFieldPath:
		before := f.path.Value()
		f.path, cmd = f.path.Update(msg)
		if f.path.Value() != before {
			f.pathEdited = true
			f.refreshPathCompletion()
		}
	case wtFieldSession:
		restricted, ok := restrictKey(msg, sessionNameRune)
		if !ok {
			return nil
		}
		before := f.session.Value()
		f.session, cmd = f.session.Update(restricted)
		if f.session.Value() != before {
			f.sessionEdited = true
		}
	}
	return cmd
}

// branchEdited refilters the branch list after a keystroke. The highlight
// drops back to the typed text: the old index pointed into a different
// list.
func (f *worktreeForm) branchEdited() {
	f.filtered = menu.FilterBranches(f.allBranches, f.branch.Value())
	f.branchIdx = -1
	f.derive()
}

// targetBranch is the branch the dialog would act on right now: the
// highlighted entry when there is one, the typed text otherwise.
func (f *worktreeForm) targetBranch() string {
	if f.branchIdx >= 0 && f.branchIdx < len(f.filtered) {
		return f.filtered[f.branchIdx]
	}
	return f.branch.Value()
}

func (f *worktreeForm) derive() {
	branch := f.targetBranch()
	if branch == "" {
		return
	}
	if !f.pathEdited {
		f.path.SetValue(menu.WorktreePath(f.sourceRepo, branch))
		f.path.CursorEnd()
	}
	if !f.sessionEdited {
		f.session.SetValue(menu.SessionNameFor(f.sourceRepo, branch))
		f.session.CursorEnd()
	}
}

func (f *worktreeForm) nextBranch() {
	if len(f.filtered) == 0 {
		return
	}
	f.branchIdx = nextHighlight(f.branchIdx, len(f.filtered))
	f.derive()
}

func (f *worktreeForm) prevBranch() {
	if len(f.filtered) == 0 {
		return
	}
	f.branchIdx = prevHighlight(f.branchIdx, len(f.filtered))
	f.derive()
}

// acceptBranch promotes the highlighted branch, or the first filtered one,
// into the input, then refilters so the list reflects the full name.
func (f *worktreeForm) acceptBranch() {
	var target string
	if f.branchIdx >= 0 && f.branchIdx < len(f.filtered) {
		target = f.filtered[f.branchIdx]
	} else if len(f.filtered) > 0 {
		target = f.filtered[0]
	}
	if target == "" {
		return
	}
	f.branch.SetValue(target)
	f.branch.CursorEnd()
	f.branchEdited()
}

// isNewBranch reports whether submitting now would create a branch rather
// than check out an existing one.
func (f *worktreeForm) isNewBranch() bool {
	if f.branchIdx >= 0 {
		return false
	}
	input := f.branch.Value()
	if input == "" {
		return false
	}
	for _, b := range f.allBranches {
		if b == input {
			return false
		}
	}
	return true
}

func (f *worktreeForm) refreshPathCompletion() {
	f.pathCompletion = complete.Path(f.path.Value())
	f.pathIdx = clampHighlight(f.pathIdx, len(f.pathCompletion.Suggestions))
}

func (f *worktreeForm) nextPathSuggestion() {
	f.pathIdx = nextHighlight(f.pathIdx, len(f.pathCompletion.Suggestions))
}

func (f *worktreeForm) prevPathSuggestion() {
	f.pathIdx = prevHighlight(f.pathIdx, len(f.pathCompletion.Suggestions))
}

func (f *worktreeForm) acceptPathSuggestion() {
	var target string
	if f.pathIdx >= 0 && f.pathIdx < len(f.pathCompletion.Suggestions) {
		target = f.pathCompletion.Suggestions[f.pathIdx]
	} else if len(f.pathCompletion.Suggestions) > 0 {
		target = f.pathCompletion.Suggestions[0]
	}
	if target == "" {
		return
	}
	f.path.SetValue(target)
	f.path.CursorEnd()
	f.pathEdited = true
	f.pathCompletion = complete.Path(target)
	f.pathIdx = -1
}

type prField int

const (
	prFieldTitle prField = iota
	prFieldBody
	prFieldBase
)

// createPRForm backs the pull request dialog: title, optional body, and
// the base branch to merge into.
type createPRForm struct {
	title textinput.Model
	body  textinput.Model
	base  textinput.Model
	field prField
}

func newCreatePRForm(baseBranch string) *createPRForm {
	title := newDialogInput("")
	title.Focus()
	base := newDialogInput(baseBranch)
	base.CursorEnd()
	return &createPRForm{
		title: title,
		body:  newDialogInput(""),
		base:  base,
	}
}

func (f *createPRForm) nextField() tea.Cmd {
	switch f.field {
	case prFieldTitle:
		return f.setField(prFieldBody)
	case prFieldBody:
		return f.setField(prFieldBase)
	default:
		return f.setField(prFieldTitle)
	}
}

func (f *createPRForm) prevField() tea.Cmd {
	switch f.field {
	case prFieldTitle:
		return f.setField(prFieldBase)
	case prFieldBody:
		return f.setField(prFieldTitle)
	default:
		return f.setField(prFieldBody)
	}
}

func (f *createPRForm) setField(field prField) tea.Cmd {
	f.field = field
	f.title.Blur()
	f.body.Blur()
	f.base.Blur()
	switch field {
	case prFieldTitle:
		return f.title.Focus()
	case prFieldBody:
		return f.body.Focus()
	default:
		return f.base.Focus()
	}
}

func (f *createPRForm) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch f.field {
	case prFieldTitle:
		f.title, cmd = f.title.Update(msg)
	case prFieldBody:
		f.body, cmd = f.body.Update(msg)
	case prFieldBase:
		restricted, ok := restrictKey(msg, branchRune)
		if !ok {
			return nil
		}
		f.base, cmd = f.base.Update(restricted)
	}
	return cmd
}
