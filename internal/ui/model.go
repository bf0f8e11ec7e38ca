package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/claude-tmux/internal/backend"
	"github.com/atomicstack/claude-tmux/internal/data/dispatcher"
	"github.com/atomicstack/claude-tmux/internal/forge"
	"github.com/atomicstack/claude-tmux/internal/logging/events"
	"github.com/atomicstack/claude-tmux/internal/menu"
	"github.com/atomicstack/claude-tmux/internal/state"
	"github.com/atomicstack/claude-tmux/internal/theme"
	"github.com/atomicstack/claude-tmux/internal/tmux"
	"github.com/atomicstack/claude-tmux/internal/ui/command"
)

// Mode identifies which input surface owns the next keypress.
type Mode int

const (
	ModeNormal Mode = iota
	ModeActionMenu
	ModeFilter
	ModeConfirmAction
	ModeNewSession
	ModeRename
	ModeCommit
	ModeNewWorktree
	ModeCreatePullRequest
	ModeHelp
)

// String names the mode for trace payloads.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeActionMenu:
		return "action-menu"
	case ModeFilter:
		return "filter"
	case ModeConfirmAction:
		return "confirm"
	case ModeNewSession:
		return "new-session"
	case ModeRename:
		return "rename"
	case ModeCommit:
		return "commit"
	case ModeNewWorktree:
		return "new-worktree"
	case ModeCreatePullRequest:
		return "create-pr"
	case ModeHelp:
		return "help"
	}
	return "unknown"
}

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the session dashboard.
type Model struct {
	socketPath   string
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	verbose      bool
	previewLines int

	mode     Mode
	selected int
	filter   string
	preview  string
	errMsg   string
	infoMsg  string
	quitting bool

	availableActions []menu.SessionAction
	selectedAction   int
	pendingAction    *menu.SessionAction
	prInfo           *forge.PullRequest

	filterInput  string
	renameForm   *renameForm
	commitForm   *commitForm
	sessionForm  *newSessionForm
	worktreeForm *worktreeForm
	prForm       *createPRForm

	sessions   state.SessionStore
	dispatcher *dispatcher.Dispatcher
	backend    *backend.Watcher

	deps    menu.Deps
	env     menu.Env
	runner  *command.Runner
	collect func(string) (backend.Snapshot, error)
	capture func(socketPath, pane string, lines int, stripEmpty bool) (string, error)

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the dashboard from an already-collected snapshot.
func NewModel(socketPath string, snap backend.Snapshot, width, height int, showFooter, verbose bool, previewLines int, watcher *backend.Watcher) *Model {
	sessions := state.NewSessionStore()
	sessions.SetSessions(snap.Sessions)
	sessions.SetCurrent(snap.Current)
	m := &Model{
		socketPath:   socketPath,
		showFooter:   showFooter,
		verbose:      verbose,
		previewLines: previewLines,
		mode:         ModeNormal,
		sessions:     sessions,
		dispatcher:   dispatcher.New(sessions),
		backend:      watcher,
		deps:         menu.DefaultDeps(socketPath),
		env:          menu.DefaultEnv(),
		runner:       command.New(),
		collect:      backend.Collect,
		capture:      tmux.CapturePane,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface. The first preview capture
// happens here rather than in NewModel so constructing a model stays free
// of side effects.
func (m *Model) Init() tea.Cmd {
	m.updatePreview()
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) setMode(next Mode) {
	if next == m.mode {
		return
	}
	events.UI.Mode(m.mode.String(), next.String())
	m.mode = next
}

// clearOutcome resets the action feedback pair. Every input event passes
// through here first, so a message survives exactly until the next
// keypress.
func (m *Model) clearOutcome() {
	m.errMsg = ""
	m.infoMsg = ""
}

func (m *Model) setError(text string) {
	m.errMsg = text
	m.infoMsg = ""
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.errMsg = ""
}

// applyResult folds an action result into the model: refresh first, so the
// action's own outcome wins over any refresh failure, then the outcome,
// then quit.
func (m *Model) applyResult(res menu.ActionResult) tea.Cmd {
	if res.Refresh {
		m.refreshSessions()
	}
	switch {
	case res.Err != nil:
		m.setError(res.Err.Error())
	case res.Info != "":
		m.setInfo(res.Info)
	}
	if res.Quit {
		m.quitting = true
		return tea.Quit
	}
	return nil
}
