package ui

import (
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/backend"
	"github.com/atomicstack/loandesk/internal/data/dispatcher"
	"github.com/atomicstack/loandesk/internal/domain"
	"github.com/atomicstack/loandesk/internal/menu"
	"github.com/atomicstack/loandesk/internal/state"
	"github.com/atomicstack/loandesk/internal/theme"
	"github.com/atomicstack/loandesk/internal/ui/command"
	uistate "github.com/atomicstack/loandesk/internal/ui/state"
)

type level = uistate.Level

type Mode int

const (
	ModeMenu Mode = iota
	ModeDialog
)

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "dashboard"
	rootLevelID         = "root"
)

var styles = theme.Default()

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, kind uistate.Kind, items []menu.Item) *level {
	return uistate.NewLevel(id, title, kind, items)
}

// Model implements the Bubble Tea model for the loan dashboard.
type Model struct {
	stack             []*level
	loading           bool
	pendingID         string
	pendingLabel      string
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	backend           *backend.Watcher
	backendState      map[backend.Kind]error
	backendLastErr    string
	showFooter        bool
	verbose           bool
	draftForm         *menu.DraftForm
	dialog            uistate.Dialog
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	nav        *uistate.Navigation
	bus        *command.Bus
	mode       Mode
	company    string
	today      string
	datasets   state.DatasetStore
	dispatcher *dispatcher.Dispatcher
}

// Options configures a Model. Zero Width or Height follows the terminal
// size; an empty Section starts on the sidebar.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Watcher    *backend.Watcher
	Section    string
}

// NewModel initialises the UI with the sidebar as the root level. A non-empty
// section opens that section's list straight away.
func NewModel(ds domain.Dataset, opts Options) *Model {
	registry := menu.BuildRegistry(ds)
	datasets := state.NewDatasetStore(ds)
	m := &Model{
		stack:        []*level{newLevel(rootLevelID, "Sections", uistate.KindSidebar, registry.Items())},
		nav:          uistate.NewNavigation(registry, ""),
		bus:          command.New(),
		backend:      opts.Watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		mode:         ModeMenu,
		company:      ds.Company,
		today:        ds.Today,
		datasets:     datasets,
		dispatcher:   dispatcher.New(datasets),
		width:        max(opts.Width, 0),
		height:       max(opts.Height, 0),
		fixedWidth:   opts.Width > 0,
		fixedHeight:  opts.Height > 0,
		filterCursor: newFilterCursor(),
	}
	m.applySectionOverride(opts.Section)
	m.registerHandlers()
	return m
}

func newFilterCursor() cursor.Model {
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	return c
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	cmds = append(cmds, m.filterCursor.Focus())
	return batch(cmds)
}

// Update responds to Bubble Tea messages. An open dialog sees every message
// first; anything it does not consume goes to the handler for its type.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.updateFilterCursorModel(msg)}
	handled := false
	if m.mode == ModeDialog {
		var cmd tea.Cmd
		handled, cmd = m.handleDraftForm(msg)
		cmds = append(cmds, cmd)
	}
	if !handled {
		if handler := m.handlerFor(msg); handler != nil {
			cmds = append(cmds, handler(msg))
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(menu.DraftPrompt{}):  m.handleDraftPromptMsg,
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

// finishUpdate restarts the caret blink after the caret moved so it stays
// solid while typing.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		cmds = append(cmds, m.filterCursor.BlinkCmd())
	}
	return batch(cmds)
}

// batch drops nil commands and returns nil when none are left.
func batch(cmds []tea.Cmd) tea.Cmd {
	cmds = slices.DeleteFunc(cmds, func(cmd tea.Cmd) bool { return cmd == nil })
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// ActiveSection returns the identifier of the section being shown.
func (m *Model) ActiveSection() string {
	if s := m.nav.Section(); s != nil {
		return s.ID
	}
	return ""
}

// DialogState reports whether a dialog is showing.
func (m *Model) DialogState() uistate.DialogState {
	return m.dialog.State
}
