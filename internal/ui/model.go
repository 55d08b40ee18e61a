package ui

import (
	"reflect"
	"sync"
	"time"

	"github.com/atomicstack/chainpanel/internal/backend"
	"github.com/atomicstack/chainpanel/internal/data/dispatcher"
	"github.com/atomicstack/chainpanel/internal/panel"
	"github.com/atomicstack/chainpanel/internal/session"
	"github.com/atomicstack/chainpanel/internal/state"
	"github.com/atomicstack/chainpanel/internal/theme"
	"github.com/atomicstack/chainpanel/internal/ui/command"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const (
	locationSeparator = "→"
	searchFieldWidth  = 66 // fits a 0x-prefixed transaction hash
)

var styles = theme.Default()

var zoneOnce sync.Once

// ensureZones installs the global click-zone manager the view marks
// controls with.
func ensureZones() {
	zoneOnce.Do(func() {
		if zone.DefaultManager == nil {
			zone.NewGlobal()
		}
	})
}

type msgHandler func(tea.Msg) tea.Cmd

// Config describes how the panel is presented.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Panel      panel.Options
}

// Model implements the Bubble Tea model for the node control panel.
type Model struct {
	panel    *panel.ControlPanel
	queue    *commandQueue
	router   *router
	bus      *command.Bus
	backend  *backend.Watcher
	sessions state.SessionStore

	dispatcher *dispatcher.Dispatcher

	search  textinput.Model
	spinner spinner.Model
	keys    keyMap
	help    help.Model
	focus   focusTarget

	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	backendLastErr string
	systemErr      session.SystemError
	dismissedErr   uint64
	showHelp       bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the control panel to exec, which receives every emitted
// command, and to watcher, which publishes session snapshots. Either may be
// nil.
func NewModel(cfg Config, exec command.Executor, watcher *backend.Watcher) *Model {
	ensureZones()
	sessions := state.NewSessionStore()
	queue := &commandQueue{}
	nav := newRouter()

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = panel.SearchPlaceholder
	search.CharLimit = 0
	search.Width = searchFieldWidth
	if styles.SearchPlaceholder != nil {
		search.PlaceholderStyle = *styles.SearchPlaceholder
	}
	if styles.SearchText != nil {
		search.TextStyle = *styles.SearchText
	}

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	if styles.Spinner != nil {
		spin.Style = *styles.Spinner
	}

	keys := newKeyMap()
	keys.setAdvanced(cfg.Panel.ShowAdvancedControls)

	m := &Model{
		panel:      panel.New(cfg.Panel, queue, nav),
		queue:      queue,
		router:     nav,
		bus:        command.New(exec),
		backend:    watcher,
		sessions:   sessions,
		dispatcher: dispatcher.New(sessions),
		search:     search,
		spinner:    spin,
		keys:       keys,
		help:       help.New(),
		focus:      toggleTarget,
		showFooter: cfg.ShowFooter,
		verbose:    cfg.Verbose,
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.bus.Next(), m.spinner.Tick}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.flushCommands()
	return m, m.finishUpdate(cmds)
}

// Close stops the command bus.
func (m *Model) Close() {
	m.bus.Close()
}

// Observe feeds a session snapshot straight into the model, bypassing the
// backend watcher.
func (m *Model) Observe(state session.State, settings session.ServerSettings) {
	m.sessions.SetCore(state)
	m.sessions.SetSettings(settings)
	m.syncPanel()
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
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
	// cursor blink and other textinput internals
	if m.searchFocused() {
		return m.forwardToSearch
	}
	return nil
}

func (m *Model) forwardToSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

func (m *Model) handleSpinnerMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) syncPanel() {
	m.panel.Observe(m.sessions.Core(), m.sessions.Settings())
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
