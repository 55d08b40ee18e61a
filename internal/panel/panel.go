package panel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/atomicstack/chainpanel/internal/logging/events"
	"github.com/atomicstack/chainpanel/internal/session"
	"github.com/dustin/go-humanize"
)

// Options configures which controls the panel offers.
type Options struct {
	// ShowAdvancedControls reveals force-mine and the snapshot controls.
	ShowAdvancedControls bool
	// RPCHost is displayed in the RPC SERVER indicator.
	RPCHost string
}

// Route identifies a navigation target.
type Route string

const (
	RouteAccounts     Route = "accounts"
	RouteBlocks       Route = "blocks"
	RouteTransactions Route = "transactions"
	RouteLogs         Route = "logs"
)

var navRoutes = []struct {
	route Route
	label string
}{
	{RouteAccounts, "Accounts"},
	{RouteBlocks, "Blocks"},
	{RouteTransactions, "Transactions"},
	{RouteLogs, "Logs"},
}

// Routes lists the navigation targets in menu order.
func Routes() []Route {
	out := make([]Route, len(navRoutes))
	for i, entry := range navRoutes {
		out[i] = entry.route
	}
	return out
}

// ParseRoute resolves a route identifier.
func ParseRoute(id string) (Route, bool) {
	for _, entry := range navRoutes {
		if string(entry.route) == id {
			return entry.route, true
		}
	}
	return "", false
}

// Router is the routing collaborator: it navigates to a named route and
// reports the active one so the menu can highlight it.
type Router interface {
	Navigate(Route)
	Active() Route
}

// ControlID names an activatable control.
type ControlID string

const (
	ControlMiningToggle ControlID = "mining-toggle"
	ControlForceMine    ControlID = "force-mine"
	ControlTakeSnapshot ControlID = "take-snapshot"
	ControlRevert       ControlID = "revert-snapshot"
)

// NavLink is one entry of the navigation menu.
type NavLink struct {
	Route  Route
	Label  string
	Active bool
}

// Indicator is one entry of the status row.
type Indicator struct {
	Title string
	Value string
	Busy  bool
}

// Control is a button. Hidden controls are listed with Visible unset so
// callers can keep a stable order.
type Control struct {
	ID      ControlID
	Label   string
	Visible bool
	Enabled bool
}

// View is everything the panel displays for one session snapshot.
type View struct {
	Nav               []NavLink
	SearchPlaceholder string
	Status            []Indicator
	Controls          []Control

	Mining bool
	Depth  int
}

// Control looks up a control by id.
func (v View) Control(id ControlID) (Control, bool) {
	for _, c := range v.Controls {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}

// VisibleControls returns the rendered controls in display order.
func (v View) VisibleControls() []Control {
	out := make([]Control, 0, len(v.Controls))
	for _, c := range v.Controls {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// Render derives the view for a session snapshot.
func Render(state session.State, settings session.ServerSettings, opts Options, active Route) View {
	vm := NewViewModel(state, settings)
	toggle := NewMiningToggle(state, settings)
	force := NewForceMineControl(opts)
	stack := NewSnapshotStack(state, opts)

	nav := make([]NavLink, len(navRoutes))
	for i, entry := range navRoutes {
		nav[i] = NavLink{Route: entry.route, Label: entry.label, Active: entry.route == active}
	}

	return View{
		Nav:               nav,
		SearchPlaceholder: SearchPlaceholder,
		Status: []Indicator{
			{Title: "CURRENT BLOCK", Value: formatNumber(state.LatestBlock)},
			{Title: "GAS PRICE", Value: formatNumber(state.GasPrice)},
			{Title: "GAS LIMIT", Value: formatNumber(state.GasLimit)},
			{Title: "NETWORK ID", Value: settings.NetworkID},
			{Title: "RPC SERVER", Value: rpcServer(opts.RPCHost)},
			{Title: "MINING STATUS", Value: vm.MiningStatusLabel(), Busy: state.IsMining},
		},
		Controls: []Control{
			{ID: ControlMiningToggle, Label: toggle.Label(), Visible: true, Enabled: toggle.Enabled()},
			{ID: ControlForceMine, Label: force.Label(), Visible: force.Visible(), Enabled: true},
			{ID: ControlTakeSnapshot, Label: stack.TakeLabel(), Visible: stack.Visible(), Enabled: true},
			{ID: ControlRevert, Label: stack.RevertLabel(), Visible: stack.RevertVisible(), Enabled: stack.RevertEnabled()},
		},
		Mining: state.IsMining,
		Depth:  stack.Depth(),
	}
}

func formatNumber(v uint64) string {
	if v > math.MaxInt64 {
		return strconv.FormatUint(v, 10)
	}
	return humanize.Comma(int64(v))
}

func rpcServer(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s/web3", host)
}

// EventKind classifies user interaction.
type EventKind int

const (
	// EventActivate is a click or keyboard activation of a control.
	EventActivate EventKind = iota
	// EventNavigate selects a navigation route.
	EventNavigate
	// EventSearchChange carries the full editor text after an edit.
	EventSearchChange
	// EventSearchKey is a key pressed while the search field has focus.
	EventSearchKey
)

// Event is one discrete user interaction.
type Event struct {
	Kind    EventKind
	Control ControlID
	Route   Route
	Text    string
	Key     string
}

var activations = map[ControlID]func(View) Command{
	ControlMiningToggle: func(v View) Command {
		if v.Mining {
			return stopMining()
		}
		return startMining()
	},
	ControlForceMine:    func(View) Command { return forceMine() },
	ControlTakeSnapshot: func(View) Command { return takeSnapshot() },
	ControlRevert:       func(v View) Command { return revertSnapshot(v.Depth) },
}

// Map returns the command an activation produces against the displayed
// view. Hidden or disabled controls produce nothing.
func Map(v View, ev Event) (Command, bool) {
	if ev.Kind != EventActivate {
		return Command{}, false
	}
	control, ok := v.Control(ev.Control)
	if !ok || !control.Visible || !control.Enabled {
		return Command{}, false
	}
	build, ok := activations[ev.Control]
	if !ok {
		return Command{}, false
	}
	return build(v), true
}

// ControlPanel composes the panel's controls around the latest observed
// snapshot and forwards emitted commands to its Dispatcher.
type ControlPanel struct {
	opts       Options
	dispatcher Dispatcher
	router     Router
	search     SearchDispatcher

	state    session.State
	settings session.ServerSettings
}

// New builds a panel. router may be nil when navigation is not needed.
func New(opts Options, dispatcher Dispatcher, router Router) *ControlPanel {
	return &ControlPanel{opts: opts, dispatcher: dispatcher, router: router}
}

// Observe records the latest snapshot published by the store.
func (p *ControlPanel) Observe(state session.State, settings session.ServerSettings) {
	p.state = state
	p.settings = settings
}

func (p *ControlPanel) Options() Options {
	return p.opts
}

// View renders the latest observed snapshot.
func (p *ControlPanel) View() View {
	return Render(p.state, p.settings, p.opts, p.activeRoute())
}

// SearchText returns the current search field contents.
func (p *ControlPanel) SearchText() string {
	return p.search.Value()
}

// Handle applies one event and reports whether it was consumed.
func (p *ControlPanel) Handle(ev Event) bool {
	switch ev.Kind {
	case EventNavigate:
		if _, ok := ParseRoute(string(ev.Route)); !ok || p.router == nil {
			return false
		}
		events.Nav.Navigate(string(ev.Route))
		p.router.Navigate(ev.Route)
		return true
	case EventSearchChange:
		p.search.Change(ev.Text)
		events.Search.Change(ev.Text)
		return true
	case EventSearchKey:
		if ev.Key != SubmitKey {
			return false
		}
		cmd := p.search.Submit()
		if cmd.Kind == CommandInjectDebugError {
			events.Search.Debug()
		} else {
			events.Search.Submit(cmd.Text)
		}
		p.emit(cmd)
		return true
	case EventActivate:
		cmd, ok := Map(p.View(), ev)
		if !ok {
			return false
		}
		p.emit(cmd)
		return true
	}
	return false
}

func (p *ControlPanel) activeRoute() Route {
	if p.router == nil {
		return ""
	}
	return p.router.Active()
}

func (p *ControlPanel) emit(cmd Command) {
	events.Panel.Emit(string(cmd.Kind), cmd.String())
	if p.dispatcher == nil {
		return
	}
	p.dispatcher.Dispatch(cmd)
}
