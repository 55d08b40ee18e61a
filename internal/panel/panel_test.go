package panel

import (
	"testing"
	"time"

	"github.com/atomicstack/chainpanel/internal/session"
)

type recorder struct {
	commands []Command
}

func (r *recorder) Dispatch(cmd Command) {
	r.commands = append(r.commands, cmd)
}

type fakeRouter struct {
	active Route
	visits []Route
}

func (f *fakeRouter) Navigate(r Route) {
	f.active = r
	f.visits = append(f.visits, r)
}

func (f *fakeRouter) Active() Route { return f.active }

func TestRenderStatusIndicators(t *testing.T) {
	state := session.State{LatestBlock: 1234, GasPrice: 20000000000, GasLimit: 6721975, IsMining: true}
	settings := session.ServerSettings{Blocktime: 5 * time.Second, NetworkID: "5777"}
	view := Render(state, settings, Options{RPCHost: "127.0.0.1"}, RouteBlocks)

	want := map[string]string{
		"CURRENT BLOCK": "1,234",
		"GAS PRICE":     "20,000,000,000",
		"GAS LIMIT":     "6,721,975",
		"NETWORK ID":    "5777",
		"RPC SERVER":    "http://127.0.0.1/web3",
		"MINING STATUS": "5 SEC block time",
	}
	if len(view.Status) != len(want) {
		t.Fatalf("expected %d indicators, got %d", len(want), len(view.Status))
	}
	for _, ind := range view.Status {
		if ind.Value != want[ind.Title] {
			t.Fatalf("%s: expected %q, got %q", ind.Title, want[ind.Title], ind.Value)
		}
		if ind.Busy != (ind.Title == "MINING STATUS") {
			t.Fatalf("%s: unexpected busy flag %v", ind.Title, ind.Busy)
		}
	}
	for _, link := range view.Nav {
		if link.Active != (link.Route == RouteBlocks) {
			t.Fatalf("%s: unexpected active flag %v", link.Route, link.Active)
		}
	}
	toggle, _ := view.Control(ControlMiningToggle)
	if toggle.Label != "Stop MINING" {
		t.Fatalf("expected Stop MINING, got %q", toggle.Label)
	}
}

func TestRenderDefaultsRPCHost(t *testing.T) {
	view := Render(session.State{}, session.ServerSettings{}, Options{}, "")
	for _, ind := range view.Status {
		if ind.Title == "RPC SERVER" && ind.Value != "http://localhost/web3" {
			t.Fatalf("expected localhost rpc server, got %q", ind.Value)
		}
		if ind.Title == "MINING STATUS" && ind.Value != "STOPPED" {
			t.Fatalf("expected STOPPED, got %q", ind.Value)
		}
	}
	if got := len(view.VisibleControls()); got != 1 {
		t.Fatalf("expected only the mining toggle visible, got %d controls", got)
	}
}

func TestMapIgnoresHiddenControls(t *testing.T) {
	view := Render(stateWithDepth(2), session.ServerSettings{}, Options{}, "")
	for _, id := range []ControlID{ControlForceMine, ControlTakeSnapshot, ControlRevert} {
		if cmd, ok := Map(view, Event{Kind: EventActivate, Control: id}); ok {
			t.Fatalf("%s: expected no command while hidden, got %s", id, cmd)
		}
	}
	if _, ok := Map(view, Event{Kind: EventActivate, Control: "unknown"}); ok {
		t.Fatalf("expected unknown control to be ignored")
	}
}

func TestMapRevertUsesDepthAtActivation(t *testing.T) {
	view := Render(stateWithDepth(3), session.ServerSettings{}, Options{ShowAdvancedControls: true}, "")
	cmd, ok := Map(view, Event{Kind: EventActivate, Control: ControlRevert})
	if !ok || cmd.Kind != CommandRevertSnapshot || cmd.Depth != 3 {
		t.Fatalf("expected revert(3), got %s (ok=%v)", cmd, ok)
	}
	view = Render(stateWithDepth(0), session.ServerSettings{}, Options{ShowAdvancedControls: true}, "")
	if _, ok := Map(view, Event{Kind: EventActivate, Control: ControlRevert}); ok {
		t.Fatalf("expected no revert at depth 0")
	}
}

func TestControlPanelRepeatedToggleMatchesDisplayedState(t *testing.T) {
	rec := &recorder{}
	p := New(Options{}, rec, nil)
	p.Observe(session.State{IsMining: false}, session.ServerSettings{})

	for i := 0; i < 3; i++ {
		if !p.Handle(Event{Kind: EventActivate, Control: ControlMiningToggle}) {
			t.Fatalf("expected toggle activation to be handled")
		}
	}
	if len(rec.commands) != 3 {
		t.Fatalf("expected one command per click, got %d", len(rec.commands))
	}
	for _, cmd := range rec.commands {
		if cmd.Kind != CommandStartMining {
			t.Fatalf("expected start-mining for every click, got %s", cmd)
		}
	}

	p.Observe(session.State{IsMining: true}, session.ServerSettings{})
	p.Handle(Event{Kind: EventActivate, Control: ControlMiningToggle})
	if last := rec.commands[len(rec.commands)-1]; last.Kind != CommandStopMining {
		t.Fatalf("expected stop-mining after store reports mining, got %s", last)
	}
}

func TestControlPanelSearchFlow(t *testing.T) {
	rec := &recorder{}
	p := New(Options{}, rec, nil)

	p.Handle(Event{Kind: EventSearchChange, Text: "0x12"})
	p.Handle(Event{Kind: EventSearchChange, Text: "0x1234"})
	if p.Handle(Event{Kind: EventSearchKey, Key: "a"}) {
		t.Fatalf("expected non-submit key to be ignored")
	}
	if len(rec.commands) != 0 {
		t.Fatalf("expected no command before submit, got %v", rec.commands)
	}
	if !p.Handle(Event{Kind: EventSearchKey, Key: SubmitKey}) {
		t.Fatalf("expected submit to be handled")
	}
	if len(rec.commands) != 1 || rec.commands[0] != (Command{Kind: CommandSearch, Text: "0x1234"}) {
		t.Fatalf("expected one search command, got %v", rec.commands)
	}
	if p.SearchText() != "" {
		t.Fatalf("expected search cleared, got %q", p.SearchText())
	}

	p.Handle(Event{Kind: EventSearchChange, Text: "  Error  "})
	p.Handle(Event{Kind: EventSearchKey, Key: SubmitKey})
	if len(rec.commands) != 2 || rec.commands[1].Kind != CommandInjectDebugError {
		t.Fatalf("expected debug command, got %v", rec.commands)
	}
	if p.SearchText() != "" {
		t.Fatalf("expected search cleared after debug command, got %q", p.SearchText())
	}
}

func TestControlPanelCommandOrder(t *testing.T) {
	rec := &recorder{}
	p := New(Options{ShowAdvancedControls: true}, rec, nil)
	p.Observe(stateWithDepth(1), session.ServerSettings{})

	p.Handle(Event{Kind: EventActivate, Control: ControlTakeSnapshot})
	p.Handle(Event{Kind: EventActivate, Control: ControlForceMine})
	p.Handle(Event{Kind: EventActivate, Control: ControlRevert})

	want := []Command{
		{Kind: CommandTakeSnapshot},
		{Kind: CommandForceMine},
		{Kind: CommandRevertSnapshot, Depth: 1},
	}
	if len(rec.commands) != len(want) {
		t.Fatalf("expected %d commands, got %v", len(want), rec.commands)
	}
	for i := range want {
		if rec.commands[i] != want[i] {
			t.Fatalf("command %d: expected %s, got %s", i, want[i], rec.commands[i])
		}
	}
}

func TestControlPanelNavigation(t *testing.T) {
	router := &fakeRouter{}
	p := New(Options{}, nil, router)
	if !p.Handle(Event{Kind: EventNavigate, Route: RouteTransactions}) {
		t.Fatalf("expected navigation handled")
	}
	if p.Handle(Event{Kind: EventNavigate, Route: "settings"}) {
		t.Fatalf("expected unknown route rejected")
	}
	if len(router.visits) != 1 || router.active != RouteTransactions {
		t.Fatalf("unexpected router visits %v", router.visits)
	}
	for _, link := range p.View().Nav {
		if link.Active != (link.Route == RouteTransactions) {
			t.Fatalf("%s: unexpected active flag", link.Route)
		}
	}
}

func TestCommandString(t *testing.T) {
	tests := map[string]Command{
		"start-mining()":             {Kind: CommandStartMining},
		"revert-to-snapshot(2)":      {Kind: CommandRevertSnapshot, Depth: 2},
		`search-query("0x1")`:        {Kind: CommandSearch, Text: "0x1"},
		`inject-debug-error("boom")`: {Kind: CommandInjectDebugError, Text: "boom"},
	}
	for want, cmd := range tests {
		if got := cmd.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
