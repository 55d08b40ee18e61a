package panel

import (
	"testing"
	"time"

	"github.com/atomicstack/chainpanel/internal/session"
)

func TestMiningToggleFollowsPublishedState(t *testing.T) {
	mining := NewMiningToggle(session.State{IsMining: true}, session.ServerSettings{Blocktime: 5 * time.Second})
	if mining.State() != MiningActive {
		t.Fatalf("expected mining state, got %s", mining.State())
	}
	if got := mining.Label(); got != "Stop MINING" {
		t.Fatalf("expected Stop MINING, got %q", got)
	}
	if cmd := mining.Command(); cmd.Kind != CommandStopMining {
		t.Fatalf("expected stop command, got %s", cmd)
	}

	stopped := NewMiningToggle(session.State{}, session.ServerSettings{})
	if stopped.State() != MiningStopped {
		t.Fatalf("expected stopped state, got %s", stopped.State())
	}
	if got := stopped.Label(); got != "Start AUTOMINING" {
		t.Fatalf("expected Start AUTOMINING, got %q", got)
	}
	if cmd := stopped.Command(); cmd.Kind != CommandStartMining {
		t.Fatalf("expected start command, got %s", cmd)
	}
	if !stopped.Enabled() || !mining.Enabled() {
		t.Fatalf("expected toggle enabled in both states")
	}
}

func TestForceMineHiddenWithoutAdvancedControls(t *testing.T) {
	hidden := NewForceMineControl(Options{})
	if hidden.Visible() {
		t.Fatalf("expected force mine hidden by default")
	}
	if _, ok := hidden.Command(); ok {
		t.Fatalf("expected no command from hidden force mine")
	}
	shown := NewForceMineControl(Options{ShowAdvancedControls: true})
	cmd, ok := shown.Command()
	if !ok || cmd.Kind != CommandForceMine {
		t.Fatalf("expected force-mine command, got %s (ok=%v)", cmd, ok)
	}
	if shown.Label() != "Force Mine" {
		t.Fatalf("unexpected label %q", shown.Label())
	}
}
