package panel

import "github.com/atomicstack/chainpanel/internal/session"

// MiningState is the state shown by the mining toggle.
type MiningState int

const (
	MiningStopped MiningState = iota
	MiningActive
)

func (s MiningState) String() string {
	if s == MiningActive {
		return "mining"
	}
	return "stopped"
}

// MiningToggle is bound to the published mining flag. It keeps no state of
// its own, so the action it offers always matches what the store reported
// last: repeated activations before the store catches up emit the same
// command again rather than flipping back and forth.
type MiningToggle struct {
	vm     ViewModel
	mining bool
}

func NewMiningToggle(state session.State, settings session.ServerSettings) MiningToggle {
	return MiningToggle{vm: NewViewModel(state, settings), mining: state.IsMining}
}

func (t MiningToggle) State() MiningState {
	if t.mining {
		return MiningActive
	}
	return MiningStopped
}

// Enabled is true in both states.
func (t MiningToggle) Enabled() bool {
	return true
}

func (t MiningToggle) Label() string {
	if t.mining {
		return "Stop " + t.vm.MiningButtonVerb()
	}
	return "Start " + t.vm.MiningButtonVerb()
}

// Command returns the command offered in the current state.
func (t MiningToggle) Command() Command {
	if t.mining {
		return stopMining()
	}
	return startMining()
}

const forceMineLabel = "Force Mine"

// ForceMineControl mines one block on demand. It only exists when advanced
// controls are enabled.
type ForceMineControl struct {
	visible bool
}

func NewForceMineControl(opts Options) ForceMineControl {
	return ForceMineControl{visible: opts.ShowAdvancedControls}
}

func (f ForceMineControl) Visible() bool { return f.visible }

func (f ForceMineControl) Label() string { return forceMineLabel }

func (f ForceMineControl) Command() (Command, bool) {
	if !f.visible {
		return Command{}, false
	}
	return forceMine(), true
}
