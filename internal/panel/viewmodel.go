package panel

import (
	"strconv"

	"github.com/atomicstack/chainpanel/internal/session"
)

const (
	automining   = "Automining"
	stoppedLabel = "STOPPED"
)

// ViewModel derives display strings from a session snapshot. It has no
// state of its own and every method is a total function of its inputs.
type ViewModel struct {
	state    session.State
	settings session.ServerSettings
}

func NewViewModel(state session.State, settings session.ServerSettings) ViewModel {
	return ViewModel{state: state, settings: settings}
}

// MiningTimeLabel describes how blocks are produced.
func (v ViewModel) MiningTimeLabel() string {
	if v.settings.HasBlocktime() {
		return formatSeconds(v.settings) + " SEC block time"
	}
	return automining
}

// MiningStatusLabel is the value of the MINING STATUS indicator.
func (v ViewModel) MiningStatusLabel() string {
	if !v.state.IsMining {
		return stoppedLabel
	}
	return v.MiningTimeLabel()
}

// MiningButtonVerb is the noun used on the mining toggle.
func (v ViewModel) MiningButtonVerb() string {
	if v.settings.HasBlocktime() {
		return "MINING"
	}
	return "AUTOMINING"
}

func formatSeconds(settings session.ServerSettings) string {
	return strconv.FormatFloat(settings.Blocktime.Seconds(), 'f', -1, 64)
}
