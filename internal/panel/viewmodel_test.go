package panel

import (
	"testing"
	"time"

	"github.com/atomicstack/chainpanel/internal/session"
)

func TestViewModelLabels(t *testing.T) {
	tests := []struct {
		name      string
		mining    bool
		blocktime time.Duration
		timeLabel string
		status    string
		verb      string
	}{
		{"interval mining", true, 5 * time.Second, "5 SEC block time", "5 SEC block time", "MINING"},
		{"interval stopped", false, 5 * time.Second, "5 SEC block time", "STOPPED", "MINING"},
		{"automining", true, 0, "Automining", "Automining", "AUTOMINING"},
		{"automining stopped", false, 0, "Automining", "STOPPED", "AUTOMINING"},
		{"fractional blocktime", true, 1500 * time.Millisecond, "1.5 SEC block time", "1.5 SEC block time", "MINING"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := NewViewModel(session.State{IsMining: tt.mining}, session.ServerSettings{Blocktime: tt.blocktime})
			if got := vm.MiningTimeLabel(); got != tt.timeLabel {
				t.Fatalf("expected time label %q, got %q", tt.timeLabel, got)
			}
			if got := vm.MiningStatusLabel(); got != tt.status {
				t.Fatalf("expected status %q, got %q", tt.status, got)
			}
			if got := vm.MiningButtonVerb(); got != tt.verb {
				t.Fatalf("expected verb %q, got %q", tt.verb, got)
			}
		})
	}
}
