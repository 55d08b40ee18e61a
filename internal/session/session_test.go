package session

import (
	"math"
	"testing"
	"time"
)

func TestStateCloneDoesNotShareSnapshots(t *testing.T) {
	orig := State{Snapshots: []SnapshotRef{{ID: 1, Block: 4}}}
	dup := orig.Clone()
	dup.Snapshots[0].Block = 99
	if orig.Snapshots[0].Block != 4 {
		t.Fatalf("expected original snapshot untouched, got %d", orig.Snapshots[0].Block)
	}
	if dup.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", dup.Depth())
	}
}

func TestServerSettingsHasBlocktime(t *testing.T) {
	if (ServerSettings{}).HasBlocktime() {
		t.Fatalf("expected zero blocktime to mean automining")
	}
	if !(ServerSettings{Blocktime: 5 * time.Second}).HasBlocktime() {
		t.Fatalf("expected positive blocktime to be present")
	}
}

func TestBlocktimeFromSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    time.Duration
		wantErr bool
	}{
		{"automining", 0, 0, false},
		{"whole", 5, 5 * time.Second, false},
		{"fractional", 0.5, 500 * time.Millisecond, false},
		{"nanosecond", 1e-9, time.Nanosecond, false},
		{"negative", -1, 0, true},
		{"nan", math.NaN(), 0, true},
		{"inf", math.Inf(1), 0, true},
		{"overflow", 1e10, 0, true},
		{"max int64 boundary", float64(math.MaxInt64) / float64(time.Second), 0, true},
		{"below nanosecond", 1e-10, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BlocktimeFromSeconds(tt.seconds)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v seconds, got %s", tt.seconds, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("convert %v: %v", tt.seconds, err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
