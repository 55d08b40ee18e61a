package testutil

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/chainpanel/internal/panel"
)

func TestRecordingExecutorRecordsInOrder(t *testing.T) {
	rec := NewRecordingExecutor()
	boom := errors.New("boom")
	rec.Fail = map[panel.CommandKind]error{panel.CommandForceMine: boom}

	if err := rec.Execute(context.Background(), panel.Command{Kind: panel.CommandStartMining}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rec.Execute(context.Background(), panel.Command{Kind: panel.CommandForceMine}); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	got := rec.WaitFor(t, 2, time.Second)
	if got[0].Kind != panel.CommandStartMining || got[1].Kind != panel.CommandForceMine {
		t.Fatalf("unexpected order %v", rec.Strings())
	}
}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[1mbold\x1b[0m  \nnext"); got != "bold\nnext" {
		t.Fatalf("unexpected output %q", got)
	}
}
