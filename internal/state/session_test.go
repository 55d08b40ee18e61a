package state

import (
	"testing"

	"github.com/atomicstack/chainpanel/internal/session"
)

func TestSessionStoreCopiesSnapshots(t *testing.T) {
	store := NewSessionStore()
	refs := []session.SnapshotRef{{ID: 1}}
	store.SetCore(session.State{Snapshots: refs})
	refs[0].ID = 42
	if got := store.Core().Snapshots[0].ID; got != 1 {
		t.Fatalf("expected stored snapshot unaffected by caller mutation, got %d", got)
	}
	core := store.Core()
	core.Snapshots = append(core.Snapshots, session.SnapshotRef{ID: 2})
	if store.Core().Depth() != 1 {
		t.Fatalf("expected returned copy to be detached")
	}
}
