package panel

import (
	"strconv"

	"github.com/atomicstack/chainpanel/internal/session"
)

// SnapshotStack exposes the take/revert controls for the snapshot stack.
// Depth is the number of snapshots taken; the next snapshot gets id depth+1
// and a revert always targets the top of the stack.
type SnapshotStack struct {
	depth   int
	visible bool
}

func NewSnapshotStack(state session.State, opts Options) SnapshotStack {
	return SnapshotStack{depth: state.Depth(), visible: opts.ShowAdvancedControls}
}

func (s SnapshotStack) Depth() int { return s.depth }

// Visible reports whether the take control is rendered at all.
func (s SnapshotStack) Visible() bool { return s.visible }

func (s SnapshotStack) TakeLabel() string {
	return "TAKE SNAPSHOT #" + strconv.Itoa(s.depth+1)
}

func (s SnapshotStack) TakeCommand() (Command, bool) {
	if !s.visible {
		return Command{}, false
	}
	return takeSnapshot(), true
}

// RevertVisible reports whether the revert control is rendered.
func (s SnapshotStack) RevertVisible() bool {
	return s.visible && s.depth > 0
}

// RevertEnabled guards the revert control independently of visibility.
func (s SnapshotStack) RevertEnabled() bool {
	return s.depth > 0
}

func (s SnapshotStack) RevertLabel() string {
	if s.depth <= 1 {
		return "REVERT TO BASE"
	}
	return "REVERT TO SNAPSHOT #" + strconv.Itoa(s.depth-1)
}

// RevertCommand carries the current depth; the store pops back past that
// many snapshots.
func (s SnapshotStack) RevertCommand() (Command, bool) {
	if !s.RevertVisible() || !s.RevertEnabled() {
		return Command{}, false
	}
	return revertSnapshot(s.depth), true
}
