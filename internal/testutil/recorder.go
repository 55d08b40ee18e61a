package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/atomicstack/chainpanel/internal/panel"
)

// RecordingExecutor records every command it receives. Commands listed in
// Fail return the mapped error instead of succeeding.
type RecordingExecutor struct {
	mu       sync.Mutex
	commands []panel.Command
	Fail     map[panel.CommandKind]error
	notify   chan struct{}
}

// NewRecordingExecutor returns an executor that accepts every command.
func NewRecordingExecutor() *RecordingExecutor {
	return &RecordingExecutor{notify: make(chan struct{}, 1)}
}

func (r *RecordingExecutor) Execute(ctx context.Context, cmd panel.Command) error {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	err := r.Fail[cmd.Kind]
	r.mu.Unlock()
	select {
	case r.notify <- struct{}{}:
	default:
	}
	return err
}

// Commands returns a copy of the received commands in arrival order.
func (r *RecordingExecutor) Commands() []panel.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]panel.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Strings renders the received commands with Command.String.
func (r *RecordingExecutor) Strings() []string {
	cmds := r.Commands()
	out := make([]string, len(cmds))
	for i, cmd := range cmds {
		out[i] = cmd.String()
	}
	return out
}

// WaitFor blocks until at least n commands have arrived, failing the test
// after timeout.
func (r *RecordingExecutor) WaitFor(t *testing.T, n int, timeout time.Duration) []panel.Command {
	t.Helper()
	deadline := time.After(timeout)
	for {
		if cmds := r.Commands(); len(cmds) >= n {
			return cmds
		}
		select {
		case <-r.notify:
		case <-deadline:
			t.Fatalf("timed out waiting for %d commands, got %v", n, r.Strings())
			return nil
		}
	}
}
