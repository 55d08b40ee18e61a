package command

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/chainpanel/internal/logging/events"
	"github.com/atomicstack/chainpanel/internal/panel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

var ErrClosed = errors.New("command bus closed")

const (
	resultBuffer   = 64
	defaultTimeout = 5 * time.Second
)

// Executor delivers a command to the session store.
type Executor interface {
	Execute(ctx context.Context, cmd panel.Command) error
}

// Request encapsulates one queued command.
type Request struct {
	ID      string
	Command panel.Command
}

// Result reports the outcome of a request. Skipped is set when no executor
// is attached.
type Result struct {
	ID      string
	Command panel.Command
	Err     error
	Skipped bool
}

// Bus executes commands one at a time, in the order they were submitted,
// and reports each outcome on Results. The pending queue is unbounded so no
// submitted command is ever dropped or merged.
type Bus struct {
	exec    Executor
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	pending []Request
	wake    chan struct{}
	results chan Result
}

// New starts a command bus backed by exec.
func New(exec Executor) *Bus {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Bus{
		exec:    exec,
		timeout: defaultTimeout,
		ctx:     ctx,
		cancel:  cancel,
		wake:    make(chan struct{}, 1),
		results: make(chan Result, resultBuffer),
	}
	go b.run()
	return b
}

// Submit queues cmd without blocking. It only fails once the bus is closed.
func (b *Bus) Submit(cmd panel.Command) (Request, error) {
	req := Request{ID: uuid.NewString(), Command: cmd}
	if b.ctx.Err() != nil {
		return req, ErrClosed
	}
	b.mu.Lock()
	b.pending = append(b.pending, req)
	depth := len(b.pending)
	b.mu.Unlock()
	events.Command.Queue(req.ID, cmd.String(), depth)
	select {
	case b.wake <- struct{}{}:
	default:
	}
	return req, nil
}

func (b *Bus) pop() (Request, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return Request{}, false
	}
	req := b.pending[0]
	b.pending[0] = Request{}
	b.pending = b.pending[1:]
	if len(b.pending) == 0 {
		b.pending = nil
	}
	return req, true
}

// Results streams outcomes in submission order. The channel is closed
// after Close.
func (b *Bus) Results() <-chan Result {
	return b.results
}

// Next waits for the next result as a Bubble Tea command. It yields nil once
// the bus is closed.
func (b *Bus) Next() tea.Cmd {
	return func() tea.Msg {
		res, ok := <-b.results
		if !ok {
			return nil
		}
		return res
	}
}

// Close stops the worker. Queued requests that have not started are
// dropped.
func (b *Bus) Close() {
	b.cancel()
}

func (b *Bus) run() {
	defer close(b.results)
	for b.ctx.Err() == nil {
		req, ok := b.pop()
		if !ok {
			select {
			case <-b.ctx.Done():
				return
			case <-b.wake:
			}
			continue
		}
		res := b.execute(req)
		select {
		case <-b.ctx.Done():
			return
		case b.results <- res:
		}
	}
}

func (b *Bus) execute(req Request) Result {
	res := Result{ID: req.ID, Command: req.Command}
	if b.exec == nil {
		events.Command.Skip(req.ID, req.Command.String())
		res.Skipped = true
		return res
	}
	ctx, cancel := context.WithTimeout(b.ctx, b.timeout)
	defer cancel()
	res.Err = b.exec.Execute(ctx, req.Command)
	events.Command.Result(req.ID, req.Command.String(), res.Err)
	return res
}
