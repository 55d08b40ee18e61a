// Package devnode is an in-memory stand-in for the session store of a local
// development chain. It executes panel commands and publishes the resulting
// session state to pollers.
package devnode

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/chainpanel/internal/logging/events"
	"github.com/atomicstack/chainpanel/internal/panel"
	"github.com/atomicstack/chainpanel/internal/session"
)

const (
	DefaultGasPrice  uint64 = 20000000000
	DefaultGasLimit  uint64 = 6721975
	DefaultNetworkID        = "5777"

	idlePoll = 250 * time.Millisecond
	minTick  = idlePoll / 10
)

var (
	ErrInvalidSnapshot = errors.New("invalid snapshot id")
	ErrEmptyQuery      = errors.New("empty search query")
	ErrNotFound        = errors.New("no results")
	ErrUnknownCommand  = errors.New("unknown command")
)

var (
	txHashPattern  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// Node holds the simulated chain session.
type Node struct {
	mu       sync.Mutex
	state    session.State
	settings session.ServerSettings
	nav      session.Navigation
	sysErr   session.SystemError
	nextSnap int
}

// Option customises a Node.
type Option func(*Node)

// WithMining starts the node with mining enabled.
func WithMining(enabled bool) Option {
	return func(n *Node) { n.state.IsMining = enabled }
}

// WithLatestBlock sets the initial block height.
func WithLatestBlock(block uint64) Option {
	return func(n *Node) { n.state.LatestBlock = block }
}

// New creates a node with the given server settings.
func New(settings session.ServerSettings, opts ...Option) *Node {
	if settings.NetworkID == "" {
		settings.NetworkID = DefaultNetworkID
	}
	n := &Node{
		state: session.State{
			GasPrice: DefaultGasPrice,
			GasLimit: DefaultGasLimit,
			IsMining: true,
		},
		settings: settings,
		nextSnap: 1,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// FetchCore returns the published core snapshot.
func (n *Node) FetchCore(ctx context.Context) (session.Core, error) {
	if err := ctx.Err(); err != nil {
		return session.Core{}, err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return session.Core{
		State:       n.state.Clone(),
		Navigation:  n.nav,
		SystemError: n.sysErr,
	}, nil
}

// FetchSettings returns the current server settings.
func (n *Node) FetchSettings(ctx context.Context) (session.ServerSettings, error) {
	if err := ctx.Err(); err != nil {
		return session.ServerSettings{}, err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.settings, nil
}

// SetSettings replaces the server settings, e.g. after the settings file
// changed. An empty network id keeps the current one.
func (n *Node) SetSettings(settings session.ServerSettings) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if settings.NetworkID == "" {
		settings.NetworkID = n.settings.NetworkID
	}
	n.settings = settings
}

// Execute applies one panel command.
func (n *Node) Execute(ctx context.Context, cmd panel.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	switch cmd.Kind {
	case panel.CommandStartMining:
		n.state.IsMining = true
	case panel.CommandStopMining:
		n.state.IsMining = false
	case panel.CommandForceMine:
		n.mineLocked(true)
	case panel.CommandTakeSnapshot:
		n.state.Snapshots = append(n.state.Snapshots, session.SnapshotRef{ID: n.nextSnap, Block: n.state.LatestBlock})
		n.nextSnap++
	case panel.CommandRevertSnapshot:
		return n.revertLocked(cmd.Depth)
	case panel.CommandSearch:
		return n.searchLocked(cmd.Text)
	case panel.CommandInjectDebugError:
		n.sysErr = session.SystemError{Message: cmd.Text, Seq: n.sysErr.Seq + 1}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}
	return nil
}

// Run mines a block every blocktime while mining is enabled. It returns
// when ctx is cancelled.
func (n *Node) Run(ctx context.Context) {
	for {
		timer := time.NewTimer(n.nextTick())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			n.tick()
		}
	}
}

func (n *Node) nextTick() time.Duration {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state.IsMining && n.settings.HasBlocktime() {
		return max(n.settings.Blocktime, minTick)
	}
	return idlePoll
}

func (n *Node) tick() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state.IsMining && n.settings.HasBlocktime() {
		n.mineLocked(false)
	}
}

func (n *Node) mineLocked(forced bool) {
	n.state.LatestBlock++
	events.Node.Block(n.state.LatestBlock, forced)
}

// revertLocked pops the stack back past depth snapshots, restoring the block
// height recorded by snapshot depth.
func (n *Node) revertLocked(depth int) error {
	if depth < 1 || depth > len(n.state.Snapshots) {
		return fmt.Errorf("%w: %d", ErrInvalidSnapshot, depth)
	}
	target := n.state.Snapshots[depth-1]
	n.state.LatestBlock = target.Block
	n.state.Snapshots = append([]session.SnapshotRef(nil), n.state.Snapshots[:depth-1]...)
	events.Node.Revert(depth, target.Block)
	return nil
}

func (n *Node) searchLocked(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptyQuery
	}
	route, target, err := n.resolveLocked(query)
	if err != nil {
		return err
	}
	n.nav = session.Navigation{Route: string(route), Target: target, Seq: n.nav.Seq + 1}
	return nil
}

func (n *Node) resolveLocked(query string) (panel.Route, string, error) {
	if number, err := strconv.ParseUint(query, 10, 64); err == nil {
		if number > n.state.LatestBlock {
			return "", "", fmt.Errorf("%w: block %d", ErrNotFound, number)
		}
		return panel.RouteBlocks, query, nil
	}
	switch {
	case txHashPattern.MatchString(query):
		return panel.RouteTransactions, strings.ToLower(query), nil
	case addressPattern.MatchString(query):
		return panel.RouteAccounts, strings.ToLower(query), nil
	}
	return "", "", fmt.Errorf("%w for %q", ErrNotFound, query)
}
