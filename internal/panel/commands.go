package panel

import (
	"fmt"
	"strconv"
)

// CommandKind names an outbound command understood by the store.
type CommandKind string

const (
	CommandStartMining      CommandKind = "start-mining"
	CommandStopMining       CommandKind = "stop-mining"
	CommandForceMine        CommandKind = "force-mine"
	CommandTakeSnapshot     CommandKind = "take-snapshot"
	CommandRevertSnapshot   CommandKind = "revert-to-snapshot"
	CommandSearch           CommandKind = "search-query"
	CommandInjectDebugError CommandKind = "inject-debug-error"
)

// Command is a single request emitted by the panel. Depth is only set for
// CommandRevertSnapshot; Text carries the query for CommandSearch and the
// message for CommandInjectDebugError.
type Command struct {
	Kind  CommandKind
	Depth int
	Text  string
}

func (c Command) String() string {
	switch c.Kind {
	case CommandRevertSnapshot:
		return string(c.Kind) + "(" + strconv.Itoa(c.Depth) + ")"
	case CommandSearch, CommandInjectDebugError:
		return fmt.Sprintf("%s(%q)", c.Kind, c.Text)
	default:
		return string(c.Kind) + "()"
	}
}

// Dispatcher receives commands in the order the panel emits them. Dispatch
// must not block; delivery and its outcome belong to the implementation.
type Dispatcher interface {
	Dispatch(Command)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(Command)

func (f DispatcherFunc) Dispatch(cmd Command) {
	f(cmd)
}

func startMining() Command { return Command{Kind: CommandStartMining} }

func stopMining() Command { return Command{Kind: CommandStopMining} }

func forceMine() Command { return Command{Kind: CommandForceMine} }

func takeSnapshot() Command { return Command{Kind: CommandTakeSnapshot} }

func revertSnapshot(depth int) Command {
	return Command{Kind: CommandRevertSnapshot, Depth: depth}
}

func searchQuery(text string) Command {
	return Command{Kind: CommandSearch, Text: text}
}

func injectDebugError(message string) Command {
	return Command{Kind: CommandInjectDebugError, Text: message}
}
