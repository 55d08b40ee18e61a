// Package session holds the read-only state a development node publishes to
// the control panel.
package session

import (
	"fmt"
	"math"
	"time"
)

// SnapshotRef marks one recorded checkpoint. The panel only counts them.
type SnapshotRef struct {
	ID    int
	Block uint64
}

// State is the core session status owned by the store.
type State struct {
	LatestBlock uint64
	GasPrice    uint64
	GasLimit    uint64
	IsMining    bool
	Snapshots   []SnapshotRef
}

// Depth returns the number of snapshots taken so far.
func (s State) Depth() int {
	return len(s.Snapshots)
}

// Clone returns a copy that does not share the snapshot slice.
func (s State) Clone() State {
	dup := s
	if len(s.Snapshots) == 0 {
		dup.Snapshots = nil
		return dup
	}
	dup.Snapshots = make([]SnapshotRef, len(s.Snapshots))
	copy(dup.Snapshots, s.Snapshots)
	return dup
}

// ServerSettings describes how the node was started. A zero Blocktime means
// the node automines.
type ServerSettings struct {
	Blocktime time.Duration
	NetworkID string
}

// HasBlocktime reports whether the node mines on a fixed interval.
func (s ServerSettings) HasBlocktime() bool {
	return s.Blocktime > 0
}

// Navigation is a route the store asks the UI to show, usually as the
// outcome of a search. Seq increases with every request.
type Navigation struct {
	Route  string
	Target string
	Seq    uint64
}

// SystemError is an application-wide error published by the store. Seq
// increases every time a new error is raised.
type SystemError struct {
	Message string
	Seq     uint64
}

// Core bundles everything the store publishes on each poll apart from
// settings.
type Core struct {
	State       State
	Navigation  Navigation
	SystemError SystemError
}

// BlocktimeFromSeconds converts a configured interval in seconds. Zero means
// automining. Values that are negative, not finite, too large for a Duration,
// or positive but shorter than a nanosecond are rejected.
func BlocktimeFromSeconds(seconds float64) (time.Duration, error) {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("blocktime must be a non-negative number of seconds (got %v)", seconds)
	}
	ns := seconds * float64(time.Second)
	if ns >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("blocktime %v seconds is too large", seconds)
	}
	d := time.Duration(ns)
	if seconds > 0 && d == 0 {
		return 0, fmt.Errorf("blocktime %v seconds is shorter than a nanosecond", seconds)
	}
	return d, nil
}
