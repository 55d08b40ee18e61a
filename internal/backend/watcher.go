package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/chainpanel/internal/logging/events"
	"github.com/atomicstack/chainpanel/internal/session"
	"github.com/cenkalti/backoff/v5"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindCore Kind = iota
	KindSettings
)

func (k Kind) String() string {
	if k == KindSettings {
		return "settings"
	}
	return "core"
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Source is the session store the watcher polls.
type Source interface {
	FetchCore(ctx context.Context) (session.Core, error)
	FetchSettings(ctx context.Context) (session.ServerSettings, error)
}

const (
	settingsIntervalFactor = 4
	maxRetryInterval       = 10 * time.Second
	refreshThrottle        = 50 * time.Millisecond
)

// Watcher polls the session store at a fixed interval and publishes events.
// Failed polls are retried with exponential backoff instead of the regular
// interval.
type Watcher struct {
	source   Source
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	refresh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls source every interval.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		refresh:  make(chan struct{}, 1),
	}

	w.startCorePoller()
	w.startSettingsPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh asks the core poller to fetch again without waiting for the next
// tick. Extra requests while one is pending are dropped.
func (w *Watcher) Refresh() {
	if w == nil {
		return
	}
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startCorePoller() {
	throttle := newThrottle(refreshThrottle)
	w.wg.Add(1)
	go w.poll(KindCore, w.interval, w.refresh, func(ctx context.Context) (interface{}, error) {
		if err := throttle.wait(ctx); err != nil {
			return nil, err
		}
		return w.source.FetchCore(ctx)
	})
}

func (w *Watcher) startSettingsPoller() {
	w.wg.Add(1)
	go w.poll(KindSettings, w.interval*settingsIntervalFactor, nil, func(ctx context.Context) (interface{}, error) {
		return w.source.FetchSettings(ctx)
	})
}

func (w *Watcher) poll(kind Kind, interval time.Duration, refresh <-chan struct{}, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = interval
	retry.MaxInterval = maxRetryInterval
	retry.Reset()

	// emit returns the delay before the next poll, or false once cancelled.
	emit := func() (time.Duration, bool) {
		data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return 0, false
		case w.events <- evt:
		}
		if err != nil {
			events.Backend.Error(kind.String(), err)
			return retry.NextBackOff(), true
		}
		retry.Reset()
		return interval, true
	}

	delay, ok := emit()
	if !ok {
		return
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-refresh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-timer.C:
		}
		if delay, ok = emit(); !ok {
			return
		}
		timer.Reset(delay)
	}
}
