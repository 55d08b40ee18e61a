package dispatcher

import (
	"github.com/atomicstack/chainpanel/internal/backend"
	"github.com/atomicstack/chainpanel/internal/session"
	"github.com/atomicstack/chainpanel/internal/state"
)

// Result reports which parts of the store changed.
type Result struct {
	CoreUpdated       bool
	SettingsUpdated   bool
	Navigated         bool
	SystemErrorRaised bool
}

// Dispatcher applies backend events to the session store.
type Dispatcher struct {
	sessions state.SessionStore
}

func New(s state.SessionStore) *Dispatcher {
	return &Dispatcher{sessions: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindCore:
		if snapshot, ok := evt.Data.(session.Core); ok {
			d.sessions.SetCore(snapshot.State)
			res.CoreUpdated = true
			if snapshot.Navigation.Seq > d.sessions.Navigation().Seq {
				d.sessions.SetNavigation(snapshot.Navigation)
				res.Navigated = true
			}
			if snapshot.SystemError.Seq > d.sessions.SystemError().Seq {
				d.sessions.SetSystemError(snapshot.SystemError)
				res.SystemErrorRaised = true
			}
		}
	case backend.KindSettings:
		if settings, ok := evt.Data.(session.ServerSettings); ok {
			if settings != d.sessions.Settings() {
				d.sessions.SetSettings(settings)
				res.SettingsUpdated = true
			}
		}
	}
	return res
}
