package ui

import (
	"github.com/atomicstack/chainpanel/internal/backend"
	"github.com/atomicstack/chainpanel/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent folds one published snapshot into the store and brings
// the panel, router and error view in line with it.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		logging.Error(evt.Err)
		return
	}
	m.backendLastErr = ""

	res := m.dispatcher.Handle(evt)
	if res.CoreUpdated || res.SettingsUpdated {
		m.syncPanel()
	}
	if res.Navigated {
		nav := m.sessions.Navigation()
		m.router.show(nav.Route, nav.Target)
	}
	if res.SystemErrorRaised {
		m.systemErr = m.sessions.SystemError()
	}
}

func (m *Model) systemErrorVisible() bool {
	return m.systemErr.Seq > m.dismissedErr && m.systemErr.Message != ""
}

func (m *Model) dismissSystemError() {
	m.dismissedErr = m.systemErr.Seq
}
