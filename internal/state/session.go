package state

import "github.com/atomicstack/chainpanel/internal/session"

// SessionStore caches the latest snapshot published by the node so the UI
// always renders from a consistent copy.
type SessionStore interface {
	Core() session.State
	SetCore(session.State)
	Settings() session.ServerSettings
	SetSettings(session.ServerSettings)
	Navigation() session.Navigation
	SetNavigation(session.Navigation)
	SystemError() session.SystemError
	SetSystemError(session.SystemError)
}

type sessionStore struct {
	core     session.State
	settings session.ServerSettings
	nav      session.Navigation
	sysErr   session.SystemError
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

func (s *sessionStore) Core() session.State {
	return s.core.Clone()
}

func (s *sessionStore) SetCore(core session.State) {
	s.core = core.Clone()
}

func (s *sessionStore) Settings() session.ServerSettings {
	return s.settings
}

func (s *sessionStore) SetSettings(settings session.ServerSettings) {
	s.settings = settings
}

func (s *sessionStore) Navigation() session.Navigation {
	return s.nav
}

func (s *sessionStore) SetNavigation(nav session.Navigation) {
	s.nav = nav
}

func (s *sessionStore) SystemError() session.SystemError {
	return s.sysErr
}

func (s *sessionStore) SetSystemError(sysErr session.SystemError) {
	s.sysErr = sysErr
}
