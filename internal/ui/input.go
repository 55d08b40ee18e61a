package ui

import (
	"github.com/atomicstack/chainpanel/internal/panel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return tea.Quit
	}
	if m.systemErrorVisible() {
		switch keyMsg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.dismissSystemError()
		}
		return nil
	}
	if m.searchFocused() {
		return m.handleSearchKey(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(keyMsg, m.keys.NextFocus):
		return m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.PrevFocus):
		return m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.FocusSearch):
		return m.setFocus(searchTarget)
	case key.Matches(keyMsg, m.keys.Activate):
		return m.activateTarget(m.currentFocus())
	case key.Matches(keyMsg, m.keys.Route):
		routes := panel.Routes()
		idx := int(keyMsg.String()[0] - '1')
		if idx >= 0 && idx < len(routes) {
			m.navigate(routes[idx])
		}
	case key.Matches(keyMsg, m.keys.ToggleMining):
		m.activateControl(panel.ControlMiningToggle)
	case key.Matches(keyMsg, m.keys.ForceMine):
		m.activateControl(panel.ControlForceMine)
	case key.Matches(keyMsg, m.keys.Snapshot):
		m.activateControl(panel.ControlTakeSnapshot)
	case key.Matches(keyMsg, m.keys.Revert):
		m.activateControl(panel.ControlRevert)
	}
	return nil
}

// handleSearchKey edits the search field. Tab, shift+tab and the blur
// binding leave it; arrows and letters belong to the text input while it has
// focus.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Blur) {
		return m.setFocus(toggleTarget)
	}
	switch msg.Type {
	case tea.KeyTab:
		return m.moveFocus(1)
	case tea.KeyShiftTab:
		return m.moveFocus(-1)
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.panel.Handle(panel.Event{Kind: panel.EventSearchChange, Text: value})
	}
	if m.panel.Handle(panel.Event{Kind: panel.EventSearchKey, Key: msg.String()}) {
		m.search.SetValue(m.panel.SearchText())
		m.errMsg = ""
	}
	return cmd
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if mouse.Action != tea.MouseActionRelease || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.systemErrorVisible() {
		if zone.Get(systemErrorZone).InBounds(mouse) {
			m.dismissSystemError()
		}
		return nil
	}
	for _, target := range focusTargets(m.panel.View()) {
		if zone.Get(target.key()).InBounds(mouse) {
			cmd := m.setFocus(target)
			if target.kind == focusSearch {
				return cmd
			}
			return tea.Batch(cmd, m.activateTarget(target))
		}
	}
	return nil
}

// activateTarget performs the action bound to a focus stop, exactly as a
// click on it would.
func (m *Model) activateTarget(target focusTarget) tea.Cmd {
	switch target.kind {
	case focusNav:
		m.navigate(target.route)
	case focusSearch:
		return m.setFocus(searchTarget)
	case focusControl:
		m.activateControl(target.control)
	}
	return nil
}

func (m *Model) activateControl(id panel.ControlID) bool {
	if !m.panel.Handle(panel.Event{Kind: panel.EventActivate, Control: id}) {
		return false
	}
	m.errMsg = ""
	return true
}

func (m *Model) navigate(route panel.Route) {
	m.panel.Handle(panel.Event{Kind: panel.EventNavigate, Route: route})
}
