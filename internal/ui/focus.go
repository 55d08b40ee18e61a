package ui

import (
	"github.com/atomicstack/chainpanel/internal/logging/events"
	"github.com/atomicstack/chainpanel/internal/panel"
	tea "github.com/charmbracelet/bubbletea"
)

type focusKind int

const (
	focusNav focusKind = iota
	focusSearch
	focusControl
)

// focusTarget is one stop in the tab order.
type focusTarget struct {
	kind    focusKind
	route   panel.Route
	control panel.ControlID
}

func (f focusTarget) key() string {
	switch f.kind {
	case focusNav:
		return "nav-" + string(f.route)
	case focusSearch:
		return "search"
	default:
		return "control-" + string(f.control)
	}
}

var (
	searchTarget = focusTarget{kind: focusSearch}
	toggleTarget = focusTarget{kind: focusControl, control: panel.ControlMiningToggle}
)

// focusTargets lists the tab order for a view: navigation, search, then the
// visible controls.
func focusTargets(v panel.View) []focusTarget {
	targets := make([]focusTarget, 0, len(v.Nav)+1+len(v.Controls))
	for _, link := range v.Nav {
		targets = append(targets, focusTarget{kind: focusNav, route: link.Route})
	}
	targets = append(targets, searchTarget)
	for _, c := range v.VisibleControls() {
		targets = append(targets, focusTarget{kind: focusControl, control: c.ID})
	}
	return targets
}

func indexOfTarget(targets []focusTarget, target focusTarget) int {
	for i, t := range targets {
		if t == target {
			return i
		}
	}
	return -1
}

// currentFocus returns the focused target, falling back to the mining toggle
// when the focused control is no longer rendered.
func (m *Model) currentFocus() focusTarget {
	if indexOfTarget(focusTargets(m.panel.View()), m.focus) < 0 {
		return toggleTarget
	}
	return m.focus
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	targets := focusTargets(m.panel.View())
	idx := indexOfTarget(targets, m.currentFocus())
	n := len(targets)
	idx = ((idx+delta)%n + n) % n
	return m.setFocus(targets[idx])
}

func (m *Model) setFocus(target focusTarget) tea.Cmd {
	if m.focus == target {
		return nil
	}
	m.focus = target
	events.Panel.Focus(target.key())
	if target.kind == focusSearch {
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

func (m *Model) searchFocused() bool {
	return m.focus.kind == focusSearch
}
