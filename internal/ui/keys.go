package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFocus    key.Binding
	PrevFocus    key.Binding
	Activate     key.Binding
	FocusSearch  key.Binding
	Blur         key.Binding
	Route        key.Binding
	ToggleMining key.Binding
	ForceMine    key.Binding
	Snapshot     key.Binding
	Revert       key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave search"),
		),
		Route: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "navigate"),
		),
		ToggleMining: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle mining"),
		),
		ForceMine: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "force mine"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "snapshot"),
		),
		Revert: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "revert"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// setAdvanced enables the bindings for controls that only exist with
// advanced controls turned on.
func (k *keyMap) setAdvanced(enabled bool) {
	k.ForceMine.SetEnabled(enabled)
	k.Snapshot.SetEnabled(enabled)
	k.Revert.SetEnabled(enabled)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Activate, k.FocusSearch, k.ToggleMining, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Activate, k.FocusSearch, k.Blur},
		{k.Route, k.ToggleMining, k.ForceMine, k.Snapshot, k.Revert},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
