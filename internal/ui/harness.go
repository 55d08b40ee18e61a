package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultSettle = 100 * time.Millisecond

// Harness drives the UI model programmatically for integration tests.
// Commands run on their own goroutines the way the Bubble Tea runtime runs
// them; Settle feeds their messages back until the model goes quiet.
type Harness struct {
	model  *Model
	msgs   chan tea.Msg
	settle time.Duration
	quit   bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{
		model:  model,
		msgs:   make(chan tea.Msg, 64),
		settle: defaultSettle,
	}
}

// Start runs the model's Init commands.
func (h *Harness) Start() {
	if h.model == nil {
		return
	}
	h.schedule(h.model.Init())
	h.Settle()
}

// Send routes a message through the model and processes the resulting
// commands until no new message arrives for the settle period.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.update(msg)
	h.Settle()
}

// Settle delivers pending command output until the model goes quiet.
func (h *Harness) Settle() {
	for {
		select {
		case msg := <-h.msgs:
			h.deliver(msg)
		case <-time.After(h.settle):
			return
		}
	}
}

func (h *Harness) update(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.schedule(cmd)
}

func (h *Harness) schedule(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		h.msgs <- cmd()
	}()
}

func (h *Harness) deliver(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, cmd := range msg {
			h.schedule(cmd)
		}
	case tea.QuitMsg:
		h.quit = true
	case spinner.TickMsg:
		// animation only
	default:
		h.update(msg)
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

// Close stops the model's command bus.
func (h *Harness) Close() {
	if h.model != nil {
		h.model.Close()
	}
}
