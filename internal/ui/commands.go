package ui

import (
	"fmt"

	"github.com/atomicstack/chainpanel/internal/logging"
	"github.com/atomicstack/chainpanel/internal/panel"
	"github.com/atomicstack/chainpanel/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// commandQueue collects the commands the panel emits during one Update so
// they reach the bus in emission order once the handler returns.
type commandQueue struct {
	pending []panel.Command
}

func (q *commandQueue) Dispatch(cmd panel.Command) {
	q.pending = append(q.pending, cmd)
}

func (q *commandQueue) drain() []panel.Command {
	out := q.pending
	q.pending = nil
	return out
}

func (m *Model) flushCommands() {
	for _, cmd := range m.queue.drain() {
		if _, err := m.bus.Submit(cmd); err != nil {
			err = fmt.Errorf("submit %s: %w", cmd, err)
			logging.Error(err)
			m.errMsg = err.Error()
			m.forceClearInfo()
		}
	}
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	switch {
	case result.Err != nil:
		m.errMsg = fmt.Sprintf("%s: %v", result.Command, result.Err)
		m.forceClearInfo()
	case result.Skipped:
		m.errMsg = ""
		if m.verbose {
			m.setInfo(fmt.Sprintf("No node attached, dropped %s", result.Command))
		}
	default:
		m.errMsg = ""
		if m.verbose {
			m.setInfo(fmt.Sprintf("Sent %s", result.Command))
		} else {
			m.clearInfo()
		}
	}
	m.backend.Refresh()
	return m.bus.Next()
}
