package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/chainpanel/internal/format/table"
	"github.com/atomicstack/chainpanel/internal/panel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

const (
	infoTTL         = 5 * time.Second
	systemErrorZone = "system-error"
	searchPrompt    = "/ "
	buttonGap       = " "
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.systemErrorVisible() {
		return zone.Scan(m.viewSystemError())
	}
	view := m.panel.View()
	lines := make([]styledLine, 0, 12)
	lines = append(lines, styledLine{text: m.navLine(view), raw: true})
	lines = append(lines, styledLine{text: strings.Join(m.router.location(), " "+locationSeparator+" "), style: styles.Location})
	lines = append(lines, styledLine{text: m.searchLine(), raw: true})
	lines = append(lines, styledLine{})
	for _, row := range m.statusRows(view) {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.buttonLine(view), raw: true})
	lines = append(lines, m.statusLine())
	if m.showFooter || m.showHelp {
		lines = append(lines, styledLine{})
		for _, row := range strings.Split(m.help.View(m.keys), "\n") {
			lines = append(lines, styledLine{text: row, raw: true})
		}
	}
	lines = applyWidth(lines, m.width)
	lines = limitHeight(lines, m.height, m.width)
	return zone.Scan(renderLines(lines))
}

func (m *Model) navLine(view panel.View) string {
	parts := make([]string, 0, len(view.Nav))
	for _, link := range view.Nav {
		target := focusTarget{kind: focusNav, route: link.Route}
		style := styles.NavItem
		switch {
		case m.focus == target:
			style = styles.NavFocused
		case link.Active:
			style = styles.NavActive
		}
		parts = append(parts, zone.Mark(target.key(), render(style, link.Label)))
	}
	return strings.Join(parts, "")
}

func (m *Model) searchLine() string {
	prompt := render(styles.SearchPrompt, searchPrompt)
	if m.searchFocused() {
		prompt = render(styles.SearchFocused, searchPrompt)
	}
	return zone.Mark(searchTarget.key(), prompt+m.search.View())
}

// statusRows lays the indicators out as a two-row grid: titles over values.
func (m *Model) statusRows(view panel.View) []string {
	titles := make([]string, len(view.Status))
	values := make([]string, len(view.Status))
	for i, ind := range view.Status {
		titles[i] = render(styles.StatusTitle, ind.Title)
		value := render(styles.StatusValue, ind.Value)
		if ind.Busy {
			value = m.spinner.View() + " " + value
		}
		values[i] = value
	}
	return table.Format([][]string{titles, values}, nil)
}

func (m *Model) buttonLine(view panel.View) string {
	controls := view.VisibleControls()
	parts := make([]string, 0, len(controls))
	focused := m.currentFocus()
	for _, c := range controls {
		target := focusTarget{kind: focusControl, control: c.ID}
		style := styles.Button
		switch {
		case !c.Enabled:
			style = styles.ButtonDisabled
		case !m.searchFocused() && focused == target:
			style = styles.ButtonFocused
		}
		parts = append(parts, zone.Mark(target.key(), render(style, "[ "+c.Label+" ]")))
	}
	return strings.Join(parts, buttonGap)
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.errMsg != "":
		return styledLine{text: m.errMsg, style: styles.Error}
	case m.backendLastErr != "":
		return styledLine{text: fmt.Sprintf("node unreachable: %s", m.backendLastErr), style: styles.Error}
	}
	return styledLine{text: m.currentInfo(), style: styles.Info}
}

func (m *Model) viewSystemError() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		render(styles.SystemErrorTitle, "Error"),
		"",
		render(styles.SystemErrorBody, m.systemErr.Message),
		"",
		render(styles.Footer, "esc to dismiss"),
	)
	box := zone.Mark(systemErrorZone, render(styles.SystemErrorFrame, body))
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	return nil
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.text == "" {
			out[i] = line.text
			continue
		}
		out[i] = render(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
