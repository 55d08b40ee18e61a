package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	NavItem           *lipgloss.Style
	NavActive         *lipgloss.Style
	NavFocused        *lipgloss.Style
	Location          *lipgloss.Style
	SearchPrompt      *lipgloss.Style
	SearchText        *lipgloss.Style
	SearchPlaceholder *lipgloss.Style
	SearchFocused     *lipgloss.Style
	StatusTitle       *lipgloss.Style
	StatusValue       *lipgloss.Style
	Spinner           *lipgloss.Style
	Button            *lipgloss.Style
	ButtonFocused     *lipgloss.Style
	ButtonDisabled    *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	SystemErrorTitle  *lipgloss.Style
	SystemErrorBody   *lipgloss.Style
	SystemErrorFrame  *lipgloss.Style
}

var defaultStyles = Styles{
	NavItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	NavActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Underline(true).Padding(0, 1),
	),
	NavFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true).Padding(0, 1),
	),
	Location: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	SearchText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SearchPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	SearchFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	StatusTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	StatusValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Spinner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	ButtonFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	ButtonDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("235")).Padding(0, 1),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	SystemErrorTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	SystemErrorBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	SystemErrorFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("196")).Padding(1, 2),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
