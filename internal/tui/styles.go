package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	Title       lipgloss.Style
	Index       lipgloss.Style // "   1 |" column
	Asterisk    lipgloss.Style // literal '*' inside item text
	ControlKey  lipgloss.Style // key half of a footer control, e.g. " A "
	ControlDesc lipgloss.Style // action half of a footer control, e.g. " Add "
	Status      lipgloss.Style
	InputPad    lipgloss.Style // unused remainder of the input field
	Cursor      lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Classic 16-color palette: white on blue title, yellow numbering.
func DefaultStyles() Styles {
	white := lipgloss.Color("15")
	yellow := lipgloss.Color("11")

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(white).
			Background(lipgloss.Color("4")),

		Index: lipgloss.NewStyle().
			Bold(true).
			Foreground(yellow),

		Asterisk: lipgloss.NewStyle().
			Bold(true).
			Foreground(yellow).
			Background(lipgloss.Color("8")),

		ControlKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(white).
			Background(lipgloss.Color("8")),

		ControlDesc: lipgloss.NewStyle().
			Foreground(white).
			Background(lipgloss.Color("12")),

		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")),

		InputPad: lipgloss.NewStyle().
			Underline(true),

		Cursor: lipgloss.NewStyle().
			Reverse(true),
	}
}
