package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	// Browse mode
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Add    key.Binding
	Remove key.Binding
	Move   key.Binding
	Save   key.Binding
	Load   key.Binding
	Find   key.Binding
	Copy   key.Binding
	Quit   key.Binding

	// Entry modes
	Confirm     key.Binding
	Cancel      key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	LineStart   key.Binding
	LineEnd     key.Binding
	DeleteBack  key.Binding

	// Any mode
	Interrupt key.Binding
}

// DefaultKeyMap returns the fixed key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "first item"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "last item"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("A", "Add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("D", "Remove"),
		),
		Move: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("M", "Move"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("S", "Save"),
		),
		Load: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("L", "Load"),
		),
		Find: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("F", "Find"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("Y", "Copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("left"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("right"),
		),
		LineStart: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
		),
		LineEnd: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
		),
		DeleteBack: key.NewBinding(
			key.WithKeys("backspace"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
