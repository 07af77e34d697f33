package tui

import "github.com/charmbracelet/bubbles/key"

// Hint is one entry of the footer controls legend.
type Hint struct {
	Key  string // Display key (e.g., "A", "Esc")
	Desc string // Action (e.g., "Add", "Quit")
}

// DefaultControls returns the standard controls legend built from the key map.
func DefaultControls(keys KeyMap) []Hint {
	bindings := []key.Binding{
		keys.Add, keys.Remove, keys.Move, keys.Save, keys.Load,
		keys.Find, keys.Copy, keys.Quit,
	}

	hints := make([]Hint, len(bindings))
	for i, b := range bindings {
		hints[i] = Hint{Key: b.Help().Key, Desc: b.Help().Desc}
	}
	return hints
}

// controlSegments renders the legend as alternating key and action segments.
// Each action segment carries the trailing gap before the next control.
func (a App) controlSegments() []string {
	segments := make([]string, 0, len(a.controls)*2)
	for _, h := range a.controls {
		segments = append(segments,
			a.styles.ControlKey.Render(" "+h.Key+" "),
			a.styles.ControlDesc.Render(" "+h.Desc+" ")+" ",
		)
	}
	return segments
}
