package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Frame FrameConfig
	Text  TextConfig
}

// FrameConfig holds the fixed geometry of a frame.
type FrameConfig struct {
	// TitleLines is the number of rows used by the title bar.
	TitleLines int

	// FooterLines is the number of rows used by the controls/status/input line.
	FooterLines int

	// IndexWidth is the width of the right-aligned 1-based item number.
	IndexWidth int

	// IndexSeparator follows the item number, e.g. "   7 | buy milk".
	IndexSeparator string
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Frame: FrameConfig{
			TitleLines:     1,
			FooterLines:    1,
			IndexWidth:     4,
			IndexSeparator: " | ",
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
