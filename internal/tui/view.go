package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nikbrunner/todo/internal/tui/layout"
)

// renderView draws one full frame: title bar, item window, footer.
// It never changes App state.
func (a App) renderView() string {
	frame := a.layoutConfig.Frame
	bodyHeight := layout.CalculateBodyHeight(a.height, frame)

	lines := make([]string, 0, bodyHeight+2)
	lines = append(lines, a.renderTitle())
	lines = append(lines, a.renderBody(bodyHeight)...)

	if a.mode.IsEntry() {
		lines = append(lines, a.renderInput())
	} else {
		lines = append(lines, a.renderFooter())
	}

	return strings.Join(lines, "\n")
}

// renderTitle centers the title in a full-width bar.
func (a App) renderTitle() string {
	title, _ := layout.TruncateText(layout.Sanitize(a.title), a.width, a.layoutConfig.Text)
	left, right := layout.TitlePadding(a.width, runewidth.StringWidth(title))

	return a.styles.Title.Render(strings.Repeat(" ", left) + title + strings.Repeat(" ", right))
}

// renderBody draws the rows starting at the scroll offset and pads the
// window with blank lines so the footer lands on the last row.
func (a App) renderBody(height int) []string {
	frame := a.layoutConfig.Frame
	itemWidth := layout.CalculateItemWidth(a.width, frame)
	start, end := layout.CalculateVisibleRange(a.atLine, a.list.Len(), height)

	rows := make([]string, 0, height)
	for i := start; i < end; i++ {
		index := a.styles.Index.Render(fmt.Sprintf("%*d", frame.IndexWidth, i+1))
		text, _ := layout.TruncateText(layout.Sanitize(a.list.Items[i]), itemWidth, a.layoutConfig.Text)
		rows = append(rows, index+frame.IndexSeparator+a.highlightAsterisks(text))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return rows
}

// highlightAsterisks styles every '*' so it stands out from item text.
func (a App) highlightAsterisks(text string) string {
	if !strings.Contains(text, "*") {
		return text
	}
	return strings.ReplaceAll(text, "*", a.styles.Asterisk.Render("*"))
}

// renderFooter shows the status message if one is set, otherwise as many
// controls as fit the width.
func (a App) renderFooter() string {
	if a.status != "" {
		status, _ := layout.TruncateText(layout.Sanitize(a.status), a.width, a.layoutConfig.Text)
		return a.styles.Status.Render(status)
	}

	segments := a.controlSegments()
	n := layout.FitSegments(segments, a.width)
	return strings.Join(segments[:n], "")
}

// renderInput draws the entry buffer as an underlined field with a block
// cursor. The field scrolls horizontally to keep the cursor visible.
func (a App) renderInput() string {
	if a.width <= 0 {
		return ""
	}

	buf := []rune(layout.Sanitize(a.entry.Text()))
	cursor := a.entry.Cursor()
	offset := layout.CalculateInputOffset(cursor, a.width)

	before := string(buf[offset:cursor])
	under := " "
	after := ""
	if cursor < len(buf) {
		under = string(buf[cursor])
		after = string(buf[cursor+1:])
	}

	used := runewidth.StringWidth(before) + runewidth.StringWidth(under)
	if used > a.width {
		// Wide runes in a narrow field; show the cursor cell alone.
		before = ""
		used = runewidth.StringWidth(under)
	}
	after = runewidth.Truncate(after, a.width-used, "")
	used += runewidth.StringWidth(after)

	pad := a.width - used
	if pad < 0 {
		pad = 0
	}

	return before + a.styles.Cursor.Render(under) + after + a.styles.InputPad.Render(strings.Repeat(" ", pad))
}
