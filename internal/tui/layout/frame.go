package layout

import "github.com/mattn/go-runewidth"

// TitlePadding centers a title of titleWidth cells in a bar of width cells.
// The left side gets the floor of the split.
func TitlePadding(width, titleWidth int) (left, right int) {
	if titleWidth >= width {
		return 0, 0
	}
	left = (width - titleWidth) / 2
	right = width - titleWidth - left
	return left, right
}

// CalculateBodyHeight returns the number of item rows that fit between the
// title bar and the footer.
func CalculateBodyHeight(terminalHeight int, cfg FrameConfig) int {
	height := terminalHeight - cfg.TitleLines - cfg.FooterLines
	if height < 0 {
		return 0
	}
	return height
}

// CalculateVisibleRange returns the item window [start, end) that starts at
// the scroll offset and holds at most bodyHeight rows.
func CalculateVisibleRange(offset, total, bodyHeight int) (start, end int) {
	start = ClampOffset(offset, total)
	end = start + bodyHeight
	if end > total {
		end = total
	}
	if end < start {
		end = start
	}
	return start, end
}

// ClampOffset keeps a scroll offset within [0, max(0, total-1)].
func ClampOffset(offset, total int) int {
	if offset > total-1 {
		offset = total - 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// CalculateItemWidth returns the cells left for item text after the index
// column and separator.
func CalculateItemWidth(terminalWidth int, cfg FrameConfig) int {
	width := terminalWidth - cfg.IndexWidth - runewidth.StringWidth(cfg.IndexSeparator)
	if width < 0 {
		return 0
	}
	return width
}

// CalculateInputOffset returns the first buffer position shown in an input
// field of fieldWidth cells so that the cursor cell stays visible.
func CalculateInputOffset(cursor, fieldWidth int) int {
	if fieldWidth <= 0 || cursor < fieldWidth {
		return 0
	}
	return cursor - fieldWidth + 1
}

// FitSegments returns how many leading segments can be concatenated without
// exceeding width visible cells. Styling codes do not count.
func FitSegments(segments []string, width int) int {
	used := 0
	for i, seg := range segments {
		used += VisibleLength(seg)
		if used > width {
			return i
		}
	}
	return len(segments)
}
