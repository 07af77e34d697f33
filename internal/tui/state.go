package tui

// Mode is the active behavior of the UI. Exactly one is active at a time.
type Mode int

const (
	ModeBrowse Mode = iota
	// ModePending shows one frame before its entry mode becomes interactive.
	ModePending
	ModeAdd
	ModeRemove
	ModeMove
	ModeSave
	ModeLoad
	ModeFind
)

// IsEntry reports whether the mode edits a text buffer.
func (m Mode) IsEntry() bool {
	return m >= ModeAdd
}

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModePending:
		return "pending"
	case ModeAdd:
		return "add"
	case ModeRemove:
		return "remove"
	case ModeMove:
		return "move"
	case ModeSave:
		return "save"
	case ModeLoad:
		return "load"
	case ModeFind:
		return "find"
	default:
		return "unknown"
	}
}

// Entry is the editable buffer of an entry mode.
// The cursor is a rune offset with 0 <= cursor <= len(buffer).
type Entry struct {
	buf    []rune
	cursor int
}

// Text returns the buffer contents.
func (e Entry) Text() string {
	return string(e.buf)
}

// Cursor returns the cursor offset.
func (e Entry) Cursor() int {
	return e.cursor
}

// Len returns the buffer length in runes.
func (e Entry) Len() int {
	return len(e.buf)
}

// Reset clears the buffer.
func (e *Entry) Reset() {
	e.buf = nil
	e.cursor = 0
}

// Insert adds runes at the cursor and advances past them.
func (e *Entry) Insert(rs ...rune) {
	buf := make([]rune, 0, len(e.buf)+len(rs))
	buf = append(buf, e.buf[:e.cursor]...)
	buf = append(buf, rs...)
	buf = append(buf, e.buf[e.cursor:]...)
	e.buf = buf
	e.cursor += len(rs)
}

// Backspace deletes the rune before the cursor.
// Returns false when the cursor is already at the start.
func (e *Entry) Backspace() bool {
	if e.cursor == 0 {
		return false
	}
	buf := make([]rune, 0, len(e.buf)-1)
	buf = append(buf, e.buf[:e.cursor-1]...)
	buf = append(buf, e.buf[e.cursor:]...)
	e.buf = buf
	e.cursor--
	return true
}

// Left moves the cursor back one rune. Returns false at the start.
func (e *Entry) Left() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor--
	return true
}

// Right moves the cursor forward one rune. Returns false at the end.
func (e *Entry) Right() bool {
	if e.cursor == len(e.buf) {
		return false
	}
	e.cursor++
	return true
}

// Home moves the cursor to the start of the buffer.
func (e *Entry) Home() {
	e.cursor = 0
}

// End moves the cursor past the last rune.
func (e *Entry) End() {
	e.cursor = len(e.buf)
}
