package tui

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/todo/internal/codec"
	"github.com/nikbrunner/todo/internal/config"
	"github.com/nikbrunner/todo/internal/logging"
	"github.com/nikbrunner/todo/internal/model"
	"github.com/nikbrunner/todo/internal/search"
	"github.com/nikbrunner/todo/internal/tui/layout"
	"go.uber.org/zap"
)

// Browse status messages.
const (
	StatusNotFound    = "Can't find file"
	StatusFormatError = "File format error"
	StatusSaveFailed  = "Can't save file"
)

// revealMsg arrives after the Pending frame has been drawn.
type revealMsg struct{}

func reveal() tea.Msg {
	return revealMsg{}
}

var bellByte = []byte{'\a'}

// ringBell writes the terminal bell as a single one-byte Write. BEL is a C0
// control, so it executes even if it lands inside a frame being flushed by
// the renderer and leaves that frame's escape sequences intact.
func ringBell(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		_, _ = w.Write(bellByte)
		return nil
	}
}

// bell records a rejected input and returns the command that rings.
func (a *App) bell() tea.Cmd {
	a.bells++
	return ringBell(a.bellOut)
}

// lastLine returns the largest valid scroll offset.
func (a *App) lastLine() int {
	return layout.ClampOffset(a.list.Len()-1, a.list.Len())
}

// reveal swaps the Pending wrapper for its entry mode.
func (a *App) reveal() {
	if a.mode == ModePending {
		a.mode = a.next
	}
}

// toBrowse leaves any entry mode, discarding the buffer.
func (a *App) toBrowse(status string) {
	a.mode = ModeBrowse
	a.next = ModeBrowse
	a.entry.Reset()
	a.status = status
	a.atLine = layout.ClampOffset(a.atLine, a.list.Len())
}

// beginEntry wraps an entry mode in Pending with an empty buffer.
func (a *App) beginEntry(m Mode) tea.Cmd {
	a.entry.Reset()
	a.mode = ModePending
	a.next = m
	return reveal
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Interrupt) {
		return tea.Quit
	}

	// A key can beat the reveal message; the entry mode takes it.
	a.reveal()

	if a.mode == ModeBrowse {
		return a.handleBrowseKey(msg)
	}
	return a.handleEntryKey(msg)
}

func (a *App) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	a.status = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit

	case key.Matches(msg, a.keys.Up):
		if a.atLine == 0 {
			return a.bell()
		}
		a.atLine--

	case key.Matches(msg, a.keys.Down):
		if a.atLine >= a.lastLine() {
			return a.bell()
		}
		a.atLine++

	case key.Matches(msg, a.keys.Top):
		a.atLine = 0

	case key.Matches(msg, a.keys.Bottom):
		a.atLine = a.lastLine()

	case key.Matches(msg, a.keys.Add):
		return a.beginEntry(ModeAdd)
	case key.Matches(msg, a.keys.Remove):
		return a.beginEntry(ModeRemove)
	case key.Matches(msg, a.keys.Move):
		return a.beginEntry(ModeMove)
	case key.Matches(msg, a.keys.Save):
		return a.beginEntry(ModeSave)
	case key.Matches(msg, a.keys.Load):
		return a.beginEntry(ModeLoad)
	case key.Matches(msg, a.keys.Find):
		return a.beginEntry(ModeFind)

	case key.Matches(msg, a.keys.Copy):
		return a.copyItem()

	default:
		return a.bell()
	}

	return nil
}

func (a *App) handleEntryKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.toBrowse("")

	case key.Matches(msg, a.keys.Confirm):
		return a.commit()

	case key.Matches(msg, a.keys.CursorLeft):
		if !a.entry.Left() {
			return a.bell()
		}

	case key.Matches(msg, a.keys.CursorRight):
		if !a.entry.Right() {
			return a.bell()
		}

	case key.Matches(msg, a.keys.LineStart):
		a.entry.Home()

	case key.Matches(msg, a.keys.LineEnd):
		a.entry.End()

	case key.Matches(msg, a.keys.DeleteBack):
		if !a.entry.Backspace() {
			return a.bell()
		}

	case msg.Type == tea.KeySpace:
		a.entry.Insert(' ')

	case msg.Type == tea.KeyRunes && !msg.Alt:
		// Pasted text may carry newlines and tabs.
		a.entry.Insert([]rune(layout.Sanitize(string(msg.Runes)))...)

	default:
		return a.bell()
	}

	return nil
}

// commit applies the active entry mode to the list and returns to Browse.
func (a *App) commit() tea.Cmd {
	text := a.entry.Text()
	if strings.TrimSpace(text) == "" {
		a.toBrowse("")
		return nil
	}

	switch a.mode {
	case ModeAdd:
		a.addItem(text)
		a.toBrowse("")

	case ModeRemove:
		err := a.removeItem(text)
		a.toBrowse("")
		if err != nil {
			logging.Debug("remove rejected", zap.String("input", text), zap.Error(err))
			return a.bell()
		}

	case ModeMove:
		// Stay in the entry so the input can be corrected.
		if err := a.moveItem(text); err != nil {
			logging.Debug("move rejected", zap.String("input", text), zap.Error(err))
			return a.bell()
		}
		a.toBrowse("")

	case ModeSave:
		if err := a.files.Save(text, a.list); err != nil {
			logging.Error("save failed", zap.String("name", text), zap.Error(err))
			a.toBrowse(StatusSaveFailed)
			return nil
		}
		logging.Info("list saved", zap.String("name", text), zap.Int("items", a.list.Len()))
		a.toBrowse("")

	case ModeLoad:
		return a.loadList(text)

	case ModeFind:
		idx, ok := search.Best(a.list.Items, strings.TrimSpace(text))
		a.toBrowse("")
		if !ok {
			return a.bell()
		}
		a.atLine = idx
	}

	return nil
}

func (a *App) addItem(text string) {
	if a.addPosition == config.AddAtCursor {
		a.list.Insert(a.atLine, text)
		return
	}
	a.list.Append(text)
}

func (a *App) removeItem(text string) error {
	index, err := model.ParseIndex(text)
	if err != nil {
		return err
	}
	return a.list.Remove(index)
}

func (a *App) moveItem(text string) error {
	src, dst, err := model.ParseMove(text)
	if err != nil {
		return err
	}
	return a.list.Move(src, dst)
}

// loadList replaces the whole UI state with the stored list.
// On failure the in-memory list is untouched.
func (a *App) loadList(name string) tea.Cmd {
	list, err := a.files.Load(name)
	if err != nil {
		logging.Warn("load failed", zap.String("name", name), zap.Error(err))
		if errors.Is(err, codec.ErrInvalid) {
			a.toBrowse(StatusFormatError)
		} else {
			a.toBrowse(StatusNotFound)
		}
		return nil
	}

	logging.Info("list loaded", zap.String("name", name), zap.Int("items", list.Len()))
	a.list = list
	a.atLine = 0
	a.controls = DefaultControls(a.keys)
	a.toBrowse("")
	return nil
}

// copyItem puts the item at the scroll offset on the system clipboard.
func (a *App) copyItem() tea.Cmd {
	if a.list.Len() == 0 {
		return a.bell()
	}
	if err := a.copyText(a.list.Items[a.atLine]); err != nil {
		logging.Warn("clipboard write failed", zap.Error(err))
		return a.bell()
	}
	return nil
}
