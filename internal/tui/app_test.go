package tui_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/todo/internal/config"
	"github.com/nikbrunner/todo/internal/model"
	"github.com/nikbrunner/todo/internal/storage"
	"github.com/nikbrunner/todo/internal/tui"
	"gotest.tools/v3/assert"
)

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers messages in order and returns the command of the last one.
func send(app tui.App, msgs ...tea.Msg) (tui.App, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = app.Update(msg)
		app = updated.(tui.App)
	}
	return app, cmd
}

// open presses a Browse key and completes the reveal of its entry mode.
func open(t *testing.T, app tui.App, key string) tui.App {
	t.Helper()
	app, cmd := send(app, runeMsg(key))
	assert.Equal(t, app.Mode(), tui.ModePending)
	assert.Assert(t, cmd != nil, "entering %q should schedule a reveal", key)
	app, _ = send(app, cmd())
	return app
}

// typeText sends each rune of s as its own key event.
func typeText(app tui.App, s string) tui.App {
	for _, r := range s {
		app, _ = send(app, runeMsg(string(r)))
	}
	return app
}

func newTestApp(items ...string) tui.App {
	return tui.NewApp(tui.AppParams{
		List:  model.NewList(items...),
		Files: storage.NewLibrary(os.TempDir()),
		Bell:  io.Discard,
	})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestApp_Scroll_UpDown(t *testing.T) {
	app := newTestApp("A", "B", "C")

	app, _ = send(app, keyMsg(tea.KeyUp))
	assert.Equal(t, app.AtLine(), 0)
	assert.Equal(t, app.Bells(), 1, "up at the top rings the bell")

	app, _ = send(app, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown))
	assert.Equal(t, app.AtLine(), 2)

	app, _ = send(app, keyMsg(tea.KeyDown))
	assert.Equal(t, app.AtLine(), 2)
	assert.Equal(t, app.Bells(), 2, "down at the last item rings the bell")

	app, _ = send(app, keyMsg(tea.KeyUp))
	assert.Equal(t, app.AtLine(), 1)
	assert.Equal(t, app.Bells(), 2)
}

func TestApp_Scroll_LeftRightJump(t *testing.T) {
	app := newTestApp("A", "B", "C", "D")

	app, _ = send(app, keyMsg(tea.KeyRight))
	assert.Equal(t, app.AtLine(), 3)

	app, _ = send(app, keyMsg(tea.KeyLeft))
	assert.Equal(t, app.AtLine(), 0)
	assert.Equal(t, app.Bells(), 0)
}

func TestApp_Scroll_EmptyList(t *testing.T) {
	app := newTestApp()

	app, _ = send(app, keyMsg(tea.KeyDown), keyMsg(tea.KeyUp), keyMsg(tea.KeyRight))
	assert.Equal(t, app.AtLine(), 0)
	assert.Equal(t, app.Bells(), 2)
}

func TestApp_Scroll_OffsetStaysInRange(t *testing.T) {
	app := newTestApp("A", "B", "C", "D", "E")

	check := func(app tui.App) {
		t.Helper()
		limit := len(app.Items())
		if limit < 1 {
			limit = 1
		}
		assert.Assert(t, app.AtLine() >= 0 && app.AtLine() < limit,
			"offset %d out of range for %d items", app.AtLine(), len(app.Items()))
	}

	// Remove the last item while scrolled to the end until the list is empty.
	for len(app.Items()) > 0 {
		app, _ = send(app, keyMsg(tea.KeyRight))
		check(app)

		app = open(t, app, "d")
		app = typeText(app, strconv.Itoa(len(app.Items())))
		app, _ = send(app, keyMsg(tea.KeyEnter))
		check(app)
	}

	app, _ = send(app, keyMsg(tea.KeyDown), keyMsg(tea.KeyRight))
	check(app)
}

func TestApp_UnknownKey_Bell(t *testing.T) {
	app := newTestApp("A")

	app, _ = send(app, runeMsg("z"), keyMsg(tea.KeyTab))
	assert.Equal(t, app.Bells(), 2)
	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.DeepEqual(t, app.Items(), []string{"A"})
}

func TestApp_BellWritesToTerminal(t *testing.T) {
	var out bytes.Buffer
	app := tui.NewApp(tui.AppParams{Bell: &out})

	_, cmd := send(app, keyMsg(tea.KeyUp))
	assert.Assert(t, cmd != nil)
	cmd()
	assert.Equal(t, out.String(), "\a")
}

// writeRecorder keeps every Write call separately.
type writeRecorder struct {
	writes [][]byte
}

func (w *writeRecorder) Write(p []byte) (int, error) {
	w.writes = append(w.writes, append([]byte(nil), p...))
	return len(p), nil
}

func TestApp_BellIsSingleByteWrite(t *testing.T) {
	out := &writeRecorder{}
	app := tui.NewApp(tui.AppParams{List: model.NewList("A"), Bell: out})

	_, cmd := send(app, runeMsg("z"))
	assert.Assert(t, cmd != nil)
	cmd()
	cmd()

	assert.Equal(t, len(out.writes), 2)
	for _, w := range out.writes {
		assert.DeepEqual(t, w, []byte{'\a'})
	}
}

func TestApp_Escape_Quits(t *testing.T) {
	app := newTestApp("A")

	_, cmd := send(app, keyMsg(tea.KeyEsc))
	assert.Assert(t, isQuit(cmd))
}

func TestApp_CtrlC_QuitsFromEntry(t *testing.T) {
	app := newTestApp("A")
	app = open(t, app, "a")

	_, cmd := send(app, keyMsg(tea.KeyCtrlC))
	assert.Assert(t, isQuit(cmd))
}

func TestApp_EntryKeys_CaseInsensitive(t *testing.T) {
	tests := []struct {
		key  string
		want tui.Mode
	}{
		{"a", tui.ModeAdd},
		{"A", tui.ModeAdd},
		{"d", tui.ModeRemove},
		{"D", tui.ModeRemove},
		{"m", tui.ModeMove},
		{"M", tui.ModeMove},
		{"s", tui.ModeSave},
		{"S", tui.ModeSave},
		{"l", tui.ModeLoad},
		{"L", tui.ModeLoad},
		{"f", tui.ModeFind},
		{"F", tui.ModeFind},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			app := open(t, newTestApp("A"), tt.key)
			assert.Equal(t, app.Mode(), tt.want)
			assert.Equal(t, app.Entry().Text(), "")
			assert.Equal(t, app.Entry().Cursor(), 0)
		})
	}
}

func TestApp_Pending_KeyBeforeReveal(t *testing.T) {
	app := newTestApp()

	app, _ = send(app, runeMsg("a"))
	assert.Equal(t, app.Mode(), tui.ModePending)

	// A key that beats the reveal message goes to the entry mode.
	app, _ = send(app, runeMsg("x"))
	assert.Equal(t, app.Mode(), tui.ModeAdd)
	assert.Equal(t, app.Entry().Text(), "x")
	assert.Equal(t, app.Bells(), 0)
}

func TestApp_Pending_ViewDoesNotReveal(t *testing.T) {
	app := newTestApp()
	app, _ = send(app, runeMsg("a"))

	_ = app.View()
	assert.Equal(t, app.Mode(), tui.ModePending)
}

func TestApp_Add_AppendsRawText(t *testing.T) {
	app := newTestApp("A", "B")
	app, _ = send(app, keyMsg(tea.KeyDown))

	app = open(t, app, "a")
	app = typeText(app, "buy *milk*")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.DeepEqual(t, app.Items(), []string{"A", "B", "buy *milk*"})
	assert.Equal(t, app.Entry().Text(), "")
}

func TestApp_Add_AtCursor(t *testing.T) {
	app := tui.NewApp(tui.AppParams{
		List:        model.NewList("A", "B", "C"),
		AddPosition: config.AddAtCursor,
		Bell:        io.Discard,
	})
	app, _ = send(app, keyMsg(tea.KeyDown))

	app = open(t, app, "a")
	app = typeText(app, "X")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.DeepEqual(t, app.Items(), []string{"A", "X", "B", "C"})
}

func TestApp_Add_EmptyBuffer(t *testing.T) {
	app := newTestApp("A")

	app = open(t, app, "a")
	app = typeText(app, "   ")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.DeepEqual(t, app.Items(), []string{"A"})
	assert.Equal(t, app.Bells(), 0)
}

func TestApp_Add_PasteControlCharacters(t *testing.T) {
	app := newTestApp("A")
	app = app.WithDimensions(30, 8)

	app = open(t, app, "a")
	app, _ = send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x\ny\tz"), Paste: true})
	assert.Equal(t, app.Entry().Text(), "x y z")
	assert.Equal(t, app.Entry().Cursor(), 5)
	assert.Equal(t, app.Bells(), 0)

	app, _ = send(app, keyMsg(tea.KeyEnter))
	assert.DeepEqual(t, app.Items(), []string{"A", "x y z"})

	lines := strings.Split(app.View(), "\n")
	assert.Equal(t, len(lines), 8)
}

func TestApp_Add_SpaceKey(t *testing.T) {
	app := open(t, newTestApp(), "a")

	app = typeText(app, "a")
	app, _ = send(app, keyMsg(tea.KeySpace))
	app = typeText(app, "b")

	assert.Equal(t, app.Entry().Text(), "a b")
}

func TestApp_Entry_EscapeDiscards(t *testing.T) {
	app := newTestApp("A")

	app = open(t, app, "a")
	app = typeText(app, "draft")
	app, cmd := send(app, keyMsg(tea.KeyEsc))

	assert.Assert(t, !isQuit(cmd), "escape in an entry mode must not quit")
	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.Equal(t, app.Status(), "")
	assert.DeepEqual(t, app.Items(), []string{"A"})
}

func TestApp_Entry_CursorBounds(t *testing.T) {
	app := open(t, newTestApp(), "a")
	app = typeText(app, "abc")
	assert.Equal(t, app.Entry().Cursor(), 3)

	app, _ = send(app, keyMsg(tea.KeyRight))
	assert.Equal(t, app.Entry().Cursor(), 3)
	assert.Equal(t, app.Bells(), 1)

	app, _ = send(app, keyMsg(tea.KeyLeft), keyMsg(tea.KeyLeft), keyMsg(tea.KeyLeft))
	assert.Equal(t, app.Entry().Cursor(), 0)
	assert.Equal(t, app.Bells(), 1)

	app, _ = send(app, keyMsg(tea.KeyLeft))
	assert.Equal(t, app.Entry().Cursor(), 0)
	assert.Equal(t, app.Bells(), 2)

	app, _ = send(app, keyMsg(tea.KeyBackspace))
	assert.Equal(t, app.Entry().Text(), "abc")
	assert.Equal(t, app.Bells(), 3)
}

func TestApp_Entry_Editing(t *testing.T) {
	app := open(t, newTestApp(), "a")
	app = typeText(app, "acd")

	app, _ = send(app, keyMsg(tea.KeyHome), keyMsg(tea.KeyRight))
	app = typeText(app, "b")
	assert.Equal(t, app.Entry().Text(), "abcd")
	assert.Equal(t, app.Entry().Cursor(), 2)

	app, _ = send(app, keyMsg(tea.KeyEnd), keyMsg(tea.KeyBackspace))
	assert.Equal(t, app.Entry().Text(), "abc")
	assert.Equal(t, app.Entry().Cursor(), 3)

	app, _ = send(app, keyMsg(tea.KeyCtrlA))
	assert.Equal(t, app.Entry().Cursor(), 0)
	app, _ = send(app, keyMsg(tea.KeyCtrlE))
	assert.Equal(t, app.Entry().Cursor(), 3)
}

func TestApp_Entry_AltRuneBell(t *testing.T) {
	app := open(t, newTestApp(), "a")

	app, _ = send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	assert.Equal(t, app.Entry().Text(), "")
	assert.Equal(t, app.Bells(), 1)
}

func TestApp_Remove(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantItems []string
		wantBells int
	}{
		{"middle", "2", []string{"A", "C"}, 0},
		{"padded", " 3 ", []string{"A", "B"}, 0},
		{"out of range", "5", []string{"A", "B", "C"}, 1},
		{"zero", "0", []string{"A", "B", "C"}, 1},
		{"not a number", "two", []string{"A", "B", "C"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := open(t, newTestApp("A", "B", "C"), "d")
			app = typeText(app, tt.input)
			app, _ = send(app, keyMsg(tea.KeyEnter))

			assert.Equal(t, app.Mode(), tui.ModeBrowse)
			assert.DeepEqual(t, app.Items(), tt.wantItems)
			assert.Equal(t, app.Bells(), tt.wantBells)
		})
	}
}

func TestApp_Remove_ReclampsOffset(t *testing.T) {
	app := newTestApp("A", "B", "C")
	app, _ = send(app, keyMsg(tea.KeyRight))

	app = open(t, app, "d")
	app = typeText(app, "3")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.Equal(t, app.AtLine(), 1)
}

func TestApp_Move(t *testing.T) {
	app := open(t, newTestApp("A", "B", "C", "D"), "m")
	app = typeText(app, "2;4")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.DeepEqual(t, app.Items(), []string{"A", "C", "D", "B"})
}

func TestApp_Move_InvalidStaysInEntry(t *testing.T) {
	tests := []string{"2", "1;2;3", "x;1", "0;2", "2;9"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			app := open(t, newTestApp("A", "B", "C", "D"), "m")
			app = typeText(app, input)
			app, _ = send(app, keyMsg(tea.KeyEnter))

			assert.Equal(t, app.Mode(), tui.ModeMove)
			assert.Equal(t, app.Entry().Text(), input)
			assert.Equal(t, app.Bells(), 1)
			assert.DeepEqual(t, app.Items(), []string{"A", "B", "C", "D"})
		})
	}
}

func TestApp_Move_CorrectAfterFailure(t *testing.T) {
	app := open(t, newTestApp("A", "B", "C"), "m")
	app = typeText(app, "1;9")
	app, _ = send(app, keyMsg(tea.KeyEnter))
	assert.Equal(t, app.Mode(), tui.ModeMove)

	app, _ = send(app, keyMsg(tea.KeyBackspace))
	app = typeText(app, "3")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.DeepEqual(t, app.Items(), []string{"B", "C", "A"})
}

func TestApp_SaveLoad_RoundTrip(t *testing.T) {
	lib := storage.NewLibrary(t.TempDir())

	app := tui.NewApp(tui.AppParams{
		List:  model.NewList("first", "second *", "third"),
		Files: lib,
		Bell:  io.Discard,
	})
	app = open(t, app, "s")
	app = typeText(app, "groceries")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.Equal(t, app.Status(), "")
	_, err := os.Stat(lib.Path("groceries"))
	assert.NilError(t, err)

	other := tui.NewApp(tui.AppParams{
		List:  model.NewList("x", "y", "z", "w"),
		Files: lib,
		Bell:  io.Discard,
	})
	other, _ = send(other, keyMsg(tea.KeyRight))
	other = open(t, other, "l")
	other = typeText(other, "groceries")
	other, _ = send(other, keyMsg(tea.KeyEnter))

	assert.Equal(t, other.Mode(), tui.ModeBrowse)
	assert.Equal(t, other.AtLine(), 0)
	assert.DeepEqual(t, other.Items(), []string{"first", "second *", "third"})
	assert.DeepEqual(t, other.Controls(), tui.DefaultControls(tui.DefaultKeyMap()))
}

func TestApp_Load_MissingFile(t *testing.T) {
	app := tui.NewApp(tui.AppParams{
		List:  model.NewList("keep"),
		Files: storage.NewLibrary(t.TempDir()),
		Bell:  io.Discard,
	})

	app = open(t, app, "l")
	app = typeText(app, "nope")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.Equal(t, app.Status(), tui.StatusNotFound)
	assert.DeepEqual(t, app.Items(), []string{"keep"})
}

func TestApp_Load_BadFormat(t *testing.T) {
	lib := storage.NewLibrary(t.TempDir())
	assert.NilError(t, os.WriteFile(lib.Path("junk"), []byte("not a list"), 0644))

	app := tui.NewApp(tui.AppParams{
		List:  model.NewList("keep"),
		Files: lib,
		Bell:  io.Discard,
	})

	app = open(t, app, "l")
	app = typeText(app, "junk")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.Equal(t, app.Status(), tui.StatusFormatError)
	assert.DeepEqual(t, app.Items(), []string{"keep"})
}

type failingFiles struct{}

func (failingFiles) Save(string, *model.List) error {
	return errors.New("disk full")
}

func (failingFiles) Load(string) (*model.List, error) {
	return nil, os.ErrNotExist
}

func TestApp_Save_Failure(t *testing.T) {
	app := tui.NewApp(tui.AppParams{
		List:  model.NewList("A"),
		Files: failingFiles{},
		Bell:  io.Discard,
	})

	app = open(t, app, "s")
	app = typeText(app, "out")
	app, cmd := send(app, keyMsg(tea.KeyEnter))

	assert.Assert(t, !isQuit(cmd))
	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.Equal(t, app.Status(), tui.StatusSaveFailed)
	assert.Equal(t, app.Bells(), 0)
}

func TestApp_Status_ClearedOnNextKey(t *testing.T) {
	app := tui.NewApp(tui.AppParams{
		List:  model.NewList("A", "B"),
		Files: failingFiles{},
		Bell:  io.Discard,
	})

	app = open(t, app, "l")
	app = typeText(app, "x")
	app, _ = send(app, keyMsg(tea.KeyEnter))
	assert.Equal(t, app.Status(), tui.StatusNotFound)

	app, _ = send(app, keyMsg(tea.KeyDown))
	assert.Equal(t, app.Status(), "")
}

func TestApp_Find(t *testing.T) {
	app := newTestApp("buy milk", "call mom", "write report")

	app = open(t, app, "f")
	app = typeText(app, "rep")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.Equal(t, app.AtLine(), 2)
	assert.Equal(t, app.Bells(), 0)
}

func TestApp_Find_NoMatch(t *testing.T) {
	app := newTestApp("buy milk", "call mom")
	app, _ = send(app, keyMsg(tea.KeyDown))

	app = open(t, app, "f")
	app = typeText(app, "zzz")
	app, _ = send(app, keyMsg(tea.KeyEnter))

	assert.Equal(t, app.Mode(), tui.ModeBrowse)
	assert.Equal(t, app.AtLine(), 1)
	assert.Equal(t, app.Bells(), 1)
}

func TestApp_Copy(t *testing.T) {
	var copied string
	app := tui.NewApp(tui.AppParams{
		List: model.NewList("A", "B"),
		Clipboard: func(s string) error {
			copied = s
			return nil
		},
		Bell: io.Discard,
	})

	app, _ = send(app, keyMsg(tea.KeyDown), runeMsg("y"))
	assert.Equal(t, copied, "B")
	assert.Equal(t, app.Bells(), 0)
}

func TestApp_Copy_Failures(t *testing.T) {
	app := tui.NewApp(tui.AppParams{
		Clipboard: func(string) error { return nil },
		Bell:      io.Discard,
	})
	app, _ = send(app, runeMsg("y"))
	assert.Equal(t, app.Bells(), 1, "nothing to copy from an empty list")

	app = tui.NewApp(tui.AppParams{
		List:      model.NewList("A"),
		Clipboard: func(string) error { return errors.New("no clipboard") },
		Bell:      io.Discard,
	})
	app, _ = send(app, runeMsg("Y"))
	assert.Equal(t, app.Bells(), 1)
}

func TestApp_WindowSize(t *testing.T) {
	app := newTestApp("A")

	app, _ = send(app, tea.WindowSizeMsg{Width: 40, Height: 10})
	lines := bytes.Count([]byte(app.View()), []byte("\n")) + 1
	assert.Equal(t, lines, 10)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, tui.ModeBrowse.String(), "browse")
	assert.Equal(t, tui.ModeFind.String(), "find")
	assert.Assert(t, !tui.ModePending.IsEntry())
	assert.Assert(t, tui.ModeSave.IsEntry())
}
