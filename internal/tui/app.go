package tui

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/todo/internal/config"
	"github.com/nikbrunner/todo/internal/model"
	"github.com/nikbrunner/todo/internal/storage"
	"github.com/nikbrunner/todo/internal/tui/layout"
)

const defaultTitle = "TODO-List"

// Files stores lists under user-typed names.
type Files interface {
	Save(name string, list *model.List) error
	Load(name string) (*model.List, error)
}

// App is the main bubbletea model for the todo list.
type App struct {
	list         *model.List
	files        Files
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	controls     []Hint
	title        string
	addPosition  string
	copyText     func(string) error
	bellOut      io.Writer

	mode   Mode
	next   Mode   // entry mode revealed after ModePending
	entry  Entry  // buffer of the active entry mode
	status string // one-shot Browse message
	atLine int    // scroll offset: index of the first visible item
	bells  int

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	List         *model.List          // optional, starts empty if nil
	Files        Files                // optional, .ftms files in the working directory if nil
	Title        string               // optional, "TODO-List" if empty
	AddPosition  string               // config.AddAtEnd (default) or config.AddAtCursor
	Clipboard    func(string) error   // optional, system clipboard if nil
	Bell         io.Writer            // optional, os.Stdout if nil
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	list := params.List
	if list == nil {
		list = model.NewList()
	}

	var files Files = storage.NewLibrary("")
	if params.Files != nil {
		files = params.Files
	}

	title := params.Title
	if title == "" {
		title = defaultTitle
	}

	addPosition := params.AddPosition
	if addPosition != config.AddAtCursor {
		addPosition = config.AddAtEnd
	}

	copyText := params.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	var bellOut io.Writer = os.Stdout
	if params.Bell != nil {
		bellOut = params.Bell
	}

	return App{
		list:         list,
		files:        files,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		controls:     DefaultControls(keys),
		title:        title,
		addPosition:  addPosition,
		copyText:     copyText,
		bellOut:      bellOut,
		mode:         ModeBrowse,
		width:        80,
		height:       24,
	}
}

// WithDimensions returns a copy of the App sized to the given terminal.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// List returns the item list.
func (a App) List() *model.List {
	return a.list
}

// Items returns the current items in display order.
func (a App) Items() []string {
	return a.list.Items
}

// Mode returns the active mode.
func (a App) Mode() Mode {
	return a.mode
}

// Entry returns the buffer of the active entry mode.
func (a App) Entry() Entry {
	return a.entry
}

// AtLine returns the scroll offset.
func (a App) AtLine() int {
	return a.atLine
}

// Status returns the one-shot Browse status message.
func (a App) Status() string {
	return a.status
}

// Controls returns the footer legend.
func (a App) Controls() []Hint {
	return a.controls
}

// Bells returns how many times input was rejected.
func (a App) Bells() int {
	return a.bells
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case revealMsg:
		a.reveal()
		return a, nil

	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		return a, cmd
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
