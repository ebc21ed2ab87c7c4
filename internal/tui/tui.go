// Package tui is the terminal shell around the editor session: it turns key
// events into session messages, runs reducer effects as async commands, and
// renders the document, status bar, and overlays.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoaoMadeiraxyz/text-editor/internal/fileio"
	"github.com/JoaoMadeiraxyz/text-editor/internal/session"
	"github.com/JoaoMadeiraxyz/text-editor/internal/tui/widgets/helpoverlay"
	"github.com/JoaoMadeiraxyz/text-editor/internal/tui/widgets/pathprompt"
	"github.com/JoaoMadeiraxyz/text-editor/internal/tui/widgets/statusbar"
)

// ===== Model =====

type promptKind int

const (
	promptNone promptKind = iota
	promptOpen
	promptSave
)

// Options configures a new editor shell.
type Options struct {
	Theme       string
	TabWidth    int
	InitialPath string // loaded asynchronously at startup when set
}

type Model struct {
	state session.State
	keys  keyMap

	tabWidth    int
	initialPath string

	width  int
	height int
	scroll int

	showHelp bool
	showDiff bool

	prompt      pathprompt.Model
	promptKind  promptKind
	pendingSave string

	status statusbar.StatusBar
	help   helpoverlay.HelpOverlay
}

func New(opts Options) Model {
	tab := opts.TabWidth
	if tab <= 0 {
		tab = 4
	}
	return Model{
		state:       session.NewState(opts.Theme),
		keys:        defaultKeyMap(),
		tabWidth:    tab,
		initialPath: opts.InitialPath,
		width:       80,
		height:      24,
		status:      statusbar.New(),
		help:        helpoverlay.New(),
	}
}

// Run starts the editor program in the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// State exposes the session state for the view layer and tests.
func (m Model) State() session.State { return m.state }

func (m Model) Init() tea.Cmd {
	if m.initialPath != "" {
		return loadCmd(m.initialPath)
	}
	return nil
}

// ===== Update =====

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		m = m.ensureCursorVisible()
		return m, nil

	case fileLoadedMsg:
		if msg.err != nil {
			return m.apply(session.FileLoadedMsg{Err: msg.err})
		}
		m.scroll = 0
		return m.apply(session.FileLoadedMsg{Path: msg.file.Path, Content: msg.file.Content})

	case fileSavedMsg:
		return m.apply(session.FileSavedMsg{Path: msg.path, Err: msg.err})

	case pastedMsg:
		return m.apply(session.EditMsg{Action: session.Paste(msg.text)})

	case tea.KeyMsg:
		if m.promptKind != promptNone {
			return m.updatePrompt(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.showDiff = false
		return m, nil
	case key.Matches(msg, m.keys.Diff):
		m.showDiff = !m.showDiff
		m.showHelp = false
		return m, nil
	case key.Matches(msg, m.keys.ThemeNext):
		return m.apply(session.ThemeSelectedMsg{Name: NextThemeName(m.state.Theme)})
	case key.Matches(msg, m.keys.Save):
		return m.apply(session.SaveRequestedMsg{})
	case key.Matches(msg, m.keys.Open):
		return m.apply(session.OpenRequestedMsg{})
	case key.Matches(msg, m.keys.New):
		return m.apply(session.NewMsg{})
	case key.Matches(msg, m.keys.Undo):
		return m.apply(session.UndoMsg{})
	case key.Matches(msg, m.keys.CopyLine):
		return m.apply(session.CopyLineMsg{})
	case key.Matches(msg, m.keys.Paste):
		return m, pasteCmd
	}

	// ctrl+h is the backspace byte in many terminals.
	if msg.Type == tea.KeyCtrlH {
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	}

	// Terminals report key presses only, never releases. Any unbound
	// modifier chord suspends edit application; the next plain key lifts
	// the suspension before it is applied, so the chord itself can never
	// leak a character into the document.
	if isModifierChord(msg) {
		return m.apply(session.ModifierPressedMsg{})
	}

	msgs := make([]session.Message, 0, 2)
	if !m.state.Gate.AllowEdit() {
		msgs = append(msgs, session.ModifierReleasedMsg{})
	}
	if action, ok := actionForKey(msg); ok {
		msgs = append(msgs, session.EditMsg{Action: action})
	}
	return m.applyAll(msgs...)
}

func isModifierChord(msg tea.KeyMsg) bool {
	s := msg.String()
	return strings.HasPrefix(s, "ctrl+") || strings.HasPrefix(s, "alt+") || msg.Alt
}

// actionForKey maps a plain key press to an editing action.
func actionForKey(msg tea.KeyMsg) (session.Action, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return session.TypeRune(msg.Runes[0]), true
		}
		return session.Paste(string(msg.Runes)), true
	case tea.KeySpace:
		return session.TypeRune(' '), true
	case tea.KeyTab:
		return session.TypeRune('\t'), true
	case tea.KeyEnter:
		return session.Newline(), true
	case tea.KeyBackspace:
		return session.Action{Kind: session.Backspace}, true
	case tea.KeyDelete:
		return session.Action{Kind: session.DeleteForward}, true
	case tea.KeyLeft:
		return session.Move(session.CursorLeft), true
	case tea.KeyRight:
		return session.Move(session.CursorRight), true
	case tea.KeyUp:
		return session.Move(session.CursorUp), true
	case tea.KeyDown:
		return session.Move(session.CursorDown), true
	case tea.KeyHome:
		return session.Move(session.CursorLineStart), true
	case tea.KeyEnd:
		return session.Move(session.CursorLineEnd), true
	}
	return session.Action{}, false
}

// apply folds one session message into the model and turns the reducer's
// effects into commands.
func (m Model) apply(msg session.Message) (Model, tea.Cmd) {
	next, effects := session.Apply(m.state, msg)
	m.state = next

	var cmds []tea.Cmd
	for _, eff := range effects {
		switch e := eff.(type) {
		case session.ChooseOpenPath:
			m.promptKind = promptOpen
			m.prompt = pathprompt.New("Open file", "path/to/file.txt")
		case session.ChooseSavePath:
			m.promptKind = promptSave
			m.pendingSave = e.Text
			m.prompt = pathprompt.New("Save as", "path/to/file.txt")
		case session.SaveFile:
			cmds = append(cmds, saveCmd(e.Path, e.Text))
		case session.SetClipboard:
			cmds = append(cmds, setClipboardCmd(e.Text))
		}
	}
	m = m.ensureCursorVisible()
	return m, tea.Batch(cmds...)
}

func (m Model) applyAll(msgs ...session.Message) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.apply(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		kind := m.promptKind
		m.promptKind = promptNone
		if kind == promptOpen {
			return m.apply(session.FileLoadedMsg{Err: fileio.ErrDialogClosed})
		}
		return m.apply(session.FileSavedMsg{Err: fileio.ErrDialogClosed})
	case "enter":
		path := m.prompt.Value()
		if path == "" {
			return m, nil
		}
		kind := m.promptKind
		m.promptKind = promptNone
		if kind == promptOpen {
			return m, loadCmd(path)
		}
		return m, saveCmd(path, m.pendingSave)
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) bodyHeight() int {
	h := m.height - 1 // status bar
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) ensureCursorVisible() Model {
	row, _ := m.state.Doc.Cursor()
	if row < m.scroll {
		m.scroll = row
	}
	if h := m.bodyHeight(); row >= m.scroll+h {
		m.scroll = row - h + 1
	}
	return m
}
