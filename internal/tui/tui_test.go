package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoaoMadeiraxyz/text-editor/internal/fileio"
)

func newTestModel() Model {
	m := New(Options{Theme: "dark"})
	nm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return nm.(Model)
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(msg)
	return nm.(Model), cmd
}

func pressAll(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = press(t, m, msg)
	}
	return m
}

func runesKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeRunes(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, runesKey(string(r)))
	}
	return m
}

func TestTypingEditsDocument(t *testing.T) {
	m := typeRunes(t, newTestModel(), "hi")
	if got := m.State().Doc.Text(); got != "hi" {
		t.Fatalf("text = %q", got)
	}
	if !m.State().Dirty {
		t.Fatalf("expected dirty after typing")
	}
}

func TestEnterBackspaceArrows(t *testing.T) {
	m := typeRunes(t, newTestModel(), "ab")
	m = pressAll(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		runesKey("c"),
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
	)
	if got := m.State().Doc.Text(); got != "ab" {
		t.Fatalf("text = %q", got)
	}
	m = pressAll(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if _, col := m.State().Doc.Cursor(); col != 1 {
		t.Fatalf("col = %d", col)
	}
}

func TestUndoChord(t *testing.T) {
	m := typeRunes(t, newTestModel(), "ab")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.State().Doc.Text(); got != "a" {
		t.Fatalf("text after undo = %q", got)
	}
}

func TestUnboundChordGatesThenPlainKeyReleases(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlB}) // unbound chord
	if m.State().Gate.AllowEdit() {
		t.Fatalf("expected gate suspended after unbound chord")
	}
	m, _ = press(t, m, runesKey("x"))
	if !m.State().Gate.AllowEdit() {
		t.Fatalf("expected gate released by plain key")
	}
	if got := m.State().Doc.Text(); got != "x" {
		t.Fatalf("text = %q", got)
	}
}

func TestThemeCycles(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.State().Theme != "light" {
		t.Fatalf("theme = %q", m.State().Theme)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.State().Theme != "dark" {
		t.Fatalf("theme = %q", m.State().Theme)
	}
}

func TestViewShowsNewFileAndPosition(t *testing.T) {
	m := newTestModel()
	out := m.View()
	if !strings.Contains(out, "New file") {
		t.Fatalf("expected New file label in view")
	}
	if !strings.Contains(out, "1:1") {
		t.Fatalf("expected 1-based cursor position in view")
	}
}

func TestOpenPromptCancelStoresDialogClosed(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if !strings.Contains(m.View(), "Open file") {
		t.Fatalf("expected open prompt in view")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !errors.Is(m.State().Err, fileio.ErrDialogClosed) {
		t.Fatalf("err = %v", m.State().Err)
	}
	if strings.Contains(m.View(), "Open file") {
		t.Fatalf("expected prompt closed after cancel")
	}
}

func TestSaveAsFlowWritesFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	m := typeRunes(t, newTestModel(), "data")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.Contains(m.View(), "Save as") {
		t.Fatalf("expected save prompt for unsaved document")
	}

	for _, r := range target {
		m, _ = press(t, m, runesKey(string(r)))
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	m, _ = press(t, m, cmd()) // run the async save synchronously

	if path, ok := m.State().Loc.Path(); !ok || path != target {
		t.Fatalf("location = %q ok=%v", path, ok)
	}
	if m.State().Dirty {
		t.Fatalf("expected clean after save")
	}
	data, err := os.ReadFile(target)
	if err != nil || string(data) != "data" {
		t.Fatalf("file content %q err=%v", data, err)
	}
}

func TestSaveWithKnownPathSkipsPrompt(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "known.txt")
	if err := os.WriteFile(target, []byte("abc"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	m := newTestModel()
	m, _ = press(t, m, fileLoadedMsg{file: fileio.File{Path: target, Content: "abc"}})
	m = typeRunes(t, m, "!")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("expected direct save command")
	}
	m, _ = press(t, m, cmd())
	if m.State().Dirty {
		t.Fatalf("expected clean after save")
	}
	data, _ := os.ReadFile(target)
	if string(data) != "!abc" {
		t.Fatalf("file content = %q", data)
	}
}

func TestLoadCompletionReplacesDocument(t *testing.T) {
	m := typeRunes(t, newTestModel(), "scratch")
	m, _ = press(t, m, fileLoadedMsg{file: fileio.File{Path: "/p", Content: "abc"}})
	if got := m.State().Doc.Text(); got != "abc" {
		t.Fatalf("text = %q", got)
	}
	if m.State().Dirty {
		t.Fatalf("expected clean after load")
	}
	if !strings.Contains(m.View(), "/p") {
		t.Fatalf("expected path in status bar")
	}
}

func TestLoadFailureKeepsDocumentAndShowsError(t *testing.T) {
	m := typeRunes(t, newTestModel(), "keep")
	loadErr := &fileio.IOError{Op: "load", Path: "/nope", Kind: fileio.KindNotFound, Err: os.ErrNotExist}
	m, _ = press(t, m, fileLoadedMsg{err: loadErr})
	if got := m.State().Doc.Text(); got != "keep" {
		t.Fatalf("text = %q", got)
	}
	if !strings.Contains(m.View(), "not found") {
		t.Fatalf("expected error in status bar")
	}
}

func TestHelpAndDiffOverlays(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if !strings.Contains(m.View(), "ctrl+o: open") {
		t.Fatalf("expected help overlay")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if !strings.Contains(m.View(), "No changes") {
		t.Fatalf("expected empty diff overlay")
	}
	m = typeRunes(t, m, "x")
	if !strings.Contains(m.View(), "SAVED vs CURRENT") {
		t.Fatalf("expected diff content after an edit")
	}
}

func TestNewChordResetsLocation(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, fileLoadedMsg{file: fileio.File{Path: "/p", Content: "abc"}})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if _, ok := m.State().Loc.Path(); ok {
		t.Fatalf("expected unsaved location after ctrl+n")
	}
	if got := m.State().Doc.Text(); got != "" {
		t.Fatalf("text = %q", got)
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 40, Height: 5})
	content := strings.Repeat("line\n", 19) + "last"
	m, _ = press(t, m, fileLoadedMsg{file: fileio.File{Path: "/p", Content: content}})
	for i := 0; i < 19; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	// Height 5 leaves 4 body rows; the cursor on row 19 pins the window
	// to rows 16-19.
	if m.scroll != 16 {
		t.Fatalf("scroll = %d, want 16", m.scroll)
	}
	if row, _ := m.State().Doc.Cursor(); row != 19 {
		t.Fatalf("cursor row = %d", row)
	}
}
