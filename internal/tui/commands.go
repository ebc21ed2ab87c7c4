package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoaoMadeiraxyz/text-editor/internal/fileio"
)

// Completion messages from async work. They re-enter Update and are folded
// into the session as FileLoadedMsg / FileSavedMsg there, so all state
// mutation stays on the single Update path.

type fileLoadedMsg struct {
	file fileio.File
	err  error
}

type fileSavedMsg struct {
	path string
	err  error
}

type pastedMsg struct {
	text string
}

func loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := fileio.Load(path)
		if err != nil {
			return fileLoadedMsg{err: err}
		}
		return fileLoadedMsg{file: f}
	}
}

func saveCmd(path, text string) tea.Cmd {
	return func() tea.Msg {
		resolved, err := fileio.Save(path, text)
		if err != nil {
			return fileSavedMsg{err: err}
		}
		return fileSavedMsg{path: resolved}
	}
}

func setClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		// Nothing useful to surface on clipboard failure; the editor
		// stays interactive either way.
		_ = clipboard.WriteAll(text)
		return nil
	}
}

func pasteCmd() tea.Msg {
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		return nil
	}
	return pastedMsg{text: text}
}
