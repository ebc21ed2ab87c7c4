package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the chord bindings for editor commands. Everything else that
// carries a modifier gates edit application instead of inserting text.
type keyMap struct {
	Save      key.Binding
	Open      key.Binding
	New       key.Binding
	Undo      key.Binding
	CopyLine  key.Binding
	Paste     key.Binding
	ThemeNext key.Binding
	Diff      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Open:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		New:       key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new file")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		CopyLine:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy line")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		ThemeNext: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "next theme")),
		Diff:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "unsaved changes")),
		Help:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}
