package session

// Message is one discrete event handled by Apply. User input and async file
// completions arrive through the same sequential stream.
type Message interface{ isMessage() }

// EditMsg applies one editing action, subject to the input gate.
type EditMsg struct{ Action Action }

// ModifierPressedMsg suspends edit application (a modifier chord began).
type ModifierPressedMsg struct{}

// ModifierReleasedMsg lifts the suspension.
type ModifierReleasedMsg struct{}

// NewMsg discards the current file association and starts an empty document.
type NewMsg struct{}

// OpenRequestedMsg asks for a file to be picked and loaded.
type OpenRequestedMsg struct{}

// FileLoadedMsg is the completion of an async load. On success Path and
// Content are set; on failure Err is set and the document is untouched.
type FileLoadedMsg struct {
	Path    string
	Content string
	Err     error
}

// SaveRequestedMsg persists the current text to the backing file, asking for
// a destination first when there is none.
type SaveRequestedMsg struct{}

// FileSavedMsg is the completion of an async save.
type FileSavedMsg struct {
	Path string
	Err  error
}

// UndoMsg steps the document back one recorded snapshot.
type UndoMsg struct{}

// CopyLineMsg copies the line under the cursor to the system clipboard.
type CopyLineMsg struct{}

// ThemeSelectedMsg stores the chosen theme name. Pass-through state: the
// session keeps and echoes it, nothing more.
type ThemeSelectedMsg struct{ Name string }

func (EditMsg) isMessage()             {}
func (ModifierPressedMsg) isMessage()  {}
func (ModifierReleasedMsg) isMessage() {}
func (NewMsg) isMessage()              {}
func (OpenRequestedMsg) isMessage()    {}
func (FileLoadedMsg) isMessage()       {}
func (SaveRequestedMsg) isMessage()    {}
func (FileSavedMsg) isMessage()        {}
func (UndoMsg) isMessage()             {}
func (CopyLineMsg) isMessage()         {}
func (ThemeSelectedMsg) isMessage()    {}
