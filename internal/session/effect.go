package session

// Effect is a side effect requested by Apply. The caller runs each effect
// asynchronously and feeds the outcome back in as a new Message; effects
// themselves never touch session state.
type Effect interface{ isEffect() }

// ChooseOpenPath asks the user for a file to open. A cancelled selection
// comes back as FileLoadedMsg carrying a dialog-closed error.
type ChooseOpenPath struct{}

// ChooseSavePath asks the user for a destination, then writes Text there.
// Cancellation comes back as FileSavedMsg carrying a dialog-closed error.
type ChooseSavePath struct{ Text string }

// SaveFile writes Text to the known backing Path.
type SaveFile struct {
	Path string
	Text string
}

// SetClipboard places Text on the system clipboard.
type SetClipboard struct{ Text string }

func (ChooseOpenPath) isEffect() {}
func (ChooseSavePath) isEffect() {}
func (SaveFile) isEffect()       {}
func (SetClipboard) isEffect()   {}
