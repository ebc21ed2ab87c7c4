// Package session holds the editor state machine: the document, its linear
// undo history, the modifier input gate, and the pure reducer that advances
// all of them one message at a time.
package session

// State is the whole editor state. Apply takes it by value and returns the
// next value, so every transition is a pure step and callers may keep old
// states around (tests do).
type State struct {
	Doc   Document
	Loc   Location
	Dirty bool
	Hist  History
	Gate  Gate
	Err   error
	Theme string
}

// NewState returns a clean, unsaved, empty editor.
func NewState(theme string) State {
	return State{
		Doc:   NewDocument(),
		Loc:   Unsaved(),
		Hist:  NewHistory(""),
		Theme: theme,
	}
}

// Apply advances the state by one message and returns any side effects the
// caller should run. It never errors and never blocks; failures travel in as
// messages and out as State.Err.
func Apply(s State, msg Message) (State, []Effect) {
	switch m := msg.(type) {
	case EditMsg:
		if !s.Gate.AllowEdit() {
			// Mid-chord: accept and discard.
			return s, nil
		}
		doc, changed := s.Doc.Apply(m.Action)
		s.Doc = doc
		if changed {
			s.Dirty = true
			s.Err = nil
			s.Hist = s.Hist.Record(doc.Text())
		}
		return s, nil

	case ModifierPressedMsg:
		s.Gate = s.Gate.Press()
		return s, nil

	case ModifierReleasedMsg:
		s.Gate = s.Gate.Release()
		return s, nil

	case NewMsg:
		s.Loc = Unsaved()
		s.Doc = NewDocument()
		s.Dirty = true
		s.Hist = NewHistory("")
		return s, nil

	case OpenRequestedMsg:
		return s, []Effect{ChooseOpenPath{}}

	case FileLoadedMsg:
		if m.Err != nil {
			s.Err = m.Err
			return s, nil
		}
		s.Loc = SavedAt(m.Path)
		s.Doc = DocumentOf(m.Content)
		s.Hist = NewHistory(m.Content)
		s.Dirty = false
		return s, nil

	case SaveRequestedMsg:
		text := s.Doc.Text()
		// The in-flight save is treated as the new baseline right away.
		// On save failure this leaves history "clean" relative to text
		// that never reached disk; see DESIGN.md.
		s.Hist = NewHistory(text)
		if path, ok := s.Loc.Path(); ok {
			return s, []Effect{SaveFile{Path: path, Text: text}}
		}
		return s, []Effect{ChooseSavePath{Text: text}}

	case FileSavedMsg:
		if m.Err != nil {
			s.Err = m.Err
			return s, nil
		}
		s.Loc = SavedAt(m.Path)
		s.Dirty = false
		return s, nil

	case UndoMsg:
		if !s.Dirty {
			// Nothing to undo once saved, even if snapshots remain.
			return s, nil
		}
		hist, text, ok := s.Hist.Undo()
		if !ok {
			return s, nil
		}
		s.Hist = hist
		s.Doc = s.Doc.ReplaceText(text)
		if hist.IsClean() {
			s.Dirty = false
		}
		return s, nil

	case CopyLineMsg:
		return s, []Effect{SetClipboard{Text: s.Doc.CurrentLine()}}

	case ThemeSelectedMsg:
		s.Theme = m.Name
		return s, nil
	}
	return s, nil
}
