package session

// History is a linear undo log of whole-document snapshots. Index 0 is the
// baseline (the last loaded or saved text). There is no redo: recording
// while not at the tail discards everything after the current index.
type History struct {
	snapshots []string
	index     int
}

// NewHistory returns a history containing only the baseline snapshot.
func NewHistory(baseline string) History {
	return History{snapshots: []string{baseline}}
}

// Record appends text as the newest snapshot, truncating any snapshots past
// the current index first.
func (h History) Record(text string) History {
	kept := append([]string(nil), h.snapshots[:h.index+1]...)
	return History{
		snapshots: append(kept, text),
		index:     h.index + 1,
	}
}

// Undo steps back one snapshot and returns it. At the baseline it reports
// false and returns the history unchanged.
func (h History) Undo() (History, string, bool) {
	if h.index == 0 {
		return h, "", false
	}
	h.index--
	return h, h.snapshots[h.index], true
}

// Baseline returns the snapshot at index 0 (the last loaded or saved text).
func (h History) Baseline() string { return h.snapshots[0] }

// IsClean reports whether the history sits at its baseline snapshot.
func (h History) IsClean() bool { return h.index == 0 }

// Len returns the number of snapshots currently held.
func (h History) Len() int { return len(h.snapshots) }
