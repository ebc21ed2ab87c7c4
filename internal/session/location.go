package session

// Location tells whether the document has a backing file. It is a tagged
// pair rather than a bare optional path so that the unsaved phase is
// explicit.
type Location struct {
	path  string
	saved bool
}

// Unsaved is a document with no backing file (never saved, or after New).
func Unsaved() Location { return Location{} }

// SavedAt is a document backed by the file at path.
func SavedAt(path string) Location { return Location{path: path, saved: true} }

// Path returns the backing path and whether one exists.
func (l Location) Path() (string, bool) { return l.path, l.saved }

// Label renders the location for the status bar.
func (l Location) Label() string {
	if !l.saved {
		return "New file"
	}
	return l.path
}
