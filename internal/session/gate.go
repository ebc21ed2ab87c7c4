package session

// Gate suspends edit application while a modifier chord is active, so a
// shortcut like ctrl+s never also inserts the letter "s". The gate does not
// count held modifiers: any release clears it unconditionally, even when a
// second modifier is still down. That coarse behavior is deliberate and
// pinned by tests.
type Gate struct {
	suspended bool
}

// Press marks a modifier chord as active.
func (g Gate) Press() Gate {
	g.suspended = true
	return g
}

// Release clears the suspension.
func (g Gate) Release() Gate {
	g.suspended = false
	return g
}

// AllowEdit reports whether plain edits may currently be applied.
func (g Gate) AllowEdit() bool { return !g.suspended }
