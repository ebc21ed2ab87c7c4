package session

import "strings"

// ActionKind identifies a single editing action applied to the document.
type ActionKind int

const (
	InsertRune ActionKind = iota
	InsertText
	InsertNewline
	Backspace
	DeleteForward
	CursorLeft
	CursorRight
	CursorUp
	CursorDown
	CursorLineStart
	CursorLineEnd
)

// Action is one discrete edit or cursor motion. Rune is set for InsertRune,
// Text for InsertText; both are ignored otherwise.
type Action struct {
	Kind ActionKind
	Rune rune
	Text string
}

func TypeRune(r rune) Action { return Action{Kind: InsertRune, Rune: r} }
func Paste(s string) Action  { return Action{Kind: InsertText, Text: s} }
func Newline() Action        { return Action{Kind: InsertNewline} }
func Move(k ActionKind) Action {
	return Action{Kind: k}
}

// Mutating reports whether the action can change document text, as opposed
// to a pure cursor motion.
func (k ActionKind) Mutating() bool {
	switch k {
	case InsertRune, InsertText, InsertNewline, Backspace, DeleteForward:
		return true
	}
	return false
}

// Document holds the full text as lines plus a 0-based cursor. The zero
// value is not usable; construct with NewDocument or DocumentOf. All edits
// go through Apply, which copies lines before mutating so older State values
// stay intact.
type Document struct {
	lines []string
	row   int
	col   int // rune offset within lines[row]
}

// NewDocument returns an empty single-line document.
func NewDocument() Document {
	return Document{lines: []string{""}}
}

// DocumentOf builds a document from text with the cursor at the origin.
func DocumentOf(text string) Document {
	return Document{lines: strings.Split(text, "\n")}
}

// Text joins the lines back into the full document text.
func (d Document) Text() string { return strings.Join(d.lines, "\n") }

// Cursor returns the 0-based row and rune column.
func (d Document) Cursor() (row, col int) { return d.row, d.col }

// LineCount returns the number of lines (always >= 1).
func (d Document) LineCount() int { return len(d.lines) }

// Line returns line i, or "" when out of range.
func (d Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// CurrentLine returns the line under the cursor.
func (d Document) CurrentLine() string { return d.lines[d.row] }

// ReplaceText swaps in new content (undo, load) keeping the cursor where it
// was, clamped into the new bounds.
func (d Document) ReplaceText(text string) Document {
	out := DocumentOf(text)
	out.row = d.row
	out.col = d.col
	out.clamp()
	return out
}

func (d *Document) clamp() {
	if d.row >= len(d.lines) {
		d.row = len(d.lines) - 1
	}
	if d.row < 0 {
		d.row = 0
	}
	if n := len([]rune(d.lines[d.row])); d.col > n {
		d.col = n
	}
	if d.col < 0 {
		d.col = 0
	}
}

// Apply runs one action and returns the resulting document plus whether the
// text actually changed. Edge actions that change nothing (Backspace at the
// origin, DeleteForward at the end) report false.
func (d Document) Apply(a Action) (Document, bool) {
	switch a.Kind {
	case InsertRune:
		return d.insert(string(a.Rune)), true
	case InsertText:
		if a.Text == "" {
			return d, false
		}
		return d.insert(a.Text), true
	case InsertNewline:
		return d.insert("\n"), true
	case Backspace:
		if d.row == 0 && d.col == 0 {
			return d, false
		}
		return d.backspace(), true
	case DeleteForward:
		line := []rune(d.lines[d.row])
		if d.row == len(d.lines)-1 && d.col == len(line) {
			return d, false
		}
		return d.deleteForward(), true
	default:
		return d.move(a.Kind), false
	}
}

func cloneLines(lines []string) []string {
	return append([]string(nil), lines...)
}

func (d Document) insert(text string) Document {
	out := d
	out.lines = cloneLines(d.lines)
	line := []rune(out.lines[out.row])
	head := string(line[:out.col])
	tail := string(line[out.col:])

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		out.lines[out.row] = head + text + tail
		out.col += len([]rune(text))
		return out
	}
	// Multi-line insert: splice the new lines around the cursor.
	first := head + parts[0]
	last := parts[len(parts)-1]
	mid := parts[1 : len(parts)-1]

	rebuilt := make([]string, 0, len(out.lines)+len(parts)-1)
	rebuilt = append(rebuilt, out.lines[:out.row]...)
	rebuilt = append(rebuilt, first)
	rebuilt = append(rebuilt, mid...)
	rebuilt = append(rebuilt, last+tail)
	rebuilt = append(rebuilt, out.lines[out.row+1:]...)

	out.lines = rebuilt
	out.row += len(parts) - 1
	out.col = len([]rune(last))
	return out
}

func (d Document) backspace() Document {
	out := d
	out.lines = cloneLines(d.lines)
	if out.col > 0 {
		line := []rune(out.lines[out.row])
		out.lines[out.row] = string(line[:out.col-1]) + string(line[out.col:])
		out.col--
		return out
	}
	// Join with the previous line.
	prev := out.lines[out.row-1]
	out.col = len([]rune(prev))
	out.lines[out.row-1] = prev + out.lines[out.row]
	out.lines = append(out.lines[:out.row], out.lines[out.row+1:]...)
	out.row--
	return out
}

func (d Document) deleteForward() Document {
	out := d
	out.lines = cloneLines(d.lines)
	line := []rune(out.lines[out.row])
	if out.col < len(line) {
		out.lines[out.row] = string(line[:out.col]) + string(line[out.col+1:])
		return out
	}
	// Join with the next line.
	out.lines[out.row] += out.lines[out.row+1]
	out.lines = append(out.lines[:out.row+1], out.lines[out.row+2:]...)
	return out
}

func (d Document) move(k ActionKind) Document {
	out := d
	switch k {
	case CursorLeft:
		if out.col > 0 {
			out.col--
		} else if out.row > 0 {
			out.row--
			out.col = len([]rune(out.lines[out.row]))
		}
	case CursorRight:
		if out.col < len([]rune(out.lines[out.row])) {
			out.col++
		} else if out.row < len(out.lines)-1 {
			out.row++
			out.col = 0
		}
	case CursorUp:
		if out.row > 0 {
			out.row--
			out.clamp()
		}
	case CursorDown:
		if out.row < len(out.lines)-1 {
			out.row++
			out.clamp()
		}
	case CursorLineStart:
		out.col = 0
	case CursorLineEnd:
		out.col = len([]rune(out.lines[out.row]))
	}
	return out
}
