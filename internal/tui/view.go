package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	th := ThemeByName(m.state.Theme)

	var body string
	switch {
	case m.promptKind != promptNone:
		body = m.prompt.View(th.Overlay, th.Title)
	case m.showHelp:
		body = m.help.View(th.Overlay, th.Title)
	case m.showDiff:
		body = th.Overlay.Render(renderUnsavedDiff(m.state.Hist.Baseline(), m.state.Doc.Text(), th))
	default:
		body = m.viewDocument(th)
	}

	lines := strings.Split(body, "\n")
	h := m.bodyHeight()
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}

	bar := m.status.View(m.state, m.width, th.StatusBar, th.StatusDirty, th.StatusError)
	return strings.Join(lines, "\n") + "\n" + bar
}

func (m Model) viewDocument(th Theme) string {
	row, col := m.state.Doc.Cursor()
	h := m.bodyHeight()

	var b strings.Builder
	for i := m.scroll; i < m.scroll+h && i < m.state.Doc.LineCount(); i++ {
		if i > m.scroll {
			b.WriteString("\n")
		}
		b.WriteString(m.renderLine(m.state.Doc.Line(i), i == row, col, th))
	}
	return b.String()
}

// renderLine expands tabs and clips to the terminal width. On the cursor
// row the cell under the cursor is rendered with the cursor style.
func (m Model) renderLine(line string, cursorRow bool, col int, th Theme) string {
	tab := strings.Repeat(" ", m.tabWidth)
	var b strings.Builder
	width := 0

	expand := func(r rune) string {
		if r == '\t' {
			return tab
		}
		return string(r)
	}

	for i, r := range []rune(line) {
		cell := expand(r)
		w := runewidth.StringWidth(cell)
		if width+w > m.width {
			return b.String()
		}
		if cursorRow && i == col {
			// Style only the first cell of a tab stop.
			if r == '\t' {
				cell = th.CursorCell.Render(" ") + tab[1:]
			} else {
				cell = th.CursorCell.Render(cell)
			}
		} else {
			cell = th.Text.Render(cell)
		}
		b.WriteString(cell)
		width += w
	}
	if cursorRow && col >= len([]rune(line)) && width < m.width {
		b.WriteString(th.CursorCell.Render(" "))
	}
	return b.String()
}
