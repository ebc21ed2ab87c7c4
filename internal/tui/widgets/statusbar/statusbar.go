package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/JoaoMadeiraxyz/text-editor/internal/fileio"
	"github.com/JoaoMadeiraxyz/text-editor/internal/session"
)

type StatusBar struct{}

func New() StatusBar { return StatusBar{} }

// View composes one status line: location, dirty marker, error (if any),
// theme name, and the 1-based cursor position.
func (StatusBar) View(s session.State, width int, bar, dirty, errStyle lipgloss.Style) string {
	leftPlain := s.Loc.Label()
	left := leftPlain
	if s.Dirty {
		left += " " + dirty.Render("[+]")
		leftPlain += " [+]"
	}
	if s.Err != nil {
		note := "! " + fileio.Describe(s.Err)
		left += "  " + errStyle.Render(note)
		leftPlain += "  " + note
	}

	row, col := s.Doc.Cursor()
	right := fmt.Sprintf("%s  %d:%d", s.Theme, row+1, col+1)

	gap := width - runewidth.StringWidth(leftPlain) - runewidth.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return bar.Render(left + strings.Repeat(" ", gap) + right)
}
