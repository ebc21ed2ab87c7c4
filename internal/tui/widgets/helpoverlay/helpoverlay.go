package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HelpOverlay struct{}

func New() HelpOverlay { return HelpOverlay{} }

// View returns grouped key help.
func (HelpOverlay) View(border, title lipgloss.Style) string {
	sections := []struct {
		title string
		keys  []string
	}{
		{"File", []string{"ctrl+o: open", "ctrl+s: save", "ctrl+n: new"}},
		{"Edit", []string{"ctrl+z: undo", "ctrl+y: copy line", "ctrl+v: paste"}},
		{"View", []string{"ctrl+d: unsaved changes", "ctrl+t: next theme"}},
		{"App", []string{"ctrl+g: toggle help", "ctrl+q: quit"}},
	}
	var b strings.Builder
	b.WriteString(title.Render("Help"))
	b.WriteString("\n")
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return border.Render(strings.TrimRight(b.String(), "\n"))
}
