// Package pathprompt is the path-selection modal: a one-line text input that
// stands in for a native file dialog. Cancelling it is how the editor maps a
// "dialog closed" outcome.
package pathprompt

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	title string
	input textinput.Model
}

func New(title, placeholder string) Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	in.CharLimit = 512
	in.Width = 60
	in.Focus()
	return Model{title: title, input: in}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View(border lipgloss.Style, title lipgloss.Style) string {
	body := title.Render(m.title) + "\n" + m.input.View() + "\n" +
		"enter: confirm   esc: cancel"
	return border.Render(body)
}

// Value returns the entered path with ~, env vars, and relative segments
// resolved. Empty input stays empty.
func (m Model) Value() string {
	return ExpandPath(m.input.Value())
}

// ExpandPath normalizes a user-typed path to an absolute one.
func ExpandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if p == "~" {
		if h, err := os.UserHomeDir(); err == nil {
			p = h
		}
	} else if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	p = os.ExpandEnv(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}
