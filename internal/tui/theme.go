package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles for one named look. Theme selection is
// plain pass-through state: the session stores the name, the view resolves
// it here.
type Theme struct {
	Name string

	Text       lipgloss.Style
	CursorCell lipgloss.Style
	Title      lipgloss.Style
	Faint      lipgloss.Style

	StatusBar   lipgloss.Style
	StatusDirty lipgloss.Style
	StatusError lipgloss.Style

	Overlay lipgloss.Style

	DiffDelLine lipgloss.Style
	DiffAddLine lipgloss.Style
	DiffDelChar lipgloss.Style
	DiffAddChar lipgloss.Style
}

var themes = []Theme{
	{
		Name:        "dark",
		Text:        lipgloss.NewStyle(),
		CursorCell:  lipgloss.NewStyle().Reverse(true),
		Title:       lipgloss.NewStyle().Bold(true),
		Faint:       lipgloss.NewStyle().Faint(true),
		StatusBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		StatusDirty: lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Background(lipgloss.Color("236")).Bold(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")).Bold(true),
		Overlay:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		DiffDelLine: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		DiffAddLine: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		DiffDelChar: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Underline(true),
		DiffAddChar: lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Underline(true),
	},
	{
		Name:        "light",
		Text:        lipgloss.NewStyle(),
		CursorCell:  lipgloss.NewStyle().Reverse(true),
		Title:       lipgloss.NewStyle().Bold(true),
		Faint:       lipgloss.NewStyle().Faint(true),
		StatusBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("252")),
		StatusDirty: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Background(lipgloss.Color("252")).Bold(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Background(lipgloss.Color("252")).Bold(true),
		Overlay:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		DiffDelLine: lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		DiffAddLine: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		DiffDelChar: lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Underline(true),
		DiffAddChar: lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Underline(true),
	},
}

// ThemeByName resolves a theme name, falling back to the first theme.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextThemeName cycles to the theme after name.
func NextThemeName(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
