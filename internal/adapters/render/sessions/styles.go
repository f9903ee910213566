package sessions

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header    lipgloss.Style
	separator lipgloss.Style
	name      lipgloss.Style
	detail    lipgloss.Style
	footer    lipgloss.Style
	empty     lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true),
		separator: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:     lipgloss.NewStyle().Faint(true),
	}
}
