package quote

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	name      lipgloss.Style
	detail    lipgloss.Style
	amountKey lipgloss.Style
	amount    lipgloss.Style
	total     lipgloss.Style
	taken     lipgloss.Style
	available lipgloss.Style
	faint     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		amountKey: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		amount:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		total:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		taken:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		available: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		faint:     lipgloss.NewStyle().Faint(true),
	}
}
