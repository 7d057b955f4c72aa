package stories

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	story   lipgloss.Style
	host    lipgloss.Style
	id      lipgloss.Style
	star    lipgloss.Style
	starOff lipgloss.Style
	mine    lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		story:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		host:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		id:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		star:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		starOff: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		mine:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
