package tui

import "github.com/charmbracelet/lipgloss"

type browseStyles struct {
	title    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	hash     lipgloss.Style
	note     lipgloss.Style
	status   lipgloss.Style
	errorMsg lipgloss.Style
	modal    lipgloss.Style
}

func newBrowseStyles() browseStyles {
	return browseStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		hash:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		note:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Italic(true),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
	}
}
