package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	statusColors = map[string]lipgloss.Color{
		"CREATED":          lipgloss.Color("244"),
		"PICKED_UP":        lipgloss.Color("75"),
		"IN_TRANSIT":       lipgloss.Color("75"),
		"OUT_FOR_DELIVERY": lipgloss.Color("220"),
		"DELIVERED":        lipgloss.Color("82"),
		"CANCELLED":        lipgloss.Color("196"),
		"RETURNED":         lipgloss.Color("208"),
	}
)

func statusStyle(status string) lipgloss.Style {
	color, ok := statusColors[status]
	if !ok {
		color = lipgloss.Color("252")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
