package tui

import "github.com/charmbracelet/lipgloss"

// styles groups the lipgloss styles used by the view.
type styles struct {
	clock    lipgloss.Style
	heading  lipgloss.Style
	selected lipgloss.Style
	ringing  lipgloss.Style
	faint    lipgloss.Style
	errText  lipgloss.Style
	frame    lipgloss.Style
}

// defaultStyles returns the standard color scheme.
func defaultStyles() styles {
	return styles{
		clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7dcfff")).
			Padding(0, 1),
		heading: lipgloss.NewStyle().
			Bold(true).
			Underline(true),
		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e0af68")),
		ringing: lipgloss.NewStyle().
			Bold(true).
			Blink(true).
			Foreground(lipgloss.Color("#f7768e")),
		faint: lipgloss.NewStyle().
			Faint(true),
		errText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e")),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#565f89")).
			Padding(0, 2),
	}
}
