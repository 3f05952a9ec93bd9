package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the viewer.
type Styles struct {
	// Layout
	Title     lipgloss.Style
	Board     lipgloss.Style
	StatusBar lipgloss.Style

	// Status indicators
	StatusOK    lipgloss.Style
	StatusError lipgloss.Style
	StatusKey   lipgloss.Style

	// Misc
	Muted lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Board: lipgloss.NewStyle(),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		StatusOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		StatusKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Magenta for key hints
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}
