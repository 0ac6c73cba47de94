// Package style defines the visual styling for embedjs terminal
// output. Colors are adaptive so they stay readable on light and dark
// terminal themes.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// ErrorStyle renders fatal error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"})

	// TitleStyle renders section headings.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"})

	// MutedStyle renders secondary information such as paths.
	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

// Error renders msg in the error style.
func Error(msg string) string {
	return ErrorStyle.Render(msg)
}
