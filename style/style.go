// Package style provides a functional API for composing and applying lipgloss-based console styles.
package style

import "github.com/charmbracelet/lipgloss"

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Box renders a rounded, padded frame used for diagnostics such as the dependency check.
func Box(border lipgloss.Color, content string) string {
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Margin(1, 0).
		Render(content)
}
