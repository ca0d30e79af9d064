package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the status label styles. Colors are the bright ANSI variants
// (yellow, green, red, blue).
type Theme struct {
	Warning lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Info    lipgloss.Style
}

// DefaultTheme binds styles to a renderer for w, so color is emitted only when
// w is a terminal that supports it.
func DefaultTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		Info:    r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}
