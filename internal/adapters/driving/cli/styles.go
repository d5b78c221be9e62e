package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for command output.
type Theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains pre-configured lipgloss styles bound to one writer.
// Writers that are not terminals get unstyled text.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates styles for w from a theme.
func NewStyles(w io.Writer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	r := lipgloss.NewRenderer(w)

	return &Styles{
		Title:   r.NewStyle().Bold(true).Foreground(theme.Primary),
		Muted:   r.NewStyle().Foreground(theme.Muted),
		Success: r.NewStyle().Bold(true).Foreground(theme.Success),
		Error:   r.NewStyle().Bold(true).Foreground(theme.Error),
	}
}

// Status renders an ok/FAIL marker.
func (s *Styles) Status(ok bool) string {
	if ok {
		return s.Success.Render("ok  ")
	}
	return s.Error.Render("FAIL")
}
