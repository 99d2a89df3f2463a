// Package styles holds the colours used by the progress display and the run
// summary.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette. Accent colours the spinner and titles;
// Muted is used for counts and key hints.
type Theme struct {
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// DefaultTheme returns the palette used on colour terminals.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:  lipgloss.Color("#5B8DEF"),
		Muted:   lipgloss.Color("#8A8F98"),
		Success: lipgloss.Color("#4CC38A"),
		Warning: lipgloss.Color("#E5B84B"),
		Error:   lipgloss.Color("#E5484D"),
	}
}

// Styles are the rendered styles for one theme.
type Styles struct {
	theme *Theme

	Title   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles builds styles for theme, or for the default theme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Styles{
		theme:   theme,
		Title:   fg(theme.Accent).Bold(true),
		Muted:   fg(theme.Muted),
		Error:   fg(theme.Error).Bold(true),
		Success: fg(theme.Success),
		Warning: fg(theme.Warning),
		Help:    fg(theme.Muted).Faint(true),
	}
}

// DefaultStyles is NewStyles(DefaultTheme()).
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// PlainStyles render text unchanged, for output that is not a terminal.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		theme:   DefaultTheme(),
		Title:   plain,
		Muted:   plain,
		Error:   plain,
		Success: plain,
		Warning: plain,
		Help:    plain,
	}
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
