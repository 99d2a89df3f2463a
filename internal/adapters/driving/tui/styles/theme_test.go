package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Accent))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Success))
	assert.NotEmpty(t, string(theme.Warning))
	assert.NotEmpty(t, string(theme.Error))
}

func TestDefaultTheme_ColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	palette := []lipgloss.Color{
		theme.Accent,
		theme.Muted,
		theme.Success,
		theme.Warning,
		theme.Error,
	}

	seen := make(map[string]bool)
	for _, c := range palette {
		assert.False(t, seen[string(c)], "duplicate colour %s", c)
		seen[string(c)] = true
	}
}

func TestNewStyles(t *testing.T) {
	theme := DefaultTheme()
	s := NewStyles(theme)

	require.NotNil(t, s)
	assert.Equal(t, theme, s.Theme())
	assert.True(t, s.Title.GetBold())
	assert.True(t, s.Help.GetFaint())
	assert.Equal(t, theme.Accent, s.Title.GetForeground())
	assert.Equal(t, theme.Error, s.Error.GetForeground())
	assert.Equal(t, theme.Success, s.Success.GetForeground())
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestPlainStyles(t *testing.T) {
	s := PlainStyles()

	for _, style := range []lipgloss.Style{s.Title, s.Muted, s.Error, s.Success, s.Warning, s.Help} {
		assert.Equal(t, "Failed: 2", style.Render("Failed: 2"))
	}
}
