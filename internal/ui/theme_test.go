package ui

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/oakwood-commons/tabx/internal/config"
)

func TestNewThemeAppliesOverrides(t *testing.T) {
	th := NewTheme(config.Theme{Header: "10", Cursor: "#ff00ff"}, false)

	assert.Equal(t, lipgloss.Color("10"), th.Header.GetForeground())
	assert.Equal(t, lipgloss.Color("#ff00ff"), th.Cursor.GetBackground())
	assert.Equal(t, lipgloss.Color("11"), th.Match.GetForeground())
}

func TestNewThemeNoColorUsesAttributes(t *testing.T) {
	th := NewTheme(config.Theme{Header: "10"}, true)

	assert.True(t, th.Cursor.GetReverse())
	assert.True(t, th.Match.GetUnderline())
	assert.Equal(t, lipgloss.NoColor{}, th.Header.GetForeground())
}
