package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/tabx/internal/config"
)

// Theme bundles the styles the render pipeline applies. Highlight styles are
// ordered by precedence in render.go: cursor, current match, selection,
// match.
type Theme struct {
	Header       lipgloss.Style
	Index        lipgloss.Style
	Cell         lipgloss.Style
	Cursor       lipgloss.Style
	Selected     lipgloss.Style
	Match        lipgloss.Style
	CurrentMatch lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Prompt       lipgloss.Style
}

// NewTheme builds the style set from config colors. With noColor every
// highlight degrades to reverse/underline attributes so the grid stays
// legible on monochrome terminals.
func NewTheme(cfg config.Theme, noColor bool) Theme {
	if noColor {
		return Theme{
			Header:       lipgloss.NewStyle().Bold(true),
			Index:        lipgloss.NewStyle().Faint(true),
			Cell:         lipgloss.NewStyle(),
			Cursor:       lipgloss.NewStyle().Reverse(true).Bold(true),
			Selected:     lipgloss.NewStyle().Reverse(true),
			Match:        lipgloss.NewStyle().Underline(true),
			CurrentMatch: lipgloss.NewStyle().Underline(true).Reverse(true),
			Status:       lipgloss.NewStyle(),
			StatusError:  lipgloss.NewStyle().Bold(true),
			Prompt:       lipgloss.NewStyle().Bold(true),
		}
	}

	pick := func(override, fallback string) color.Color {
		if override != "" {
			return lipgloss.Color(override)
		}
		return lipgloss.Color(fallback)
	}

	return Theme{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(pick(cfg.Header, "15")).Background(lipgloss.Color("8")),
		Index:        lipgloss.NewStyle().Faint(true),
		Cell:         lipgloss.NewStyle(),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(pick(cfg.Cursor, "12")).Bold(true),
		Selected:     lipgloss.NewStyle().Background(pick(cfg.Selection, "4")).Foreground(lipgloss.Color("15")),
		Match:        lipgloss.NewStyle().Foreground(pick(cfg.Match, "11")).Underline(true),
		CurrentMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(pick(cfg.CurrentMatch, "11")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		StatusError:  lipgloss.NewStyle().Foreground(pick(cfg.Error, "9")).Bold(true),
		Prompt:       lipgloss.NewStyle().Bold(true),
	}
}
