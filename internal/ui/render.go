package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/tabx/internal/grid"
)

const minRenderWidth = 4
const minRenderHeight = 2

// formatCell fits text into exactly width display cells. Oversized values
// keep their head and end in "… " so truncation is always visible; a width
// of 2 leaves room for the marker alone.
func formatCell(text string, width int) string {
	if width < 2 {
		return strings.Repeat(" ", maxInt(0, width))
	}
	w := runewidth.StringWidth(text)
	if w >= width {
		if width == 2 {
			return "… "
		}
		head := runewidth.Truncate(text, width-2, "")
		pad := width - 2 - runewidth.StringWidth(head)
		return head + strings.Repeat(" ", pad) + "… "
	}
	return text + strings.Repeat(" ", width-w)
}

// render draws the full screen: header, index gutter, the visible cell
// window, and the bottom bar.
func (m *Model) render() string {
	if m.winW < minRenderWidth || m.winH < minRenderHeight {
		return "tabx: window too small"
	}

	vs := m.current()
	rows, cols := vs.Frame.Shape()
	slots := vs.Viewport.VisibleColumns(m.dataBudget(), vs.Sizing, cols)
	rowStart, rowEnd := vs.Viewport.VisibleRows(m.dataRows(), rows)
	selR0, selR1, selC0, selC1 := vs.SelRect()
	indexW := vs.Sizing.IndexWidth()

	var b strings.Builder
	lines := 0

	if vs.HeaderVisible {
		if vs.IndexVisible {
			b.WriteString(m.theme.Index.Render(strings.Repeat(" ", indexW)))
		}
		for _, slot := range slots {
			label := formatCell(vs.Frame.ColumnLabel(slot.Col), slot.Width)
			switch {
			case slot.Col == vs.Cursor.Col:
				b.WriteString(m.theme.Cursor.Render(label))
			case slot.Col >= selC0 && slot.Col <= selC1:
				b.WriteString(m.theme.Selected.Render(label))
			default:
				b.WriteString(m.theme.Header.Render(label))
			}
		}
		b.WriteString("\n")
		lines++
	}

	for r := rowStart; r < rowEnd; r++ {
		if vs.IndexVisible {
			label := formatCell(vs.Frame.RowLabel(r), indexW)
			switch {
			case r == vs.Cursor.Row:
				b.WriteString(m.theme.Cursor.Render(label))
			case r >= selR0 && r <= selR1:
				b.WriteString(m.theme.Selected.Render(label))
			default:
				b.WriteString(m.theme.Index.Render(label))
			}
		}
		for _, slot := range slots {
			cell := formatCell(vs.Frame.Cell(r, slot.Col), slot.Width)
			b.WriteString(m.styleCell(vs, r, slot, selR0, selR1, selC0, selC1).Render(cell))
		}
		b.WriteString("\n")
		lines++
	}

	// pad so the bar sits on the last line even for short tables
	for lines < m.winH-1 {
		b.WriteString("\n")
		lines++
	}

	b.WriteString(m.renderBar())
	return b.String()
}

// styleCell picks the style for one data cell. Precedence is cursor, then
// current match, then selection, then any match, then plain.
func (m *Model) styleCell(vs *ViewState, row int, slot grid.ColumnSlot, selR0, selR1, selC0, selC1 int) lipgloss.Style {
	col := slot.Col
	switch {
	case row == vs.Cursor.Row && col == vs.Cursor.Col:
		return m.theme.Cursor
	case currentMatchAt(vs, row, col):
		return m.theme.CurrentMatch
	case row >= selR0 && row <= selR1 && col >= selC0 && col <= selC1:
		return m.theme.Selected
	case vs.Search.Active && vs.Search.IsMatch(row, col):
		return m.theme.Match
	}
	return m.theme.Cell
}

func currentMatchAt(vs *ViewState, row, col int) bool {
	if !vs.Search.Active {
		return false
	}
	cur, ok := vs.Search.CurrentMatch()
	return ok && cur.Row == row && cur.Col == col
}

// renderBar draws the bottom bar: an entry prompt while typing, otherwise
// an error or status on the left and the position readout on the right.
func (m *Model) renderBar() string {
	switch m.mode {
	case SearchEntryMode:
		return m.theme.Prompt.Render("/") + m.input.View()
	case CommandEntryMode:
		return m.theme.Prompt.Render(":") + m.input.View()
	}

	vs := m.current()
	rows, cols := vs.Frame.Shape()
	right := fmt.Sprintf("%d,%d  %d×%d", vs.Cursor.Row+1, vs.Cursor.Col+1, rows, cols)
	if len(m.stack) > 1 {
		right = fmt.Sprintf("[%d] %s", len(m.stack), right)
	}

	var left string
	var style = m.theme.Status
	if m.errMsg != "" {
		left = m.errMsg
		style = m.theme.StatusError
	} else {
		left = m.statusMsg
	}

	gap := m.winW - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		left = formatCell(left, maxInt(0, m.winW-runewidth.StringWidth(right)-1))
		gap = 1
	}
	return style.Render(left) + strings.Repeat(" ", gap) + m.theme.Status.Render(right)
}
