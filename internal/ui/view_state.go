package ui

import (
	"github.com/oakwood-commons/tabx/internal/config"
	"github.com/oakwood-commons/tabx/internal/grid"
	"github.com/oakwood-commons/tabx/internal/search"
	"github.com/oakwood-commons/tabx/pkg/frame"
)

// Cursor is the focused cell in logical table coordinates. It is always
// inside [0, rows) × [0, cols) for non-empty frames.
type Cursor struct {
	Row int
	Col int
}

// Selection is the marked rectangle. The cursor is the moving corner; the
// anchor is pinned where selection mode was toggled on. Width forces a
// minimum column span regardless of the anchor/cursor bounding box.
type Selection struct {
	AnchorRow int
	AnchorCol int
	Active    bool
	Width     int
}

// ViewState is one entry on the view stack: a frame plus every piece of
// display state the user can change. Cursor, selection, search, and sizing
// all live here so popping a view restores them exactly as they were left.
type ViewState struct {
	Frame         frame.Frame
	Viewport      grid.Viewport
	Sizing        *grid.Sizing
	Cursor        Cursor
	Sel           Selection
	Search        search.State
	HeaderVisible bool
	IndexVisible  bool
}

// NewViewState builds the initial state for a frame, sized from display
// defaults: cursor home, selection collapsed, search idle.
func NewViewState(fr frame.Frame, display config.Display) *ViewState {
	_, cols := fr.Shape()
	sizing := grid.NewSizing(cols)
	if display.ColumnWidth > 0 {
		sizing.AdjustAll(display.ColumnWidth - grid.DefaultColWidth)
	}
	if display.IndexWidth > 0 {
		sizing.AdjustIndex(display.IndexWidth - grid.DefaultIndexWidth)
	}
	return &ViewState{
		Frame:         fr,
		Sizing:        sizing,
		Sel:           Selection{Width: 1},
		Search:        search.State{Current: -1},
		HeaderVisible: !display.HideHeader,
		IndexVisible:  !display.HideIndex,
	}
}

// ClampCursor forces the cursor back inside the frame, used after the frame
// shape is known to have changed (never during ordinary motions, which clamp
// per step).
func (v *ViewState) ClampCursor() {
	rows, cols := v.Frame.Shape()
	if v.Cursor.Row >= rows {
		v.Cursor.Row = rows - 1
	}
	if v.Cursor.Row < 0 {
		v.Cursor.Row = 0
	}
	if v.Cursor.Col >= cols {
		v.Cursor.Col = cols - 1
	}
	if v.Cursor.Col < 0 {
		v.Cursor.Col = 0
	}
}

// MoveCursor shifts the cursor by (dr, dc), clamped to the frame bounds with
// no wraparound.
func (v *ViewState) MoveCursor(dr, dc int) {
	rows, cols := v.Frame.Shape()
	if rows == 0 || cols == 0 {
		return
	}
	v.Cursor.Row = clampInt(v.Cursor.Row+dr, 0, rows-1)
	v.Cursor.Col = clampInt(v.Cursor.Col+dc, 0, cols-1)
}

// JumpCursor places the cursor at an absolute cell, clamped to bounds.
func (v *ViewState) JumpCursor(row, col int) {
	rows, cols := v.Frame.Shape()
	if rows == 0 || cols == 0 {
		return
	}
	v.Cursor.Row = clampInt(row, 0, rows-1)
	v.Cursor.Col = clampInt(col, 0, cols-1)
}

// ToggleSelection flips selection mode. Toggling on pins the anchor at the
// cursor.
func (v *ViewState) ToggleSelection() {
	if v.Sel.Active {
		v.Sel.Active = false
		return
	}
	v.Sel.Active = true
	v.Sel.AnchorRow = v.Cursor.Row
	v.Sel.AnchorCol = v.Cursor.Col
}

// CollapseSelection turns selection mode off and shrinks the selection back
// to the single cursor cell.
func (v *ViewState) CollapseSelection() {
	v.Sel.Active = false
	v.Sel.Width = 1
	v.Sel.AnchorRow = v.Cursor.Row
	v.Sel.AnchorCol = v.Cursor.Col
}

// AdjustSelectionWidth grows or shrinks the forced column span, floored at
// one column and capped at the table's column count.
func (v *ViewState) AdjustSelectionWidth(delta int) {
	_, cols := v.Frame.Shape()
	max := cols
	if max < 1 {
		max = 1
	}
	v.Sel.Width = clampInt(v.Sel.Width+delta, 1, max)
}

// SelRect returns the effective selection rectangle as inclusive bounds.
// With selection mode off the rectangle is the cursor row; either way the
// column span is at least Sel.Width, growing rightward from the leftmost
// column and clipped at the table edge.
func (v *ViewState) SelRect() (r0, r1, c0, c1 int) {
	r0, r1 = v.Cursor.Row, v.Cursor.Row
	c0, c1 = v.Cursor.Col, v.Cursor.Col
	if v.Sel.Active {
		r0, r1 = minMax(v.Sel.AnchorRow, v.Cursor.Row)
		c0, c1 = minMax(v.Sel.AnchorCol, v.Cursor.Col)
	}
	if span := c1 - c0 + 1; span < v.Sel.Width {
		c1 = c0 + v.Sel.Width - 1
	}
	_, cols := v.Frame.Shape()
	if cols > 0 && c1 > cols-1 {
		c1 = cols - 1
	}
	return r0, r1, c0, c1
}

// SelectionFrame returns the effective selection as a frame window, the form
// the command engine binds to "_".
func (v *ViewState) SelectionFrame() frame.Frame {
	r0, r1, c0, c1 := v.SelRect()
	return frame.NewSection(v.Frame, r0, r1+1, c0, c1+1)
}

// InSelection reports whether a cell lies inside the effective selection.
func (v *ViewState) InSelection(row, col int) bool {
	r0, r1, c0, c1 := v.SelRect()
	return row >= r0 && row <= r1 && col >= c0 && col <= c1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
