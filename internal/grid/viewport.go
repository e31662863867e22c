package grid

// Viewport tracks the first visible row and column of a view. Scrolling is
// always minimal: a cursor motion scrolls exactly far enough to bring the
// cursor back to the nearest viewport edge and never past the table bounds.
type Viewport struct {
	Top  int
	Left int
}

// ColumnSlot describes one visible column: its logical index, the number of
// display cells it occupies (clipped at the right screen edge), and its x
// offset inside the data area.
type ColumnSlot struct {
	Col   int
	Width int
	X     int
}

// EnsureRowVisible scrolls Top minimally so cursorRow lies inside a window
// of rowsAvail rows, clamped to [0, rows).
func (v *Viewport) EnsureRowVisible(cursorRow, rowsAvail, rows int) {
	if rows <= 0 {
		v.Top = 0
		return
	}
	if rowsAvail <= 0 {
		v.Top = cursorRow
		return
	}
	if cursorRow < v.Top {
		v.Top = cursorRow
	} else if cursorRow >= v.Top+rowsAvail {
		v.Top = cursorRow - rowsAvail + 1
	}
	if v.Top > rows-1 {
		v.Top = rows - 1
	}
	if v.Top < 0 {
		v.Top = 0
	}
}

// EnsureColVisible scrolls Left minimally so the cursor column is fully
// visible inside budget display cells, column widths taken from s. A column
// wider than the whole budget is shown alone, clipped.
func (v *Viewport) EnsureColVisible(cursorCol, budget int, s *Sizing, cols int) {
	if cols <= 0 {
		v.Left = 0
		return
	}
	if cursorCol < v.Left {
		v.Left = cursorCol
	}
	if budget <= 0 {
		v.Left = cursorCol
		return
	}
	for v.Left < cursorCol {
		total := 0
		for c := v.Left; c <= cursorCol; c++ {
			total += s.Width(c)
		}
		if total <= budget {
			break
		}
		v.Left++
	}
	if v.Left > cols-1 {
		v.Left = cols - 1
	}
	if v.Left < 0 {
		v.Left = 0
	}
}

// VisibleColumns lists the columns drawn left to right from v.Left until the
// budget is spent. The last column is clipped to the remaining cells; the
// first column always gets at least one cell so a too-wide column still
// shows alone.
func (v *Viewport) VisibleColumns(budget int, s *Sizing, cols int) []ColumnSlot {
	if cols <= 0 || budget <= 0 {
		return nil
	}
	slots := make([]ColumnSlot, 0, 8)
	x := 0
	for c := v.Left; c < cols && x < budget; c++ {
		w := s.Width(c)
		if x+w > budget {
			w = budget - x
		}
		slots = append(slots, ColumnSlot{Col: c, Width: w, X: x})
		x += w
	}
	return slots
}

// VisibleRows returns the logical row range [top, top+count) clamped to the
// table, for a window of rowsAvail rows.
func (v *Viewport) VisibleRows(rowsAvail, rows int) (int, int) {
	if rows <= 0 || rowsAvail <= 0 {
		return 0, 0
	}
	end := v.Top + rowsAvail
	if end > rows {
		end = rows
	}
	return v.Top, end
}
