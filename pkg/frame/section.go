package frame

// Section is a rectangular window over a parent frame. The command engine
// binds the current selection as a Section so derived views never copy cell
// data out of the parent.
type Section struct {
	parent Frame
	r0, c0 int
	rows   int
	cols   int
}

// NewSection returns the [r0, r1) × [c0, c1) window of parent, clamped to
// the parent's shape.
func NewSection(parent Frame, r0, r1, c0, c1 int) *Section {
	pr, pc := parent.Shape()
	r0, r1 = clampRange(r0, r1, pr)
	c0, c1 = clampRange(c0, c1, pc)
	return &Section{parent: parent, r0: r0, c0: c0, rows: r1 - r0, cols: c1 - c0}
}

func (s *Section) Shape() (int, int) {
	return s.rows, s.cols
}

func (s *Section) ColumnLabel(c int) string {
	if c < 0 || c >= s.cols {
		return ""
	}
	return s.parent.ColumnLabel(s.c0 + c)
}

func (s *Section) RowLabel(r int) string {
	if r < 0 || r >= s.rows {
		return ""
	}
	return s.parent.RowLabel(s.r0 + r)
}

func (s *Section) Cell(r, c int) string {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return ""
	}
	return s.parent.Cell(s.r0+r, s.c0+c)
}

func (s *Section) Value(r, c int) any {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return ""
	}
	return s.parent.Value(s.r0+r, s.c0+c)
}

func (s *Section) Cells(r0, r1, c0, c1 int) [][]string {
	r0, r1 = clampRange(r0, r1, s.rows)
	c0, c1 = clampRange(c0, c1, s.cols)
	out := make([][]string, 0, r1-r0)
	for r := r0; r < r1; r++ {
		line := make([]string, 0, c1-c0)
		for c := c0; c < c1; c++ {
			line = append(line, s.Cell(r, c))
		}
		out = append(out, line)
	}
	return out
}
