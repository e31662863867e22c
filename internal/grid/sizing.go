// Package grid holds the pure display-geometry state of a view: per-column
// widths and the mapping of the logical table onto the terminal character
// grid. Nothing here touches cell data or the terminal; the ui package feeds
// it sizes and reads back scroll positions and column slots.
package grid

const (
	// DefaultColWidth is the initial display width of every data column.
	DefaultColWidth = 10
	// DefaultIndexWidth is the initial width of the frozen index column.
	DefaultIndexWidth = 8
	// MinColWidth is the floor for data column widths.
	MinColWidth = 1
	// MinIndexWidth keeps the index column wide enough for the truncation
	// marker.
	MinIndexWidth = 2
	// MaxColWidth caps any single column so it cannot swallow the screen on
	// typical terminals.
	MaxColWidth = 120
)

// Sizing owns the column width state of one view. All mutation goes through
// its clamped adjust methods; no other component writes widths.
type Sizing struct {
	widths     []int
	indexWidth int
}

// NewSizing returns defaults-sized widths for a table with cols columns.
func NewSizing(cols int) *Sizing {
	widths := make([]int, cols)
	for i := range widths {
		widths[i] = DefaultColWidth
	}
	return &Sizing{widths: widths, indexWidth: DefaultIndexWidth}
}

// Width returns the display width of column c, MinColWidth for out-of-range
// columns so render math stays total.
func (s *Sizing) Width(c int) int {
	if c < 0 || c >= len(s.widths) {
		return MinColWidth
	}
	return s.widths[c]
}

// IndexWidth returns the current index column width.
func (s *Sizing) IndexWidth() int {
	return s.indexWidth
}

// Cols returns the number of sized columns.
func (s *Sizing) Cols() int {
	return len(s.widths)
}

// AdjustAll shifts every data column width by delta, clamping each to
// [MinColWidth, MaxColWidth].
func (s *Sizing) AdjustAll(delta int) {
	for i := range s.widths {
		s.widths[i] = clamp(s.widths[i]+delta, MinColWidth, MaxColWidth)
	}
}

// AdjustIndex shifts the index column width by delta, clamped to
// [MinIndexWidth, MaxColWidth].
func (s *Sizing) AdjustIndex(delta int) {
	s.indexWidth = clamp(s.indexWidth+delta, MinIndexWidth, MaxColWidth)
}

// Clone returns an independent copy, used when a view snapshot is pushed on
// the view stack.
func (s *Sizing) Clone() *Sizing {
	widths := make([]int, len(s.widths))
	copy(widths, s.widths)
	return &Sizing{widths: widths, indexWidth: s.indexWidth}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
