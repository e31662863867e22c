// Package frame defines the tabular data contract the viewer core consumes:
// a read-only grid of typed cells with labeled columns and an optional row
// index. Everything above this package treats the data as opaque; parsing
// and evaluation capabilities live in pkg/loader and internal/eval.
package frame

import (
	"fmt"
	"strconv"
)

// Frame is a two-dimensional read-only table. Implementations must be safe
// for repeated reads; the core never mutates a Frame, it only replaces one
// with another (e.g. when a command pushes a derived view).
type Frame interface {
	// Shape returns the logical row and column counts.
	Shape() (rows, cols int)
	// ColumnLabel returns the label of column c. c must be in [0, cols).
	ColumnLabel(c int) string
	// RowLabel returns the label of row r, the ordinal when the frame has
	// no index. r must be in [0, rows).
	RowLabel(r int) string
	// Cell returns the display text of the cell at (r, c).
	Cell(r, c int) string
	// Value returns the typed value of the cell at (r, c): int64, float64,
	// bool, or string.
	Value(r, c int) any
	// Cells returns the rectangle [r0, r1) × [c0, c1) of display text,
	// clamped to the frame's shape. Out-of-range rectangles yield an empty
	// grid, never a panic.
	Cells(r0, r1, c0, c1 int) [][]string
}

// Mem is the in-memory Frame used for loaded files and command results.
type Mem struct {
	columns []string
	index   []string // nil means ordinal labels
	values  [][]any  // row-major, one inner slice per row
}

// New builds a Mem from column labels and typed row values. Ragged rows are
// padded with empty strings; extra cells beyond the column count are kept
// reachable by widening the column set with empty labels.
func New(columns []string, rows [][]any) *Mem {
	width := len(columns)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	cols := make([]string, width)
	copy(cols, columns)
	for i := len(columns); i < width; i++ {
		cols[i] = ""
	}
	vals := make([][]any, len(rows))
	for i, row := range rows {
		padded := make([]any, width)
		for j := range padded {
			if j < len(row) {
				padded[j] = row[j]
			} else {
				padded[j] = ""
			}
		}
		vals[i] = padded
	}
	return &Mem{columns: cols, values: vals}
}

// NewStrings builds a Mem from raw string cells, inferring int64, float64,
// and bool values per cell. Loaders use this so expressions can compare
// numeric columns without explicit casts.
func NewStrings(columns []string, rows [][]string) *Mem {
	vals := make([][]any, len(rows))
	for i, row := range rows {
		typed := make([]any, len(row))
		for j, cell := range row {
			typed[j] = Infer(cell)
		}
		vals[i] = typed
	}
	return New(columns, vals)
}

// Scalar wraps a single value as a degenerate 1×1 frame, the presentation
// form for scalar command results.
func Scalar(v any) *Mem {
	return New([]string{"value"}, [][]any{{v}})
}

// SetIndex attaches row labels. A nil or short index falls back to ordinals
// for the missing rows.
func (m *Mem) SetIndex(labels []string) {
	m.index = labels
}

func (m *Mem) Shape() (int, int) {
	return len(m.values), len(m.columns)
}

func (m *Mem) ColumnLabel(c int) string {
	if c < 0 || c >= len(m.columns) {
		return ""
	}
	return m.columns[c]
}

func (m *Mem) RowLabel(r int) string {
	if r < 0 || r >= len(m.values) {
		return ""
	}
	if r < len(m.index) {
		return m.index[r]
	}
	return strconv.Itoa(r)
}

func (m *Mem) Cell(r, c int) string {
	return Stringify(m.Value(r, c))
}

func (m *Mem) Value(r, c int) any {
	if r < 0 || r >= len(m.values) {
		return ""
	}
	row := m.values[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}

func (m *Mem) Cells(r0, r1, c0, c1 int) [][]string {
	rows, cols := m.Shape()
	r0, r1 = clampRange(r0, r1, rows)
	c0, c1 = clampRange(c0, c1, cols)
	out := make([][]string, 0, r1-r0)
	for r := r0; r < r1; r++ {
		line := make([]string, 0, c1-c0)
		for c := c0; c < c1; c++ {
			line = append(line, m.Cell(r, c))
		}
		out = append(out, line)
	}
	return out
}

func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Infer converts a raw cell string to its typed value. Integers, floats and
// booleans parse to their Go types; everything else stays a string.
func Infer(cell string) any {
	if cell == "" {
		return ""
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	if cell == "true" || cell == "false" {
		return cell == "true"
	}
	return cell
}

// Stringify renders a typed cell value for display.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
