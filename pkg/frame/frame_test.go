package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Mem {
	return NewStrings(
		[]string{"name", "age", "active"},
		[][]string{
			{"alice", "30", "true"},
			{"bob", "41", "false"},
			{"carol", "27.5", "true"},
		},
	)
}

func TestShapeAndLabels(t *testing.T) {
	m := sample()
	rows, cols := m.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, "age", m.ColumnLabel(1))
	assert.Equal(t, "", m.ColumnLabel(9))
	assert.Equal(t, "2", m.RowLabel(2))
}

func TestSetIndex(t *testing.T) {
	m := sample()
	m.SetIndex([]string{"r1"})
	assert.Equal(t, "r1", m.RowLabel(0))
	// short index falls back to ordinals
	assert.Equal(t, "1", m.RowLabel(1))
}

func TestTypedValues(t *testing.T) {
	m := sample()
	assert.Equal(t, int64(30), m.Value(0, 1))
	assert.Equal(t, 27.5, m.Value(2, 1))
	assert.Equal(t, true, m.Value(0, 2))
	assert.Equal(t, "alice", m.Value(0, 0))
	// out of range reads are defined, not panics
	assert.Equal(t, "", m.Value(-1, 0))
	assert.Equal(t, "", m.Value(0, 99))
}

func TestCellFormatting(t *testing.T) {
	m := sample()
	assert.Equal(t, "30", m.Cell(0, 1))
	assert.Equal(t, "27.5", m.Cell(2, 1))
	assert.Equal(t, "true", m.Cell(0, 2))
}

func TestCellsClamping(t *testing.T) {
	m := sample()
	grid := m.Cells(1, 10, 0, 2)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"bob", "41"}, grid[0])

	assert.Empty(t, m.Cells(5, 9, 0, 1))
	assert.Empty(t, m.Cells(2, 1, 0, 1))
}

func TestRaggedRowsPadded(t *testing.T) {
	m := NewStrings([]string{"a"}, [][]string{{"x", "y"}, {"z"}})
	rows, cols := m.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, "y", m.Cell(0, 1))
	assert.Equal(t, "", m.Cell(1, 1))
	assert.Equal(t, "", m.ColumnLabel(1))
}

func TestScalar(t *testing.T) {
	s := Scalar(int64(42))
	rows, cols := s.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)
	assert.Equal(t, "value", s.ColumnLabel(0))
	assert.Equal(t, "42", s.Cell(0, 0))
}

func TestInfer(t *testing.T) {
	assert.Equal(t, int64(7), Infer("7"))
	assert.Equal(t, -1.5, Infer("-1.5"))
	assert.Equal(t, true, Infer("true"))
	assert.Equal(t, "7up", Infer("7up"))
	assert.Equal(t, "", Infer(""))
}

func TestSectionWindow(t *testing.T) {
	m := sample()
	s := NewSection(m, 1, 3, 1, 3)
	rows, cols := s.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, "age", s.ColumnLabel(0))
	assert.Equal(t, "1", s.RowLabel(0))
	assert.Equal(t, "41", s.Cell(0, 0))
	assert.Equal(t, false, s.Value(0, 1))

	grid := s.Cells(0, 2, 0, 2)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"27.5", "true"}, grid[1])
}

func TestSectionClampsToParent(t *testing.T) {
	m := sample()
	s := NewSection(m, 2, 99, 0, 99)
	rows, cols := s.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, "", s.Cell(5, 0))
}
