package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizingDefaults(t *testing.T) {
	s := NewSizing(3)
	assert.Equal(t, 3, s.Cols())
	assert.Equal(t, DefaultColWidth, s.Width(0))
	assert.Equal(t, DefaultIndexWidth, s.IndexWidth())
	assert.Equal(t, MinColWidth, s.Width(99))
}

func TestSizingAdjustAllClamps(t *testing.T) {
	s := NewSizing(2)
	s.AdjustAll(-100)
	assert.Equal(t, MinColWidth, s.Width(0))
	assert.Equal(t, MinColWidth, s.Width(1))

	s.AdjustAll(1000)
	assert.Equal(t, MaxColWidth, s.Width(0))
}

func TestSizingAdjustIndexClamps(t *testing.T) {
	s := NewSizing(1)
	s.AdjustIndex(-100)
	assert.Equal(t, MinIndexWidth, s.IndexWidth())
	s.AdjustIndex(1000)
	assert.Equal(t, MaxColWidth, s.IndexWidth())
}

func TestSizingCloneIsIndependent(t *testing.T) {
	s := NewSizing(2)
	c := s.Clone()
	c.AdjustAll(5)
	assert.Equal(t, DefaultColWidth, s.Width(0))
	assert.Equal(t, DefaultColWidth+5, c.Width(0))
}

func TestEnsureRowVisibleNoScrollWhenInside(t *testing.T) {
	v := Viewport{Top: 3}
	v.EnsureRowVisible(5, 10, 100)
	assert.Equal(t, 3, v.Top)
}

func TestEnsureRowVisibleScrollsToEdges(t *testing.T) {
	v := Viewport{Top: 10}
	v.EnsureRowVisible(4, 5, 100)
	assert.Equal(t, 4, v.Top)

	v.EnsureRowVisible(20, 5, 100)
	assert.Equal(t, 16, v.Top)
}

func TestEnsureRowVisibleEmptyTable(t *testing.T) {
	v := Viewport{Top: 7}
	v.EnsureRowVisible(0, 5, 0)
	assert.Equal(t, 0, v.Top)
}

func TestEnsureColVisibleLeftEdge(t *testing.T) {
	v := Viewport{Left: 4}
	v.EnsureColVisible(2, 40, NewSizing(10), 10)
	assert.Equal(t, 2, v.Left)
}

func TestEnsureColVisibleRightEdge(t *testing.T) {
	// widths all 10, budget 25 -> two full cols and change fit
	v := Viewport{Left: 0}
	v.EnsureColVisible(3, 25, NewSizing(10), 10)
	// cols 2..3 cost 20, cols 1..3 cost 30 > 25
	assert.Equal(t, 2, v.Left)
}

func TestEnsureColVisibleWideColumnShownAlone(t *testing.T) {
	s := NewSizing(5)
	s.AdjustAll(MaxColWidth) // everything at max width
	v := Viewport{Left: 0}
	v.EnsureColVisible(2, 30, s, 5)
	assert.Equal(t, 2, v.Left)
}

func TestVisibleColumnsClipsLast(t *testing.T) {
	v := Viewport{Left: 1}
	slots := v.VisibleColumns(25, NewSizing(10), 10)
	assert.Len(t, slots, 3)
	assert.Equal(t, ColumnSlot{Col: 1, Width: 10, X: 0}, slots[0])
	assert.Equal(t, ColumnSlot{Col: 2, Width: 10, X: 10}, slots[1])
	assert.Equal(t, ColumnSlot{Col: 3, Width: 5, X: 20}, slots[2])
}

func TestVisibleColumnsEmpty(t *testing.T) {
	v := Viewport{}
	assert.Nil(t, v.VisibleColumns(25, NewSizing(0), 0))
	assert.Nil(t, v.VisibleColumns(0, NewSizing(3), 3))
}

func TestVisibleRows(t *testing.T) {
	v := Viewport{Top: 8}
	lo, hi := v.VisibleRows(5, 10)
	assert.Equal(t, 8, lo)
	assert.Equal(t, 10, hi)

	lo, hi = v.VisibleRows(5, 0)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}
