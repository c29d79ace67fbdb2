package corrmap

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoHighlights is returned when a matrix has no defined off-diagonal value.
var ErrNoHighlights = errors.New("no off-diagonal correlation")

// Highlight is one (row, column) pair of a correlation matrix and its value.
type Highlight struct {
	A, B  string
	Value float64
}

// String formats the highlight as "(A, B) (0.87)".
func (h Highlight) String() string {
	return fmt.Sprintf("(%s, %s) (%.2f)", h.A, h.B, h.Value)
}

// SectorHighlights are the extreme off-diagonal pairs of a sector matrix.
type SectorHighlights struct {
	Highest Highlight
	Lowest  Highlight
}

// Highlights finds the off-diagonal pairs of m with the maximum and the
// minimum correlation. The diagonal and undefined values are ignored.
//
// Cells are visited row by row in label order and the first extreme wins,
// so a symmetric pair is always reported as (row, column) with row < column.
func Highlights(m *Matrix) (SectorHighlights, error) {
	var h SectorHighlights
	found := false
	for i := 0; i < m.Len(); i++ {
		for j := 0; j < m.Len(); j++ {
			v := m.At(i, j)
			if i == j || math.IsNaN(v) {
				continue
			}
			cell := Highlight{m.Label(i), m.Label(j), v}
			if !found {
				h.Highest, h.Lowest, found = cell, cell, true
				continue
			}
			if v > h.Highest.Value {
				h.Highest = cell
			}
			if v < h.Lowest.Value {
				h.Lowest = cell
			}
		}
	}
	if !found {
		return h, ErrNoHighlights
	}
	return h, nil
}
