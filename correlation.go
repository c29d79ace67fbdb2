package corrmap

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Matrix is a labelled, square and symmetric correlation matrix with a unit
// diagonal. Undefined coefficients (constant or too short series) are NaN.
type Matrix struct {
	labels []string
	sym    *mat.SymDense // nil when empty
}

// Correlate computes the Pearson correlation matrix of the columns of t.
//
// Each coefficient is computed once, over the dates common to both columns
// (see Table.Pair), and stored in a symmetric matrix so that
// At(i, j) == At(j, i) by construction.
func Correlate(t *Table) *Matrix {
	n := len(t.Columns)
	m := &Matrix{labels: slices.Clone(t.Columns)}
	if n == 0 {
		return m
	}
	m.sym = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		m.sym.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			x, y := t.Pair(i, j)
			m.sym.SetSym(i, j, pearson(x, y))
		}
	}
	return m
}

// pearson returns the Pearson correlation coefficient of x and y, or NaN when
// it is undefined.
func pearson(x, y []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	c := stat.Correlation(x, y, nil)
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return math.NaN()
	}
	// rounding can push perfectly (anti)correlated series slightly out of range
	return math.Max(-1, math.Min(1, c))
}

// Len returns the number of rows (and columns).
func (m *Matrix) Len() int { return len(m.labels) }

// Labels returns the row (and column) labels.
func (m *Matrix) Labels() []string { return slices.Clone(m.labels) }

// Label returns the label of row i.
func (m *Matrix) Label(i int) string { return m.labels[i] }

// Index returns the position of label, or -1.
func (m *Matrix) Index(label string) int { return slices.Index(m.labels, label) }

// At returns the coefficient at row i and column j.
func (m *Matrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Get returns the coefficient between two labels.
func (m *Matrix) Get(a, b string) (float64, bool) {
	i, j := m.Index(a), m.Index(b)
	if i < 0 || j < 0 {
		return math.NaN(), false
	}
	return m.At(i, j), true
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.Len())
	for j := range row {
		row[j] = m.At(i, j)
	}
	return row
}

// Reorder returns a new matrix whose row k is row order[k] of m.
func (m *Matrix) Reorder(order []int) *Matrix {
	r := &Matrix{labels: make([]string, len(order))}
	if len(order) == 0 {
		return r
	}
	r.sym = mat.NewSymDense(len(order), nil)
	for i, oi := range order {
		r.labels[i] = m.labels[oi]
		for j := i; j < len(order); j++ {
			r.sym.SetSym(i, j, m.At(oi, order[j]))
		}
	}
	return r
}
