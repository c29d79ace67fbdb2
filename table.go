package corrmap

import (
	"math"
	"slices"

	"github.com/etnz/corrmap/date"
)

// PriceTable holds one adjusted close price series per symbol.
//
// Not every symbol needs a price on every date, and a requested symbol
// may be missing altogether.
type PriceTable struct {
	symbols []Symbol
	series  map[Symbol]*date.History[float64]
}

// NewPriceTable returns an empty PriceTable.
func NewPriceTable() *PriceTable {
	return &PriceTable{series: make(map[Symbol]*date.History[float64])}
}

// Set replaces the whole price history of s.
func (p *PriceTable) Set(s Symbol, h *date.History[float64]) {
	if _, ok := p.series[s]; !ok {
		p.symbols = append(p.symbols, s)
	}
	p.series[s] = h
}

// Lookup returns the price history of s if the table has that column.
func (p *PriceTable) Lookup(s Symbol) (*date.History[float64], bool) {
	h, ok := p.series[s]
	return h, ok
}

// Symbols returns the columns of the table in insertion order.
func (p *PriceTable) Symbols() []Symbol { return slices.Clone(p.symbols) }

// Calendar returns the sorted union of all dates with at least one price.
func (p *PriceTable) Calendar() []date.Date {
	histories := make([]*date.History[float64], 0, len(p.symbols))
	for _, s := range p.symbols {
		histories = append(histories, p.series[s])
	}
	return date.Union(histories...)
}

// Table is a dense table of real values indexed by date (rows) and by
// label (columns). It represents both the Return Table (labels are
// symbols) and the Sector Return Table (labels are sector names).
//
// A missing value is stored as NaN.
type Table struct {
	Dates   []date.Date
	Columns []string
	Rows    [][]float64
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of a column, or -1.
func (t *Table) Index(label string) int { return slices.Index(t.Columns, label) }

// column returns a copy of the values of column j.
func (t *Table) column(j int) []float64 {
	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[j]
	}
	return values
}

// Pair returns the values of columns i and j restricted to their common
// dates: the rows where both values are defined (finite).
func (t *Table) Pair(i, j int) (x, y []float64) {
	for _, row := range t.Rows {
		a, b := row[i], row[j]
		if !defined(a) || !defined(b) {
			continue
		}
		x, y = append(x, a), append(y, b)
	}
	return x, y
}

func defined(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
