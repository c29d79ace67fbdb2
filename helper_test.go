package corrmap

import (
	"github.com/etnz/corrmap/date"
)

// day0 is the first date of the test series.
var day0 = date.New(2024, 1, 1)

// series returns a price history with one price per consecutive day from day0.
func series(prices ...float64) *date.History[float64] {
	h := new(date.History[float64])
	for i, p := range prices {
		h.Append(day0.Add(i), p)
	}
	return h
}

// table returns a price table with the given columns.
func table(columns map[Symbol]*date.History[float64], order ...Symbol) *PriceTable {
	p := NewPriceTable()
	for _, s := range order {
		p.Set(s, columns[s])
	}
	return p
}

// returnsOf builds a return table directly from its columns.
func returnsOf(columns []string, values ...[]float64) *Table {
	t := &Table{Columns: columns}
	for i := range values[0] {
		row := make([]float64, len(values))
		for j := range values {
			row[j] = values[j][i]
		}
		t.Dates = append(t.Dates, day0.Add(i))
		t.Rows = append(t.Rows, row)
	}
	return t
}
