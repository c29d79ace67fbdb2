package corrmap

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// SectorReturns averages the return columns of each sector of the universe.
//
// For each sector, only the members present in r are used; the sector value
// at a date is the arithmetic mean of those members at that date. A sector
// with no member in r is omitted. Columns follow the universe sector order.
func SectorReturns(r *Table, u Universe) *Table {
	t := &Table{Dates: slices.Clone(r.Dates), Rows: make([][]float64, len(r.Rows))}

	var members [][]int
	for _, sector := range u.Sectors {
		var idx []int
		for _, s := range sector.Symbols {
			if j := r.Index(string(s)); j >= 0 {
				idx = append(idx, j)
			}
		}
		if len(idx) == 0 {
			continue
		}
		t.Columns = append(t.Columns, sector.Name)
		members = append(members, idx)
	}

	for i, row := range r.Rows {
		out := make([]float64, len(members))
		for k, idx := range members {
			values := make([]float64, len(idx))
			for n, j := range idx {
				values[n] = row[j]
			}
			out[k] = stat.Mean(values, nil)
		}
		t.Rows[i] = out
	}
	return t
}
