package corrmap

// Returns computes the daily fractional change of every price column:
//
//	r[t] = (p[t] - p[t-1]) / p[t-1]
//
// where t-1 is the previous date of the table calendar (the union of all
// the columns dates). Nothing is interpolated: a missing current or previous
// price leaves the return undefined.
//
// Every date with at least one undefined return, in any column, is dropped
// from the result. The first date is therefore always dropped, and a single
// poorly covered column shrinks the sample of all the others.
//
// Columns with fewer than two prices cannot produce any return and are
// excluded before the row policy is applied.
func Returns(p *PriceTable) *Table {
	t := &Table{}
	var columns []Symbol
	for _, s := range p.Symbols() {
		if h, _ := p.Lookup(s); h.Len() >= 2 {
			columns = append(columns, s)
			t.Columns = append(t.Columns, string(s))
		}
	}
	if len(columns) == 0 {
		return t
	}

	calendar := p.Calendar()
	for k := 1; k < len(calendar); k++ {
		prev, on := calendar[k-1], calendar[k]
		row := make([]float64, len(columns))
		complete := true
		for j, s := range columns {
			h, _ := p.Lookup(s)
			before, okb := h.Get(prev)
			now, okn := h.Get(on)
			if !okb || !okn || before == 0 {
				complete = false
				break
			}
			row[j] = (now - before) / before
		}
		if !complete {
			continue
		}
		t.Dates = append(t.Dates, on)
		t.Rows = append(t.Rows, row)
	}
	return t
}
