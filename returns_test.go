package corrmap

import (
	"testing"

	"github.com/etnz/corrmap/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturns_ConstantPrice(t *testing.T) {
	p := table(map[Symbol]*date.History[float64]{
		"A": series(42, 42, 42, 42, 42),
	}, "A")

	r := Returns(p)
	require.Equal(t, []string{"A"}, r.Columns)
	require.Equal(t, 4, r.Len())
	for i, row := range r.Rows {
		assert.Exactly(t, 0.0, row[0], "row %d", i)
	}
}

func TestReturns_Values(t *testing.T) {
	p := table(map[Symbol]*date.History[float64]{
		"A": series(100, 110, 99),
		"B": series(10, 5, 10),
	}, "A", "B")

	r := Returns(p)
	// the first date never has a previous price
	require.Equal(t, []date.Date{day0.Add(1), day0.Add(2)}, r.Dates)
	assert.InDelta(t, 0.1, r.Rows[0][0], 1e-12)
	assert.InDelta(t, -0.1, r.Rows[1][0], 1e-12)
	assert.InDelta(t, -0.5, r.Rows[0][1], 1e-12)
	assert.InDelta(t, 1.0, r.Rows[1][1], 1e-12)
}

func TestReturns_RowDropIsGlobal(t *testing.T) {
	// B has no price on day 2: both the return on day 2 (no current price)
	// and on day 3 (no previous price) are undefined, for the whole table.
	b := series(10, 11, 12, 13, 14)
	b2 := new(date.History[float64])
	for on, v := range b.Values() {
		if on != day0.Add(2) {
			b2.Append(on, v)
		}
	}
	p := table(map[Symbol]*date.History[float64]{
		"A": series(1, 2, 3, 4, 5),
		"B": b2,
	}, "A", "B")

	r := Returns(p)
	assert.Equal(t, []date.Date{day0.Add(1), day0.Add(4)}, r.Dates)
	assert.Equal(t, []string{"A", "B"}, r.Columns)
}

func TestReturns_InsufficientHistory(t *testing.T) {
	testCases := []struct {
		name    string
		prices  *PriceTable
		columns []string
		rows    int
	}{
		{
			name:   "empty table",
			prices: NewPriceTable(),
		},
		{
			name:    "single date",
			prices:  table(map[Symbol]*date.History[float64]{"A": series(1), "B": series(2)}, "A", "B"),
			columns: nil,
			rows:    0,
		},
		{
			name:    "short column is excluded",
			prices:  table(map[Symbol]*date.History[float64]{"A": series(1, 2, 3), "B": series(2)}, "A", "B"),
			columns: []string{"A"},
			rows:    2,
		},
		{
			name:    "empty column is excluded",
			prices:  table(map[Symbol]*date.History[float64]{"A": series(1, 2, 3), "B": series()}, "A", "B"),
			columns: []string{"A"},
			rows:    2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := Returns(tc.prices)
			assert.Equal(t, tc.columns, r.Columns)
			assert.Equal(t, tc.rows, r.Len())
		})
	}
}

func TestReturns_ZeroPriceIsUndefined(t *testing.T) {
	p := table(map[Symbol]*date.History[float64]{"A": series(1, 0, 1, 2)}, "A")
	r := Returns(p)
	// day 1 is (0-1)/1 = -1, day 2 divides by zero and is dropped
	require.Equal(t, []date.Date{day0.Add(1), day0.Add(3)}, r.Dates)
	assert.InDelta(t, -1.0, r.Rows[0][0], 1e-12)
}
