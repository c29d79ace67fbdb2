package corrmap

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrSymbolNotFound is returned when a symbol is not part of the analysed data.
var ErrSymbolNotFound = errors.New("symbol not found")

// DefaultDrivers is the number of drivers reported at each end.
const DefaultDrivers = 10

// Driver is a symbol and its correlation with a target symbol.
type Driver struct {
	Symbol      Symbol
	Correlation float64
}

// DriverList holds the most positively (Top, descending) and most negatively
// (Bottom, ascending) correlated symbols of a target.
//
// With fewer than twice the requested count of symbols, both lists overlap.
type DriverList struct {
	Target Symbol
	Top    []Driver
	Bottom []Driver
}

// Combined returns Top followed by Bottom, the whole in descending order.
func (d DriverList) Combined() []Driver {
	out := slices.Clone(d.Top)
	for i := len(d.Bottom) - 1; i >= 0; i-- {
		out = append(out, d.Bottom[i])
	}
	return out
}

// Drivers ranks every other symbol of m by its correlation with target and
// keeps the n highest and the n lowest. Undefined coefficients are skipped.
func Drivers(m *Matrix, target Symbol, n int) (DriverList, error) {
	t := m.Index(string(target))
	if t < 0 {
		return DriverList{}, fmt.Errorf("%w: %s", ErrSymbolNotFound, target)
	}

	ranked := make([]Driver, 0, m.Len())
	for j := 0; j < m.Len(); j++ {
		if j == t {
			continue
		}
		c := m.At(t, j)
		if math.IsNaN(c) {
			continue
		}
		ranked = append(ranked, Driver{Symbol(m.Label(j)), c})
	}
	slices.SortStableFunc(ranked, func(a, b Driver) int {
		switch {
		case a.Correlation > b.Correlation:
			return -1
		case a.Correlation < b.Correlation:
			return 1
		}
		return 0
	})

	list := DriverList{Target: target}
	list.Top = slices.Clone(ranked[:min(n, len(ranked))])
	for i := len(ranked) - 1; i >= max(0, len(ranked)-n); i-- {
		list.Bottom = append(list.Bottom, ranked[i])
	}
	return list, nil
}
