package corrmap

import (
	"context"

	"github.com/etnz/corrmap/date"
)

// Source is a market data provider.
//
// Prices returns the adjusted close prices of the requested symbols over
// the range r. Symbols the provider has no data for are simply absent from
// the returned table; only a failure of the provider itself is an error.
type Source interface {
	Prices(ctx context.Context, symbols []Symbol, r date.Range) (*PriceTable, error)
}

// StaticSource is an in-memory Source, mostly useful in tests and for
// replaying previously fetched data.
type StaticSource map[Symbol]*date.History[float64]

// Prices implements Source.
func (s StaticSource) Prices(_ context.Context, symbols []Symbol, r date.Range) (*PriceTable, error) {
	p := NewPriceTable()
	for _, sym := range symbols {
		h, ok := s[sym]
		if !ok {
			continue
		}
		if within := h.Within(r); within.Len() > 0 {
			p.Set(sym, within)
		}
	}
	return p, nil
}
