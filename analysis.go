package corrmap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Analysis holds every table computed in one run, from the fetched prices
// down to the correlation matrices. It is recomputed from scratch each time.
type Analysis struct {
	Universe      Universe
	Prices        *PriceTable
	Returns       *Table
	SectorReturns *Table
	Assets        *Matrix // asset level correlations, in universe order
	Sectors       *Matrix // sector level correlations, in universe order
	Clusters      *Dendrogram
}

// Analyze fetches the prices of the universe from src, then computes the
// returns, the sector returns, both correlation matrices and the clustering
// of the assets.
//
// The fetch is the only blocking operation and its failure the only error.
func Analyze(ctx context.Context, src Source, u Universe) (*Analysis, error) {
	log := zerolog.Ctx(ctx)
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("invalid universe: %w", err)
	}

	symbols := u.Symbols()
	prices, err := src.Prices(ctx, symbols, u.Range)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch prices: %w", err)
	}
	for _, s := range symbols {
		if _, ok := prices.Lookup(s); !ok {
			log.Debug().Str("symbol", s.String()).Msg("no price data, symbol excluded")
		}
	}

	a := &Analysis{Universe: u, Prices: prices}
	a.Returns = Returns(prices)
	a.SectorReturns = SectorReturns(a.Returns, u)
	log.Debug().
		Int("assets", len(a.Returns.Columns)).
		Int("sectors", len(a.SectorReturns.Columns)).
		Int("dates", a.Returns.Len()).
		Msg("returns computed")

	a.Assets = Correlate(a.Returns)
	a.Sectors = Correlate(a.SectorReturns)
	a.Clusters = Ward(a.Assets)
	return a, nil
}

// Available returns the symbols that made it into the return table.
func (a *Analysis) Available() []Symbol {
	symbols := make([]Symbol, 0, len(a.Returns.Columns))
	for _, c := range a.Returns.Columns {
		symbols = append(symbols, Symbol(c))
	}
	return symbols
}

// Drivers returns the DefaultDrivers most and least correlated symbols of target.
func (a *Analysis) Drivers(target Symbol) (DriverList, error) {
	return Drivers(a.Assets, target, DefaultDrivers)
}

// Highlights returns the extreme sector pairs.
func (a *Analysis) Highlights() (SectorHighlights, error) {
	return Highlights(a.Sectors)
}
