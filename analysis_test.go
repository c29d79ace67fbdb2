package corrmap

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/corrmap/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testUniverse has a sector whose only member has no data.
func testUniverse() Universe {
	return Universe{
		Range: date.Range{From: day0, To: day0.Add(30)},
		Sectors: []Sector{
			{Name: "X", Symbols: []Symbol{"A", "B"}},
			{Name: "Y", Symbols: []Symbol{"Z"}},
			{Name: "W", Symbols: []Symbol{"C"}},
		},
	}
}

func testSource() StaticSource {
	return StaticSource{
		"A": series(100, 110, 99, 118.8, 120),
		"B": series(100, 110, 99, 118.8, 121),
		"C": series(100, 90, 99, 79.2, 78),
	}
}

func TestAnalyze(t *testing.T) {
	a, err := Analyze(context.Background(), testSource(), testUniverse())
	require.NoError(t, err)

	assert.Equal(t, []Symbol{"A", "B", "C"}, a.Available())
	assert.Equal(t, []string{"X", "W"}, a.SectorReturns.Columns)
	assert.Equal(t, 3, a.Assets.Len())
	assert.Equal(t, 2, a.Sectors.Len())
	assert.Len(t, a.Assets.Reorder(a.Clusters.Order()).Labels(), 3)

	ab, _ := a.Assets.Get("A", "B")
	ac, _ := a.Assets.Get("A", "C")
	assert.Greater(t, ab, 0.99)
	assert.Less(t, ac, -0.99)

	h, err := a.Highlights()
	require.NoError(t, err)
	assert.Equal(t, "X", h.Highest.A)
	assert.Equal(t, "W", h.Highest.B)

	d, err := a.Drivers("A")
	require.NoError(t, err)
	assert.Equal(t, Symbol("B"), d.Top[0].Symbol)
	assert.Equal(t, Symbol("C"), d.Bottom[0].Symbol)
}

func TestAnalyze_UnknownDriver(t *testing.T) {
	a, err := Analyze(context.Background(), testSource(), testUniverse())
	require.NoError(t, err)

	_, err = a.Drivers("Z")
	assert.True(t, errors.Is(err, ErrSymbolNotFound))

	// other outputs are unaffected
	_, err = a.Highlights()
	assert.NoError(t, err)
	assert.Equal(t, 3, a.Assets.Len())
}

type failingSource struct{}

func (failingSource) Prices(context.Context, []Symbol, date.Range) (*PriceTable, error) {
	return nil, errors.New("boom")
}

func TestAnalyze_FetchFailure(t *testing.T) {
	_, err := Analyze(context.Background(), failingSource{}, testUniverse())
	assert.Error(t, err)
}

func TestStaticSource_Range(t *testing.T) {
	src := testSource()
	p, err := src.Prices(context.Background(), []Symbol{"A", "Q"}, date.Range{From: day0.Add(1), To: day0.Add(2)})
	require.NoError(t, err)
	assert.Equal(t, []Symbol{"A"}, p.Symbols())
	h, _ := p.Lookup("A")
	assert.Equal(t, 2, h.Len())
}
