package corrmap

import (
	"errors"
	"testing"

	"github.com/etnz/corrmap/date"
	"github.com/stretchr/testify/assert"
)

func TestParseSymbol(t *testing.T) {
	testCases := []struct {
		in   string
		want Symbol
	}{
		{"nvda", "NVDA"},
		{"  btc-usd\n", "BTC-USD"},
		{"SHy", "SHY"},
		{"   ", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ParseSymbol(tc.in), "ParseSymbol(%q)", tc.in)
	}
}

func TestUniverse_Validate(t *testing.T) {
	r := date.Range{From: date.New(2022, 1, 1), To: date.New(2023, 12, 31)}
	testCases := []struct {
		name    string
		in      Universe
		wantErr bool
	}{
		{"valid", Universe{Range: r, Sectors: []Sector{{"X", []Symbol{"A", "B"}}, {"Y", []Symbol{"C"}}}}, false},
		{"empty", Universe{Range: r}, true},
		{"empty sectors", Universe{Range: r, Sectors: []Sector{{"X", nil}}}, true},
		{"shared symbol", Universe{Range: r, Sectors: []Sector{{"X", []Symbol{"A"}}, {"Y", []Symbol{"A"}}}}, true},
		{"duplicate sector", Universe{Range: r, Sectors: []Sector{{"X", []Symbol{"A"}}, {"X", []Symbol{"B"}}}}, true},
		{"no range", Universe{Sectors: []Sector{{"X", []Symbol{"A"}}}}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			assert.Equal(t, tc.wantErr, err != nil, "Validate() = %v", err)
		})
	}
	assert.True(t, errors.Is(Universe{Range: r}.Validate(), ErrEmptyUniverse))
}

func TestUniverse_Symbols(t *testing.T) {
	u := Universe{Sectors: []Sector{{"X", []Symbol{"A", "B"}}, {"Y", []Symbol{"C"}}}}
	assert.Equal(t, []Symbol{"A", "B", "C"}, u.Symbols())
	s, ok := u.SectorOf("C")
	assert.True(t, ok)
	assert.Equal(t, "Y", s)
	_, ok = u.SectorOf("Z")
	assert.False(t, ok)
}
