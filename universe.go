package corrmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/corrmap/date"
)

// ErrEmptyUniverse is returned when a universe declares no symbol at all.
var ErrEmptyUniverse = errors.New("empty universe")

// Symbol identifies a tradable instrument, e.g. "NVDA" or "BTC-USD".
type Symbol string

// ParseSymbol normalizes user input into a Symbol: surrounding spaces are
// trimmed and letters are upper-cased.
func ParseSymbol(s string) Symbol { return Symbol(strings.ToUpper(strings.TrimSpace(s))) }

func (s Symbol) String() string { return string(s) }

// Sector is a named, ordered group of symbols.
type Sector struct {
	Name    string
	Symbols []Symbol
}

// Universe is the fixed set of assets analysed in one run, grouped by sector,
// and the date range their prices are fetched for.
type Universe struct {
	Sectors []Sector
	Range   date.Range
}

// Symbols returns all the symbols of the universe, in sector order.
func (u Universe) Symbols() []Symbol {
	var symbols []Symbol
	for _, s := range u.Sectors {
		symbols = append(symbols, s.Symbols...)
	}
	return symbols
}

// SectorOf returns the name of the sector s belongs to.
func (u Universe) SectorOf(s Symbol) (string, bool) {
	for _, sector := range u.Sectors {
		for _, m := range sector.Symbols {
			if m == s {
				return sector.Name, true
			}
		}
	}
	return "", false
}

// Validate checks that the universe is usable: at least one symbol, unique
// sector names, and every symbol in at most one sector.
func (u Universe) Validate() error {
	if len(u.Symbols()) == 0 {
		return ErrEmptyUniverse
	}
	if err := u.Range.Validate(); err != nil {
		return err
	}
	sectors := make(map[string]bool)
	owner := make(map[Symbol]string)
	for _, sector := range u.Sectors {
		if sector.Name == "" {
			return errors.New("sector with no name")
		}
		if sectors[sector.Name] {
			return fmt.Errorf("duplicate sector %q", sector.Name)
		}
		sectors[sector.Name] = true
		for _, s := range sector.Symbols {
			if s == "" {
				return fmt.Errorf("sector %q has an empty symbol", sector.Name)
			}
			if prev, ok := owner[s]; ok {
				return fmt.Errorf("symbol %s is declared in both %q and %q", s, prev, sector.Name)
			}
			owner[s] = sector.Name
		}
	}
	return nil
}
