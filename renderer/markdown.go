package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/corrmap"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// coefficient formats a correlation coefficient.
func coefficient(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

// writeTable appends t to doc with headers and cells written as is, so that
// sector names keep their case and long symbol lists stay on one line.
func writeTable(doc *md.Markdown, t md.TableSet) {
	doc.CustomTable(t, md.TableOptions{AutoWrapText: false, AutoFormatHeaders: false})
}

// SectorMatrixMarkdown renders a correlation matrix as a markdown table.
func SectorMatrixMarkdown(m *corrmap.Matrix) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Sector vs. Sector Correlation Matrix")
	if m.Len() == 0 {
		doc.PlainText("No sector could be computed.")
		return doc.String()
	}

	table := md.TableSet{
		Header: append([]string{"Sector"}, m.Labels()...),
		Rows:   [][]string{},
	}
	for i := 0; i < m.Len(); i++ {
		row := []string{m.Label(i)}
		for j := 0; j < m.Len(); j++ {
			row = append(row, coefficient(m.At(i, j)))
		}
		table.Rows = append(table.Rows, row)
	}
	writeTable(doc, table)
	return doc.String()
}

// DriversMarkdown renders the drivers of a symbol.
func DriversMarkdown(d corrmap.DriverList, period string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(fmt.Sprintf("Top Correlation Drivers for %s (%s)", d.Target, period))

	section := func(title string, drivers []corrmap.Driver) {
		doc.H3(title)
		table := md.TableSet{
			Header: []string{"#", "Symbol", "Correlation"},
			Rows:   [][]string{},
		}
		for i, dr := range drivers {
			table.Rows = append(table.Rows, []string{fmt.Sprint(i + 1), dr.Symbol.String(), coefficient(dr.Correlation)})
		}
		writeTable(doc, table)
	}
	section("Most Correlated", d.Top)
	section("Least Correlated", d.Bottom)
	return doc.String()
}

// UniverseMarkdown lists the sectors of u. When prices is not nil, the
// first and last adjusted close of every symbol are listed too.
func UniverseMarkdown(u corrmap.Universe, prices *corrmap.PriceTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Asset Universe (%s)", u.Range.Label()))
	doc.PlainText(fmt.Sprintf("%d sectors, %d symbols, from %s to %s.", len(u.Sectors), len(u.Symbols()), u.Range.From, u.Range.To))

	table := md.TableSet{
		Header: []string{"Sector", "Count", "Symbols"},
		Rows:   [][]string{},
	}
	for _, s := range u.Sectors {
		symbols := make([]string, len(s.Symbols))
		for i, sym := range s.Symbols {
			symbols[i] = sym.String()
		}
		table.Rows = append(table.Rows, []string{s.Name, fmt.Sprint(len(s.Symbols)), strings.Join(symbols, ", ")})
	}
	writeTable(doc, table)

	if prices == nil {
		return doc.String()
	}
	doc.H2("Prices")
	table = md.TableSet{
		Header: []string{"Symbol", "Sector", "Days", "First", "Last", "Change"},
		Rows:   [][]string{},
	}
	for _, sym := range u.Symbols() {
		sector, _ := u.SectorOf(sym)
		h, ok := prices.Lookup(sym)
		if !ok || h.Len() == 0 {
			table.Rows = append(table.Rows, []string{sym.String(), sector, "0", "-", "-", "-"})
			continue
		}
		_, first := h.First()
		_, last := h.Latest()
		change := "-"
		if first != 0 {
			change = fmt.Sprintf("%+.2f%%", (last-first)/first*100)
		}
		table.Rows = append(table.Rows, []string{sym.String(), sector, fmt.Sprint(h.Len()), usd(first), usd(last), change})
	}
	writeTable(doc, table)
	return doc.String()
}

// usd formats an amount of US dollars.
func usd(v float64) string {
	cur := *money.New(0, money.USD).Currency()
	dec := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}
