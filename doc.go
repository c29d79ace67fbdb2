// Package corrmap computes the return correlations of a universe of assets
// grouped in sectors.
//
// The analysis is a single pass over freshly fetched data:
//   - Market Data: adjusted close prices are fetched once from a Source
//     (see the yahoo and eodhd packages) for every symbol of the Universe.
//   - Returns: daily fractional changes, keeping only the dates where every
//     symbol has a defined return.
//   - Sectors: one averaged return series per sector.
//   - Correlations: Pearson correlation matrices at asset and sector level,
//     and a Ward hierarchical clustering of the assets for display.
//   - Reports: correlation drivers of a chosen symbol and the extreme
//     sector pairs.
//
// Nothing is persisted, every run recomputes everything from scratch.
//
// This package serves as the foundational logic for the `cmap`
// command-line tool; rendering lives in the chart and renderer packages.
package corrmap
