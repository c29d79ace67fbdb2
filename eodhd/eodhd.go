// Package eodhd fetches daily adjusted close prices from the EODHD
// (eodhd.com) end of day API.
package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/etnz/corrmap"
	"github.com/etnz/corrmap/date"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the EODHD API root.
const DefaultBaseURL = "https://eodhd.com"

// APIKeyEnv is the environment variable read when no key is configured.
const APIKeyEnv = "EODHD_API_KEY"

// ErrNoAPIKey is returned by New when no API key could be found.
var ErrNoAPIKey = errors.New("eodhd API key is missing, use -eodhd-api-key or " + APIKeyEnv)

// Client is a corrmap.Source backed by EODHD.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient sets the http client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New returns an EODHD client. An empty apiKey falls back to the APIKeyEnv
// environment variable.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	c := &Client{apiKey: apiKey, baseURL: DefaultBaseURL, httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Ticker returns the EODHD ticker of a symbol: crypto pairs like "BTC-USD"
// trade on the "CC" virtual exchange, everything else on "US".
func Ticker(sym corrmap.Symbol) string {
	s := sym.String()
	if strings.HasSuffix(s, "-USD") {
		return s + ".CC"
	}
	return s + ".US"
}

// Prices implements corrmap.Source.
//
// Tickers EODHD does not know are left out of the table.
func (c *Client) Prices(ctx context.Context, symbols []corrmap.Symbol, r date.Range) (*corrmap.PriceTable, error) {
	log := zerolog.Ctx(ctx)
	p := corrmap.NewPriceTable()
	for _, sym := range symbols {
		ticker := Ticker(sym)
		h, err := c.fetchPrices(ctx, ticker, r)
		if errors.Is(err, errUnknownTicker) {
			log.Debug().Str("symbol", sym.String()).Str("ticker", ticker).Msg("symbol skipped")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cannot fetch %s: %w", ticker, err)
		}
		if h.Len() > 0 {
			p.Set(sym, h)
		}
	}
	return p, nil
}
