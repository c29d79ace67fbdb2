// Package yahoo fetches daily adjusted close prices from the Yahoo Finance
// chart API. It needs no API key.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/corrmap"
	"github.com/etnz/corrmap/date"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the public Yahoo Finance query endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Yahoo rejects requests without a browser like user agent.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

// ErrNoData is returned for symbols Yahoo does not know or has no prices for.
var ErrNoData = errors.New("no data")

// Client is a corrmap.Source backed by Yahoo Finance.
type Client struct {
	baseURL    string
	httpClient *http.Client
	parallel   int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient sets the http client, typically one from httpcache.NewClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithParallelism sets the number of symbols fetched concurrently.
func WithParallelism(n int) Option {
	return func(c *Client) { c.parallel = max(n, 1) }
}

// New returns a Yahoo Finance client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		parallel:   4,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prices implements corrmap.Source.
//
// Symbols without data are left out of the table; any other failure aborts
// the whole fetch.
func (c *Client) Prices(ctx context.Context, symbols []corrmap.Symbol, r date.Range) (*corrmap.PriceTable, error) {
	log := zerolog.Ctx(ctx)
	histories := make([]*date.History[float64], len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallel)
	var mu sync.Mutex
	missing := 0
	for i, sym := range symbols {
		g.Go(func() error {
			h, err := c.History(ctx, sym, r)
			if errors.Is(err, ErrNoData) {
				log.Debug().Str("symbol", sym.String()).Err(err).Msg("symbol skipped")
				mu.Lock()
				missing++
				mu.Unlock()
				return nil
			}
			if err != nil {
				return fmt.Errorf("cannot fetch %s: %w", sym, err)
			}
			histories[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := corrmap.NewPriceTable()
	for i, sym := range symbols {
		if histories[i] != nil {
			p.Set(sym, histories[i])
		}
	}
	log.Debug().Int("symbols", len(p.Symbols())).Int("missing", missing).Msg("yahoo prices fetched")
	return p, nil
}

// History returns the adjusted close prices of sym over r.
func (c *Client) History(ctx context.Context, sym corrmap.Symbol, r date.Range) (*date.History[float64], error) {
	params := url.Values{}
	params.Set("period1", strconv.FormatInt(r.From.Unix(), 10))
	params.Set("period2", strconv.FormatInt(r.To.Add(1).Unix(), 10))
	params.Set("interval", "1d")
	params.Set("events", "div,split")
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(sym.String()), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNoData, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode chart: %w", err)
	}
	h, err := parseChart(jobj)
	if err != nil {
		return nil, err
	}
	return h.Within(r), nil
}

// parseChart extracts the adjusted close series of a chart response.
//
// Days are taken in the exchange's own time zone, null prices are skipped.
func parseChart(jobj any) (*date.History[float64], error) {
	if e, err := jsonpath.Get("$.chart.error.description", jobj); err == nil && e != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, e)
	}
	timestamps, err := list(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	closes, err := list(jobj, "$.chart.result[0].indicators.adjclose[0].adjclose")
	if err != nil {
		// some instruments have no adjustment, the plain close is the same thing
		closes, err = list(jobj, "$.chart.result[0].indicators.quote[0].close")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoData, err)
		}
	}
	if len(closes) != len(timestamps) {
		return nil, fmt.Errorf("malformed chart: %d timestamps for %d prices", len(timestamps), len(closes))
	}
	offset := 0.0
	if v, err := jsonpath.Get("$.chart.result[0].meta.gmtoffset", jobj); err == nil {
		offset, _ = v.(float64)
	}

	h := new(date.History[float64])
	for i, ts := range timestamps {
		t, ok1 := ts.(float64)
		v, ok2 := closes[i].(float64)
		if !ok1 || !ok2 {
			continue
		}
		day := date.FromTime(time.Unix(int64(t+offset), 0).UTC())
		h.Append(day, v)
	}
	if h.Len() == 0 {
		return nil, ErrNoData
	}
	return h, nil
}

func list(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	l, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not a list", path)
	}
	return l, nil
}
