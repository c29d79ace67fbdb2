package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/etnz/corrmap/date"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the EODHD API.

var errUnknownTicker = errors.New("unknown ticker")

// fetchPrices returns the daily adjusted close prices of an EODHD ticker.
// The EODHD ticker format is typically "SYMBOL.EXCHANGECODE".
func (c *Client) fetchPrices(ctx context.Context, ticker string, r date.Range) (*date.History[float64], error) {
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 667.705,
	//		"volume": 0
	//	},
	// bounds are included in the response.
	params := url.Values{}
	params.Set("fmt", "json")
	params.Set("api_token", c.apiKey)
	params.Set("from", r.From.String())
	params.Set("to", r.To.String())
	addr := fmt.Sprintf("%s/api/eod/%s?%s", c.baseURL, url.PathEscape(ticker), params.Encode())

	type Info struct {
		Date          date.Date        `json:"date"`
		AdjustedClose *decimal.Decimal `json:"adjusted_close"`
	}

	content := make([]Info, 0)
	if err := jwget(ctx, c.httpClient, addr, &content); err != nil {
		return nil, err
	}

	h := new(date.History[float64])
	for _, info := range content {
		if info.AdjustedClose == nil || !r.Contains(info.Date) {
			continue
		}
		h.Append(info.Date, info.AdjustedClose.InexactFloat64())
	}
	return h, nil
}
