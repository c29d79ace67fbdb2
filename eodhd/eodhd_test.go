package eodhd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/corrmap"
	"github.com/etnz/corrmap/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "demo"

func TestTicker(t *testing.T) {
	assert.Equal(t, "NVDA.US", Ticker("NVDA"))
	assert.Equal(t, "BTC-USD.CC", Ticker("BTC-USD"))
	assert.Equal(t, "BRK-B.US", Ticker("BRK-B"))
}

func TestNew_APIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	_, err := New("")
	assert.ErrorIs(t, err, ErrNoAPIKey)

	t.Setenv(APIKeyEnv, "from-env")
	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.apiKey)

	c, err = New("explicit")
	require.NoError(t, err)
	assert.Equal(t, "explicit", c.apiKey)
}

func TestPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testKey, r.URL.Query().Get("api_token"))
		switch r.URL.Path {
		case "/api/eod/MCD.US":
			fmt.Fprint(w, `[
				{"date":"2024-02-12","close":290.1,"adjusted_close":285.25},
				{"date":"2024-02-13","close":291.4,"adjusted_close":286.5},
				{"date":"2024-02-14","close":292.0,"adjusted_close":null}
			]`)
		case "/api/eod/BTC-USD.CC":
			fmt.Fprint(w, `[{"date":"2024-02-12","adjusted_close":48000.5}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, err := New(testKey, WithBaseURL(srv.URL))
	require.NoError(t, err)
	r := date.Range{From: date.New(2024, 2, 12), To: date.New(2024, 2, 14)}
	p, err := c.Prices(context.Background(), []corrmap.Symbol{"MCD", "NOPE", "BTC-USD"}, r)
	require.NoError(t, err)

	assert.Equal(t, []corrmap.Symbol{"MCD", "BTC-USD"}, p.Symbols())
	h, _ := p.Lookup("MCD")
	assert.Equal(t, 2, h.Len())
	v, ok := h.Get(date.New(2024, 2, 13))
	assert.True(t, ok)
	assert.Equal(t, 286.5, v)
}

func TestPrices_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := New(testKey, WithBaseURL(srv.URL))
	require.NoError(t, err)
	_, err = c.Prices(context.Background(), []corrmap.Symbol{"MCD"}, date.Range{From: date.New(2024, 2, 12), To: date.New(2024, 2, 14)})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), testKey)
}
