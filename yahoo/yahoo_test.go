package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/etnz/corrmap"
	"github.com/etnz/corrmap/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// open returns the unix time of the US market opening on d.
func open(d date.Date) int64 {
	return time.Date(d.Year(), d.Month(), d.Day(), 14, 30, 0, 0, time.UTC).Unix()
}

func chart(days []date.Date, closes ...string) string {
	ts := make([]string, len(days))
	for i, d := range days {
		ts[i] = fmt.Sprint(open(d))
	}
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"symbol":"X","gmtoffset":-18000},
		"timestamp":[%s],
		"indicators":{"quote":[{"close":[%s]}],"adjclose":[{"adjclose":[%s]}]}}],"error":null}}`,
		strings.Join(ts, ","), strings.Join(closes, ","), strings.Join(closes, ","))
}

const notFound = `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`

var (
	d1 = date.New(2023, 1, 3)
	d2 = date.New(2023, 1, 4)
	d3 = date.New(2023, 1, 5)
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		switch r.URL.Path {
		case "/v8/finance/chart/AAA":
			fmt.Fprint(w, chart([]date.Date{d1, d2, d3}, "10", "null", "12"))
		case "/v8/finance/chart/BTC-USD":
			fmt.Fprint(w, chart([]date.Date{d1, d2}, "100", "101"))
		case "/v8/finance/chart/BROKEN":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, notFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHistory(t *testing.T) {
	c := New(WithBaseURL(newServer(t).URL))
	h, err := c.History(context.Background(), "AAA", date.Range{From: d1, To: d3})
	require.NoError(t, err)

	assert.Equal(t, 2, h.Len(), "null price is skipped")
	v, ok := h.Get(d1)
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)
	_, ok = h.Get(d2)
	assert.False(t, ok)
	v, _ = h.Get(d3)
	assert.Equal(t, 12.0, v)
}

func TestHistory_Range(t *testing.T) {
	c := New(WithBaseURL(newServer(t).URL))
	h, err := c.History(context.Background(), "AAA", date.Range{From: d1, To: d2})
	require.NoError(t, err)
	assert.Equal(t, 1, h.Len())
}

func TestPrices(t *testing.T) {
	c := New(WithBaseURL(newServer(t).URL), WithParallelism(2))
	p, err := c.Prices(context.Background(), []corrmap.Symbol{"AAA", "NOPE", "BTC-USD"}, date.Range{From: d1, To: d3})
	require.NoError(t, err)
	assert.Equal(t, []corrmap.Symbol{"AAA", "BTC-USD"}, p.Symbols())
}

func TestPrices_ServerError(t *testing.T) {
	c := New(WithBaseURL(newServer(t).URL))
	_, err := c.Prices(context.Background(), []corrmap.Symbol{"AAA", "BROKEN"}, date.Range{From: d1, To: d3})
	assert.Error(t, err)
}

func TestParseChart_Error(t *testing.T) {
	var jobj any = map[string]any{"chart": map[string]any{"result": []any{map[string]any{"timestamp": []any{}}}}}
	_, err := parseChart(jobj)
	assert.ErrorIs(t, err, ErrNoData)
}
