package httpcache

import (
	"net/http"
	"time"

	"github.com/etnz/corrmap/date"
	"golang.org/x/time/rate"
)

// Options configures NewClient.
type Options struct {
	Store   *Store      // nil disables caching
	Period  date.Period // cache expiration period
	Rate    rate.Limit  // requests per second, 0 is unlimited
	Burst   int
	Timeout time.Duration
}

// NewClient returns an http.Client that serves from the cache first and
// throttles the remaining requests.
//
// Cache hits are never throttled.
func NewClient(o Options) *http.Client {
	var rt http.RoundTripper = &Throttle{
		Base:     http.DefaultTransport,
		Limiter:  limiter(o.Rate, o.Burst),
		Attempts: DefaultAttempts,
		Backoff:  500 * time.Millisecond,
	}
	if o.Store != nil {
		rt = &Transport{Base: rt, Store: o.Store, Period: o.Period}
	}
	return &http.Client{Transport: rt, Timeout: o.Timeout}
}

func limiter(r rate.Limit, burst int) *rate.Limiter {
	if r <= 0 {
		return nil
	}
	return rate.NewLimiter(r, max(burst, 1))
}
