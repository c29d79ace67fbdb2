package httpcache

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DefaultAttempts is the number of attempts made for a single request.
const DefaultAttempts = 3

// Throttle is an http.RoundTripper that waits on a rate limiter before each
// attempt and retries transport errors, server errors and 429 responses.
type Throttle struct {
	Base     http.RoundTripper
	Limiter  *rate.Limiter
	Attempts int
	Backoff  time.Duration // delay before the second attempt, doubled afterwards
}

func retryable(resp *http.Response) bool {
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
}

// RoundTrip implements http.RoundTripper.
func (t *Throttle) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	attempts := max(t.Attempts, 1)
	if req.Body != nil && req.GetBody == nil {
		attempts = 1
	}
	ctx := req.Context()
	log := zerolog.Ctx(ctx)
	backoff := t.Backoff

	var (
		resp *http.Response
		err  error
	)
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		if t.Limiter != nil {
			if err := t.Limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit: %w", err)
			}
		}
		if req.Body != nil && i > 0 {
			req = req.Clone(ctx)
			if req.Body, err = req.GetBody(); err != nil {
				return nil, err
			}
		}

		resp, err = base.RoundTrip(req)
		if err == nil && !retryable(resp) {
			return resp, nil
		}
		if i < attempts-1 {
			ev := log.Debug().Int("attempt", i+1).Str("url", req.URL.Redacted())
			if err != nil {
				ev = ev.Err(err)
			} else {
				ev = ev.Str("status", resp.Status)
				resp.Body.Close()
			}
			ev.Msg("retrying")
		}
	}
	return resp, err
}
