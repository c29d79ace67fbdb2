package httpcache

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/etnz/corrmap/date"
	"github.com/rs/zerolog"
)

// Transport is an http.RoundTripper that serves successful GET responses
// from a Store. Entries expire at the end of the current Period, so a daily
// cache refreshes once a day.
type Transport struct {
	Base   http.RoundTripper
	Store  *Store
	Period date.Period

	now func() time.Time
}

func (c *Transport) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

// key is unique per period, method and url.
func (c *Transport) key(req *http.Request, now time.Time) string {
	rangeID := date.NewRange(date.FromTime(now.UTC()), c.Period).Identifier()
	key := fmt.Sprintf("%s %s %s", rangeID, req.Method, req.URL.String())
	return fmt.Sprintf("%s-%x", c.Period, sha1.Sum([]byte(key)))
}

// RoundTrip implements http.RoundTripper.
func (c *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := c.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Method != http.MethodGet || c.Store == nil {
		return base.RoundTrip(req)
	}
	log := zerolog.Ctx(req.Context())
	now := c.clock()
	key := c.key(req, now)

	if content, err := c.Store.Get(key); err == nil {
		resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
		if err == nil {
			log.Debug().Str("url", req.URL.Redacted()).Msg("cache hit")
			return resp, nil
		}
		log.Warn().Err(err).Msg("cannot read cached response, ignored")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Str("status", resp.Status).Msg("http")
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	// DumpResponse leaves resp.Body readable again.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return nil, err
	}
	if err := c.Store.Put(key, content, c.Period.Until(now)); err != nil {
		log.Warn().Err(err).Msg("cache write error, ignored")
	}
	return resp, nil
}
