package client

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport retries requests answered with 429 Too Many Requests,
// waiting for the delay announced by the server.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

// RoundTrip implements http.RoundTripper.
func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	for attempt := 0; ; attempt++ {
		res, err := transport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt >= t.MaxRetries {
			return res, nil
		}

		waitTime := t.getWaitTime(res)

		_, _ = io.Copy(io.Discard, res.Body)
		res.Body.Close()

		slog.WarnContext(req.Context(), "rate limited, will retry", slog.Duration("waitTime", waitTime), slog.Int("attempt", attempt+1), slog.Int("maxRetries", t.MaxRetries))

		select {
		case <-req.Context().Done():
			return nil, errors.WithStack(req.Context().Err())
		case <-time.After(waitTime):
		}

		if req.Body != nil && req.Body != http.NoBody {
			if req.GetBody == nil {
				return nil, errors.New("cannot retry request with a one-time reader body")
			}

			body, err := req.GetBody()
			if err != nil {
				return nil, errors.Wrap(err, "could not rewind request body")
			}

			req.Body = body
		}
	}
}

func (t *RateLimitTransport) getWaitTime(res *http.Response) time.Duration {
	retryAfter := res.Header.Get("Retry-After")
	if retryAfter == "" {
		return t.DefaultWait
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		wait := time.Duration(seconds) * time.Second
		jitter := time.Duration(rand.Float64() * float64(wait) / 4)
		return wait + jitter
	}

	if date, err := http.ParseTime(retryAfter); err == nil {
		if wait := time.Until(date); wait > 0 {
			return wait
		}
	}

	return t.DefaultWait
}

var _ http.RoundTripper = &RateLimitTransport{}
