package httputil

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Transport is an http.RoundTripper that applies the outbound pipeline:
// RateLimiter → default JSON headers → optional Bearer token → Send.
// It keeps request pacing polite toward the shared demo API.
type Transport struct {
	Base        http.RoundTripper
	RateLimiter *rate.Limiter
	AuthToken   string // optional; injected as a Bearer header when set
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.RateLimiter != nil {
		if err := t.RateLimiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	for key, vals := range JSONHeaders() {
		if req.Header.Get(key) == "" {
			for _, v := range vals {
				req.Header.Add(key, v)
			}
		}
	}
	if t.AuthToken != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+t.AuthToken)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
