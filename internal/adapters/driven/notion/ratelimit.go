package notion

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
)

const (
	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	// DefaultRetryAfter is used when a 429 carries no usable Retry-After.
	DefaultRetryAfter = time.Second
)

// RateLimiter throttles requests to the Notion API.
// It combines a proactive token bucket with a reactive pause after 429s.
type RateLimiter struct {
	mu          sync.Mutex
	bucket      *rate.Limiter
	resumeAt    time.Time
	rateLimited int
}

// NewRateLimiter creates a limiter allowing perSecond requests per second.
func NewRateLimiter(perSecond float64) *RateLimiter {
	if perSecond <= 0 {
		perSecond = domain.DefaultRequestsPerSecond
	}
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	resumeAt := r.resumeAt
	r.mu.Unlock()

	if time.Now().Before(resumeAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(resumeAt)):
		}
	}
	return nil
}

// Observe records a 429 response so later requests pause until the
// server's Retry-After has elapsed.
func (r *RateLimiter) Observe(resp *http.Response) {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return
	}

	wait := DefaultRetryAfter
	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
			wait = time.Duration(seconds) * time.Second
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rateLimited++
	if resumeAt := time.Now().Add(wait); resumeAt.After(r.resumeAt) {
		r.resumeAt = resumeAt
	}
}

// RateLimited returns how many 429 responses have been observed.
func (r *RateLimiter) RateLimited() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rateLimited
}

// transport applies a RateLimiter to every outgoing request.
type transport struct {
	base    http.RoundTripper
	limiter *RateLimiter
}

// RoundTrip implements http.RoundTripper.
func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	t.limiter.Observe(resp)
	return resp, nil
}
