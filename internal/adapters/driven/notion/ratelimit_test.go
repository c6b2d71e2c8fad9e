package notion

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func pausedUntil(r *RateLimiter) time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resumeAt
}

func TestRateLimiter_ObserveRetryAfter(t *testing.T) {
	limiter := NewRateLimiter(100)

	resp := &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}
	resp.Header.Set(HeaderRetryAfter, "2")
	limiter.Observe(resp)

	assert.Equal(t, 1, limiter.RateLimited())
	assert.WithinDuration(t, time.Now().Add(2*time.Second), pausedUntil(limiter), 500*time.Millisecond)
}

func TestRateLimiter_ObserveIgnoresSuccess(t *testing.T) {
	limiter := NewRateLimiter(100)
	limiter.Observe(&http.Response{StatusCode: http.StatusOK})
	limiter.Observe(nil)

	assert.Equal(t, 0, limiter.RateLimited())
	assert.True(t, pausedUntil(limiter).IsZero())
}

func TestRateLimiter_ObserveDefaultRetryAfter(t *testing.T) {
	limiter := NewRateLimiter(100)
	limiter.Observe(&http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}})

	assert.WithinDuration(t, time.Now().Add(DefaultRetryAfter), pausedUntil(limiter), 500*time.Millisecond)
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	limiter := NewRateLimiter(100)
	resp := &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}
	resp.Header.Set(HeaderRetryAfter, "30")
	limiter.Observe(resp)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, limiter.Wait(ctx), context.DeadlineExceeded)
}

func TestRateLimiter_WaitPasses(t *testing.T) {
	limiter := NewRateLimiter(0)
	assert.NoError(t, limiter.Wait(context.Background()))
}
