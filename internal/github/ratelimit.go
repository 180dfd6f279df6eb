package github

import (
	"context"
	"sync"
	"time"

	"github.com/ghpeek/gh-peek/internal/logger"
)

// resetBuffer is added on top of the reported reset instant before resuming,
// to absorb clock skew between this host and the API.
const resetBuffer = 1 * time.Second

// tracker holds the client's local belief about the remaining request quota.
// remaining is -1 until an authoritative rate_limit response has been seen.
// Between authoritative refreshes the counter only ever decreases.
type tracker struct {
	mu         sync.Mutex
	limit      int
	remaining  int
	reset      time.Time
	threshold  int
	failOnWait bool
	refreshing bool
}

func newTracker(threshold int, failOnWait bool) *tracker {
	return &tracker{
		remaining:  -1,
		threshold:  threshold,
		failOnWait: failOnWait,
	}
}

// gate is consulted before every outbound call. It returns refreshAfter=true
// when the quota is low enough that the caller should refresh authoritative
// state once its call completes. When the quota is exhausted and the reset is
// still ahead, gate either fails with a RateLimitError or sleeps until
// reset+buffer, honoring ctx.
func (t *tracker) gate(ctx context.Context) (refreshAfter bool, err error) {
	t.mu.Lock()
	remaining := t.remaining
	reset := t.reset
	t.mu.Unlock()

	// Unknown or comfortably above threshold: proceed immediately.
	if remaining < 0 || remaining > t.threshold {
		return false, nil
	}

	if remaining <= 0 && time.Now().Before(reset) {
		if t.failOnWait {
			return false, NewRateLimitError(remaining, reset)
		}

		wait := time.Until(reset) + resetBuffer
		logger.Warn().
			Dur("wait", wait).
			Time("reset", reset).
			Msg("Rate limit exhausted, waiting for reset")

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(wait):
		}
		return false, nil
	}

	// Low but positive: proceed now, refresh afterwards.
	return true, nil
}

// record decrements the local counter after a completed call, flooring at
// zero. It reports whether the caller should trigger an authoritative refresh
// because the current state is unknown.
func (t *tracker) record() (refreshNeeded bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.remaining < 0 {
		return true
	}
	if t.remaining > 0 {
		t.remaining--
	}
	return false
}

// setStatus unconditionally overwrites the tracked state with authoritative
// data from the rate_limit endpoint.
func (t *tracker) setStatus(rl RateLimit) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.limit = rl.Limit
	t.remaining = rl.Remaining
	t.reset = rl.ResetTime()
}

// snapshot returns the current tracked state.
func (t *tracker) snapshot() (limit, remaining int, reset time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.limit, t.remaining, t.reset
}

// beginRefresh claims the single refresh slot. It returns false when another
// refresh is already in flight.
func (t *tracker) beginRefresh() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.refreshing {
		return false
	}
	t.refreshing = true
	return true
}

func (t *tracker) endRefresh() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refreshing = false
}
