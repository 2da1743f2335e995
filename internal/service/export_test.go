package service

import "time"

// NewTokenBucketWithClock exposes the clock seam to external tests.
func NewTokenBucketWithClock(rate, capacity float64, now func() time.Time) *TokenBucket {
	return newTokenBucket(rate, capacity, now)
}

// Sweep exposes stale-bucket removal to external tests.
func (tb *TokenBucket) Sweep(maxIdle time.Duration) { tb.sweep(maxIdle) }

// Len reports how many keys are tracked.
func (tb *TokenBucket) Len() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return len(tb.buckets)
}
