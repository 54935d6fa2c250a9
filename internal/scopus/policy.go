// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scopus

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMinInterval is the minimum delay applied before each Scopus
// call, honoring the cooperative per-key rate limit of the Elsevier API.
const DefaultMinInterval = 500 * time.Millisecond

// Policy enforces a minimum interval between consecutive calls. It is a
// token bucket of size one with its initial token spent, so the very
// first Wait of a session already honors the interval. Tests inject a
// zero interval to skip the delay entirely.
type Policy struct {
	limiter *rate.Limiter
}

// NewPolicy returns a policy with the given minimum inter-call interval.
// A non-positive interval yields a policy that never waits.
func NewPolicy(minInterval time.Duration) *Policy {
	if minInterval <= 0 {
		return &Policy{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	l := rate.NewLimiter(rate.Every(minInterval), 1)

	// Spend the initial token: the delay is unconditional, including
	// before the first call.
	l.Allow()
	return &Policy{limiter: l}
}

// Wait blocks until the interval has elapsed or ctx is cancelled.
func (p *Policy) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
