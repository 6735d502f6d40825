package driven

import "context"

// Limiter paces calls against an upstream API. *rate.Limiter from
// golang.org/x/time satisfies it directly.
type Limiter interface {
	// Wait blocks until the next call may proceed.
	Wait(ctx context.Context) error
}

// NopLimiter never waits. Used in tests and dry runs.
type NopLimiter struct{}

// Wait returns immediately.
func (NopLimiter) Wait(context.Context) error { return nil }
