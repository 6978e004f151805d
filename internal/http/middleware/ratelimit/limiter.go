package ratelimit

import "time"

// Limiter decides whether a request identified by key may pass.
type Limiter interface {
	Allow(key string) bool
}

// Clock is the time source used for bucket refill and eviction.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns time.Now.
func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter lets every key through. Used when rate limiting is disabled.
type NopLimiter struct{}

// Allow always reports true.
func (NopLimiter) Allow(string) bool { return true }

var (
	_ Limiter = NopLimiter{}
	_ Limiter = (*TokenBucketLimiter)(nil)
	_ Clock   = ClockFunc(nil)
)
