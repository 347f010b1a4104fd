package deco

import (
	"math"
	"math/rand/v2"
	"time"
)

// Backoff calculates the delay before the next retry attempt.
type Backoff interface {
	Delay(attempt int) time.Duration
}

// BackoffFunc adapts a function to the Backoff interface.
type BackoffFunc func(attempt int) time.Duration

// Delay implements Backoff.
func (f BackoffFunc) Delay(attempt int) time.Duration {
	return f(attempt)
}

// Constant waits the same duration between every attempt.
func Constant(d time.Duration) Backoff {
	return BackoffFunc(func(int) time.Duration {
		return d
	})
}

// Linear grows the delay linearly: base, 2*base, 3*base, ...
func Linear(base time.Duration) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		return base * time.Duration(attempt)
	})
}

// Exponential doubles the delay with each attempt: base, 2*base,
// 4*base, ...
func Exponential(base time.Duration) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		if attempt <= 0 {
			return base
		}
		if attempt > 62 { // overflow guard
			return time.Duration(math.MaxInt64)
		}
		return base * time.Duration(1<<uint(attempt-1))
	})
}

// WithCap caps the delay of b at max.
func WithCap(max time.Duration, b Backoff) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		return min(b.Delay(attempt), max)
	})
}

// WithJitter spreads the delay of b by a random factor, where 0.2
// means up to ±20%.
func WithJitter(factor float64, b Backoff) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		d := b.Delay(attempt)
		if factor <= 0 {
			return d
		}
		jitter := (rand.Float64()*2 - 1) * float64(d) * factor
		return max(time.Duration(float64(d)+jitter), 0)
	})
}
