package deco

import (
	"context"
	"errors"
	"fmt"
)

// Retry wraps fn with a retry loop. The target is attempted up to
// WithTries times, sleeping between attempts per WithDelay or
// WithBackoff, and every attempt's outcome is logged. Once attempts
// are exhausted, the last error is returned unchanged. Errors wrapped
// with Stop are never retried.
//
// The sleep respects ctx: cancellation during a delay returns the last
// attempt's error without further attempts.
func Retry[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	cfg.tries = 1
	cfg.backoff = Constant(0)
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}

	name, logFn := cfg.name, cfg.logFn
	tries, backoff, clock := cfg.tries, cfg.backoff, cfg.clock

	return func(ctx context.Context, in In) (Out, error) {
		var zero Out
		for attempt := 1; ; attempt++ {
			out, err := fn(ctx, in)
			if err == nil {
				logFn(fmt.Sprintf("%s attempt %d/%d: succeeded", name, attempt, tries))
				return out, nil
			}

			var stopped *stopError
			if errors.As(err, &stopped) {
				return zero, stopped.Unwrap()
			}

			logFn(fmt.Sprintf("%s attempt %d/%d: failed with error: %v", name, attempt, tries, err))

			if attempt >= tries {
				return zero, err
			}
			if serr := clock.Sleep(ctx, backoff.Delay(attempt)); serr != nil {
				return zero, err
			}
		}
	}, nil
}
