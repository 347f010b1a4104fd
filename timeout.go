package deco

import (
	"context"
	"errors"
)

// Timeout bounds the target's wall-clock time. The target runs on its
// own goroutine while the wrapper waits for it or for the deadline,
// whichever comes first; on expiry the call returns a TimeoutError
// naming the target.
//
// Cancellation is cooperative: the target receives a context that is
// canceled at the deadline, but a target that ignores its context
// keeps running on its goroutine after the wrapper has returned. A
// zero limit (the default) disables the deadline entirely.
func Timeout[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}

	name, limit := cfg.name, cfg.timeLimit

	return func(ctx context.Context, in In) (Out, error) {
		if limit == 0 {
			return fn(ctx, in)
		}

		ctx, cancel := context.WithTimeout(ctx, limit)
		defer cancel()

		type result struct {
			out Out
			err error
		}
		done := make(chan result, 1)
		go func() {
			out, err := fn(ctx, in)
			done <- result{out: out, err: err}
		}()

		select {
		case r := <-done:
			return r.out, r.err
		case <-ctx.Done():
			var zero Out
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return zero, &TimeoutError{Func: name, Limit: limit}
			}
			return zero, ctx.Err()
		}
	}, nil
}
