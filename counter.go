package deco

import (
	"context"
	"fmt"
)

// Counter wraps a target function and counts its invocations. The
// count lives on the wrapper, not on the target, and is readable at
// any time via Calls. Incrementing is not synchronized: sharing one
// Counter across goroutines requires external locking.
type Counter[In, Out any] struct {
	fn    Func[In, Out]
	name  string
	logFn LogFunc
	log   bool
	calls int
}

// CallCounter wraps fn in a Counter. The count starts at WithSeed
// (default 0) and grows by one per invocation; WithCounterLogging logs
// the running count on each call.
func CallCounter[In, Out any](fn Func[In, Out], opts ...Option) (*Counter[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}
	return &Counter[In, Out]{
		fn:    fn,
		name:  cfg.name,
		logFn: cfg.logFn,
		log:   cfg.logCounter,
		calls: cfg.seed,
	}, nil
}

// Call invokes the target, bumping the counter first. The target's
// result and error pass through unchanged.
func (c *Counter[In, Out]) Call(ctx context.Context, in In) (Out, error) {
	c.calls++
	if c.log {
		c.logFn(fmt.Sprintf("%s called %d times", c.name, c.calls))
	}
	return c.fn(ctx, in)
}

// Calls returns the current invocation count, including the seed.
func (c *Counter[In, Out]) Calls() int {
	return c.calls
}

// Func returns the counter as a plain Func, so it can be chained with
// other decorators.
func (c *Counter[In, Out]) Func() Func[In, Out] {
	return c.Call
}
