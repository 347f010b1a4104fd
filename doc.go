// Package deco provides a zoo of composable function wrappers: call
// counting, error catching, argument validation, logging, timing,
// retrying, timeouts, memory limiting, result dumping, completion
// notification, and shape tracking for array-like values.
//
// deco is built around three ideas:
//
//   - One function shape: every wrapper decorates a
//     Func[In, Out] — func(ctx, In) (Out, error) — where a struct In
//     gives the call named arguments.
//   - One calling convention: every factory takes the target first and
//     options after, and can be partially applied with Defer for later
//     or repeated use.
//   - Eager validation: bad options fail when the wrapper is built,
//     never when it is called.
//
// # Quick Start
//
// Wrapping a function directly, with default configuration:
//
//	add := func(ctx context.Context, in AddArgs) (int, error) {
//	    return in.A + in.B, nil
//	}
//	logged := deco.Must(deco.Log(add))
//
// Configuring first and applying later:
//
//	resilient := deco.Defer(deco.Retry[AddArgs, int],
//	    deco.WithTries(3),
//	    deco.WithBackoff(deco.Exponential(100*time.Millisecond)),
//	)
//	wrapped, err := resilient(add)
//
// Both forms are equivalent: Defer(Retry[In, Out], opts...)(fn)
// behaves exactly like Retry(fn, opts...).
//
// # Composition
//
// Chain stacks decorators, first listed outermost:
//
//	wrapped, err := deco.Chain(add,
//	    deco.Defer(deco.Log[AddArgs, int]),
//	    deco.Defer(deco.Retry[AddArgs, int], deco.WithTries(3)),
//	)
//
// # Named Arguments
//
// Wrappers that log or validate arguments read them from the exported
// fields of the input struct:
//
//	checked, err := deco.CheckArgs(add,
//	    deco.WithRule("A", func(v any) bool { return v.(int) > 0 }),
//	)
//
// Rule names are validated against the struct's fields when the
// wrapper is built. A non-struct input binds as a single argument
// named "in".
//
// # Error Handling
//
// Side-effect wrappers (Log, Timer, ChimeOnEnd, NotifyOnEnd,
// DumpResult, the shape trackers) never swallow the target's error:
// they perform their effect and pass the error through unchanged.
// Behavior-altering wrappers (Catch, Retry) suppress or replace errors
// only as configured. Resource failures have distinct types —
// TimeoutError, MemoryLimitError, EmptyShapeError — so callers can
// tell exhaustion from logic errors, and every message names the
// wrapped function.
//
// # Logging
//
// Wrappers emit plain log lines through a LogFunc. The process-wide
// default forwards to log/slog and can be replaced with
// SetDefaultLogFunc, or per wrapper with WithLogFunc.
//
// # Concurrency
//
// Wrappers run in the caller's goroutine and block until the target
// returns. Two documented exceptions to watch: Counter increments are
// unsynchronized, and MemoryLimit mutates a process-wide resource
// limit, so neither should be shared across goroutines without
// external coordination. Timeout runs the target on its own goroutine
// and abandons it at the deadline; targets should honor ctx to stop
// early.
package deco
