package deco

import (
	"context"
	"fmt"
	"reflect"
)

// Catch intercepts the target's error. With WithFallback the call
// returns the fallback value instead of failing; with WithRethrow the
// error is replaced by the configured one. With neither, the original
// error propagates unchanged after being logged. The fallback value's
// type is checked against the target's return type at decoration
// time.
func Catch[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}

	var fallback Out
	if cfg.hasFallback {
		v, ok := cfg.fallback.(Out)
		if !ok {
			return nil, &ConfigError{
				Option: "WithFallback",
				Reason: fmt.Sprintf("value of type %T is not assignable to return type %v",
					cfg.fallback, reflect.TypeFor[Out]()),
			}
		}
		fallback = v
	}

	name, logFn := cfg.name, cfg.logFn
	hasFallback, rethrow := cfg.hasFallback, cfg.rethrow

	return func(ctx context.Context, in In) (Out, error) {
		out, err := fn(ctx, in)
		if err == nil {
			return out, nil
		}

		var zero Out
		switch {
		case hasFallback:
			logFn(fmt.Sprintf("%s failed with error: %v, returning fallback %v", name, err, fallback))
			return fallback, nil
		case rethrow != nil:
			logFn(fmt.Sprintf("%s failed with error: %v", name, err))
			return zero, rethrow
		default:
			logFn(fmt.Sprintf("%s failed with error: %v", name, err))
			return zero, err
		}
	}, nil
}
