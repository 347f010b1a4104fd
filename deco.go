package deco

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// Func is the function signature wrappers decorate. In carries the
// call's arguments, Out the result. When In is a struct, its exported
// fields are treated as named arguments by wrappers that log or
// validate arguments.
type Func[In, Out any] func(ctx context.Context, in In) (Out, error)

// Factory builds a wrapper around a target function. Every wrapper in
// this package has this shape: the target first, then zero or more
// options. Invalid options are reported here, at decoration time,
// never at call time.
type Factory[In, Out any] func(fn Func[In, Out], opts ...Option) (Func[In, Out], error)

// Decorator is a deferred factory application: the options are already
// bound, only the target is still missing.
type Decorator[In, Out any] func(fn Func[In, Out]) (Func[In, Out], error)

// Defer binds options to a factory without a target, producing a
// Decorator that can be applied later. Applying the result is
// equivalent to calling the factory directly:
//
//	deco.Defer(deco.Retry[int, int], deco.WithTries(3))(fn)
//
// behaves exactly like
//
//	deco.Retry(fn, deco.WithTries(3))
func Defer[In, Out any](factory Factory[In, Out], opts ...Option) Decorator[In, Out] {
	return func(fn Func[In, Out]) (Func[In, Out], error) {
		return factory(fn, opts...)
	}
}

// Chain applies decorators to fn, last listed innermost, so the first
// decorator observes the call before all others. Decoration stops at
// the first configuration error.
func Chain[In, Out any](fn Func[In, Out], decorators ...Decorator[In, Out]) (Func[In, Out], error) {
	var err error
	for i := len(decorators) - 1; i >= 0; i-- {
		if fn, err = decorators[i](fn); err != nil {
			return nil, err
		}
	}
	return fn, nil
}

// Must panics on decoration errors. Intended for wiring with
// statically known, valid options:
//
//	add = deco.Must(deco.Retry(add, deco.WithTries(3)))
func Must[In, Out any](fn Func[In, Out], err error) Func[In, Out] {
	if err != nil {
		panic(err)
	}
	return fn
}

// funcNameOf recovers the short name of fn for log lines and error
// messages. Anonymous functions report their runtime name, e.g.
// "TestRetry.func1".
func funcNameOf(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return "func"
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
