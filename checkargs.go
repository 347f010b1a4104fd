package deco

import (
	"context"
	"fmt"
	"slices"
)

// Rule decides whether an argument value is acceptable.
type Rule func(value any) bool

type namedRule struct {
	arg  string
	rule Rule
}

// CheckArgs validates the call's arguments against the rules
// configured with WithRule before the target runs. A failing rule
// returns an ArgError and the target is never invoked. Rule names are
// matched against the input struct's exported fields, and unknown
// names are rejected at decoration time.
func CheckArgs[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}

	known := argNames[In]()
	for _, r := range cfg.rules {
		if !slices.Contains(known, r.arg) {
			return nil, &ConfigError{
				Option: "WithRule",
				Reason: fmt.Sprintf("%q is not an argument of %s", r.arg, cfg.name),
			}
		}
	}

	name, rules := cfg.name, cfg.rules

	return func(ctx context.Context, in In) (Out, error) {
		args := bindArgs(in)
		for _, r := range rules {
			for _, a := range args {
				if a.Name == r.arg && !r.rule(a.Value) {
					var zero Out
					return zero, &ArgError{Func: name, Arg: a.Name, Reason: "does not satisfy its rule"}
				}
			}
		}
		return fn(ctx, in)
	}, nil
}
