package deco

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// EmptyPolicy controls when MultiShapeTracker fails a call over empty
// tracked outputs.
type EmptyPolicy int

const (
	// EmptyNever tolerates empty outputs.
	EmptyNever EmptyPolicy = iota
	// EmptyAny fails when any tracked output is empty.
	EmptyAny
	// EmptyAll fails only when every tracked output is empty.
	EmptyAll
)

// ShapeTracker logs the shape of one array-like input argument and of
// the target's output. Input tracking (WithShapeIn), the input/output
// delta (WithShapeDelta), and the empty-output guard
// (WithRaiseIfEmpty) are off by default; output tracking is on. The
// tracked argument defaults to the first named argument and can be
// chosen with WithTrackedArg; unknown names are rejected at decoration
// time.
func ShapeTracker[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	cfg.shapeOut = true
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}

	known := argNames[In]()
	tracked := cfg.trackedArg
	if tracked == "" {
		tracked = known[0]
	} else if !slices.Contains(known, tracked) {
		return nil, &ConfigError{
			Option: "WithTrackedArg",
			Reason: fmt.Sprintf("%q is not an argument of %s", tracked, cfg.name),
		}
	}

	name, logFn := cfg.name, cfg.logFn
	trackIn, trackOut, trackDelta, raiseIfEmpty :=
		cfg.shapeIn, cfg.shapeOut, cfg.shapeDelta, cfg.raiseIfEmpty

	return func(ctx context.Context, in In) (Out, error) {
		var zero Out
		var inShape []int

		if trackIn || trackDelta {
			value := any(nil)
			for _, a := range bindArgs(in) {
				if a.Name == tracked {
					value = a.Value
					break
				}
			}
			dims, ok := shapeOf(value)
			if !ok {
				return zero, &ArgError{Func: name, Arg: tracked, Reason: "has no shape"}
			}
			inShape = dims
			if trackIn {
				logFn(fmt.Sprintf("%s input: `%s` has shape %s", name, tracked, formatShape(dims)))
			}
		}

		out, err := fn(ctx, in)
		if err != nil {
			return zero, err
		}

		if trackOut || trackDelta || raiseIfEmpty {
			dims, ok := shapeOf(out)
			if !ok {
				return zero, &ArgError{Func: name, Arg: "result", Reason: "has no shape"}
			}
			if trackOut {
				logFn(fmt.Sprintf("%s output: result has shape %s", name, formatShape(dims)))
			}
			if trackDelta {
				logFn(fmt.Sprintf("%s shape delta: %s", name, formatShape(shapeDelta(inShape, dims))))
			}
			if raiseIfEmpty && emptyShape(dims) {
				return zero, &EmptyShapeError{Func: name}
			}
		}

		return out, nil
	}, nil
}

// MultiShapeTracker logs the shapes of several inputs and outputs per
// call. Inputs are selected by name with WithShapesIn (none tracked by
// default); outputs default to every named output and can be narrowed
// with WithShapesOut. WithEmptyPolicy turns empty tracked outputs into
// an EmptyShapeError, failing on any or only on all of them. Selector
// names are validated at decoration time.
func MultiShapeTracker[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}

	inNames := argNames[In]()
	for _, sel := range cfg.shapesIn {
		if !slices.Contains(inNames, sel) {
			return nil, &ConfigError{
				Option: "WithShapesIn",
				Reason: fmt.Sprintf("%q is not an argument of %s", sel, cfg.name),
			}
		}
	}
	outNames := typeNames[Out]("result")
	for _, sel := range cfg.shapesOut {
		if !slices.Contains(outNames, sel) {
			return nil, &ConfigError{
				Option: "WithShapesOut",
				Reason: fmt.Sprintf("%q is not an output of %s", sel, cfg.name),
			}
		}
	}

	name, logFn := cfg.name, cfg.logFn
	shapesIn, shapesOut, policy := cfg.shapesIn, cfg.shapesOut, cfg.emptyPolicy
	if len(shapesOut) == 0 {
		shapesOut = outNames
	}

	return func(ctx context.Context, in In) (Out, error) {
		var zero Out

		if len(shapesIn) > 0 {
			parts, err := selectShapes(bindArgs(in), shapesIn, name)
			if err != nil {
				return zero, err
			}
			logFn(fmt.Sprintf("%s input shapes: %s", name, strings.Join(parts, " ")))
		}

		out, err := fn(ctx, in)
		if err != nil {
			return zero, err
		}

		outs := bindNamed(out, "result")
		parts, err := selectShapes(outs, shapesOut, name)
		if err != nil {
			return zero, err
		}
		logFn(fmt.Sprintf("%s output shapes: %s", name, strings.Join(parts, " ")))

		if policy != EmptyNever {
			empty, total := 0, 0
			var first string
			for _, a := range outs {
				if !slices.Contains(shapesOut, a.Name) {
					continue
				}
				dims, ok := shapeOf(a.Value)
				if !ok {
					continue
				}
				total++
				if emptyShape(dims) {
					if first == "" {
						first = a.Name
					}
					empty++
				}
			}
			if (policy == EmptyAny && empty > 0) || (policy == EmptyAll && total > 0 && empty == total) {
				return zero, &EmptyShapeError{Func: name, Output: first}
			}
		}

		return out, nil
	}, nil
}

func selectShapes(args []Arg, names []string, funcName string) ([]string, error) {
	parts := make([]string, 0, len(names))
	for _, a := range args {
		if !slices.Contains(names, a.Name) {
			continue
		}
		dims, ok := shapeOf(a.Value)
		if !ok {
			return nil, &ArgError{Func: funcName, Arg: a.Name, Reason: "has no shape"}
		}
		parts = append(parts, fmt.Sprintf("%s=%s", a.Name, formatShape(dims)))
	}
	return parts, nil
}
