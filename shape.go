package deco

import (
	"fmt"
	"reflect"
	"strings"
)

// Shaped reports its own dimensions, the way dataframe- and
// matrix-like values do. Values implementing Shaped take precedence
// over reflection in shape tracking.
type Shaped interface {
	Shape() []int
}

// shapeOf derives the dimensions of v. Shaped values report
// themselves; slices and arrays report the outer length followed by
// the first element's dimensions; maps report their length. The
// second return is false for values that have no meaningful shape.
func shapeOf(v any) ([]int, bool) {
	if s, ok := v.(Shaped); ok {
		return s.Shape(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		dims := []int{rv.Len()}
		if rv.Len() > 0 {
			if inner, ok := shapeOf(rv.Index(0).Interface()); ok {
				dims = append(dims, inner...)
			}
		}
		return dims, true
	case reflect.Map:
		return []int{rv.Len()}, true
	default:
		return nil, false
	}
}

// emptyShape reports whether dims describe a value with no elements.
func emptyShape(dims []int) bool {
	if len(dims) == 0 {
		return true
	}
	for _, d := range dims {
		if d == 0 {
			return true
		}
	}
	return false
}

// formatShape renders dims as "(1, 2)".
func formatShape(dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// shapeDelta is the per-dimension difference between two shapes over
// their common prefix.
func shapeDelta(in, out []int) []int {
	n := min(len(in), len(out))
	delta := make([]int, n)
	for i := range n {
		delta[i] = out[i] - in[i]
	}
	return delta
}
