package deco

import (
	"fmt"
	"time"
)

// ConfigError reports an invalid option, surfaced when the decorator
// is applied rather than when the wrapped function is called.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("deco: invalid option %s: %s", e.Option, e.Reason)
}

// ArgError reports an argument that failed its rule or could not be
// inspected, before the target ran.
type ArgError struct {
	Func   string
	Arg    string
	Reason string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("deco: %s: argument %q %s", e.Func, e.Arg, e.Reason)
}

// TimeoutError reports that a Timeout-wrapped function exceeded its
// wall-clock budget. The target may still be running; see Timeout.
type TimeoutError struct {
	Func  string
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("deco: %s: reached time limit %s", e.Func, e.Limit)
}

// MemoryLimitError reports that a MemoryLimit-wrapped function hit the
// configured address-space limit.
type MemoryLimitError struct {
	Func  string
	Limit uint64
}

func (e *MemoryLimitError) Error() string {
	return fmt.Sprintf("deco: %s: reached memory limit of %d bytes", e.Func, e.Limit)
}

// EmptyShapeError reports that a tracked output of a shape-tracking
// wrapper turned out empty.
type EmptyShapeError struct {
	Func   string
	Output string
}

func (e *EmptyShapeError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("deco: %s: output %q has an empty shape", e.Func, e.Output)
	}
	return fmt.Sprintf("deco: %s: output has an empty shape", e.Func)
}
