package deco

import (
	"context"
	"fmt"
)

// rlimit is a portable snapshot of the address-space resource limit.
type rlimit struct {
	cur uint64
	max uint64
}

// MemoryLimit caps the process address space at a fraction of the
// currently free memory (WithPercentage, default 0.99) for the
// duration of the call, restoring the previous limit afterwards. An
// out-of-memory failure from the target surfaces as a
// MemoryLimitError naming the target and the active limit.
//
// The limit is a process-wide resource: calling MemoryLimit-wrapped
// functions from multiple goroutines races on restoration and is not
// supported. Only Linux is supported; elsewhere the call fails with an
// error rather than silently skipping the limit. Note that the Go
// runtime aborts the process when its own allocations fail, so the
// limit chiefly constrains allocations made via syscalls and cgo.
func MemoryLimit[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	cfg.percentage = 0.99
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}

	name, logFn, pct := cfg.name, cfg.logFn, cfg.percentage

	return func(ctx context.Context, in In) (Out, error) {
		var zero Out

		free, err := freeMemory()
		if err != nil {
			return zero, fmt.Errorf("deco: %s: querying free memory: %w", name, err)
		}
		limit := uint64(float64(free) * pct)

		logFn(fmt.Sprintf("setting memory limit for %s to %d bytes", name, limit))

		prev, err := setAddressSpaceLimit(limit)
		if err != nil {
			return zero, fmt.Errorf("deco: %s: setting memory limit: %w", name, err)
		}
		defer restoreAddressSpaceLimit(prev)

		out, err := fn(ctx, in)
		if err != nil && isOutOfMemory(err) {
			return zero, &MemoryLimitError{Func: name, Limit: limit}
		}
		return out, err
	}, nil
}
