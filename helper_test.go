package deco_test

import (
	"context"
	"errors"
	"time"
)

var errBoom = errors.New("boom")

// addArgs is the canonical input struct used across the tests.
type addArgs struct {
	A int
	B int
}

func add(ctx context.Context, in addArgs) (int, error) {
	return in.A + in.B, nil
}

func brokenAdd(ctx context.Context, in addArgs) (int, error) {
	return 0, errBoom
}

// logRecorder collects log lines emitted through WithLogFunc.
type logRecorder struct {
	lines []string
}

func (r *logRecorder) fn(msg string) {
	r.lines = append(r.lines, msg)
}

func discardLog(string) {}

// fakeClock tracks sleeps and advances without real delays.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Now()}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		c.sleeps = append(c.sleeps, d)
		c.now = c.now.Add(d)
		return nil
	}
}
