package deco_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decokit/deco"
)

func sleepyAdd(d time.Duration) deco.Func[addArgs, int] {
	return func(ctx context.Context, in addArgs) (int, error) {
		select {
		case <-time.After(d):
			return in.A + in.B, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

func TestTimeout(t *testing.T) {
	t.Run("returns normally under the limit", func(t *testing.T) {
		fn := deco.Must(deco.Timeout(sleepyAdd(5*time.Millisecond), deco.WithTimeLimit(time.Second)))

		got, err := fn(context.Background(), addArgs{A: 1, B: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("fails with a TimeoutError over the limit", func(t *testing.T) {
		fn := deco.Must(deco.Timeout(sleepyAdd(time.Second),
			deco.WithTimeLimit(20*time.Millisecond),
			deco.WithName("sleepyAdd"),
		))

		_, err := fn(context.Background(), addArgs{})
		require.Error(t, err)

		var toErr *deco.TimeoutError
		require.ErrorAs(t, err, &toErr)
		assert.Equal(t, "sleepyAdd", toErr.Func)
		assert.Equal(t, 20*time.Millisecond, toErr.Limit)
	})

	t.Run("zero limit means no deadline", func(t *testing.T) {
		fn := deco.Must(deco.Timeout(sleepyAdd(5 * time.Millisecond)))

		got, err := fn(context.Background(), addArgs{A: 2, B: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, got)
	})

	t.Run("caller cancellation is not reported as a timeout", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fn := deco.Must(deco.Timeout(sleepyAdd(time.Second), deco.WithTimeLimit(time.Minute)))

		_, err := fn(ctx, addArgs{})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)

		var toErr *deco.TimeoutError
		assert.False(t, errors.As(err, &toErr))
	})

	t.Run("rejects a negative limit at decoration time", func(t *testing.T) {
		fn, err := deco.Timeout(add, deco.WithTimeLimit(-time.Second))
		require.Error(t, err)
		assert.Nil(t, fn)
	})
}
