package deco_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decokit/deco"
)

func TestCatch(t *testing.T) {
	t.Run("returns fallback on error", func(t *testing.T) {
		fn, err := deco.Catch(brokenAdd, deco.WithFallback(-999), deco.WithLogFunc(discardLog))
		require.NoError(t, err)

		got, err := fn(context.Background(), addArgs{})
		require.NoError(t, err)
		assert.Equal(t, -999, got)
	})

	t.Run("does not touch successful calls", func(t *testing.T) {
		fn, err := deco.Catch(add, deco.WithFallback(-999), deco.WithLogFunc(discardLog))
		require.NoError(t, err)

		got, err := fn(context.Background(), addArgs{A: 1, B: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("replaces the error when configured", func(t *testing.T) {
		substitute := errors.New("substitute")
		fn, err := deco.Catch(brokenAdd, deco.WithRethrow(substitute), deco.WithLogFunc(discardLog))
		require.NoError(t, err)

		_, callErr := fn(context.Background(), addArgs{})
		assert.ErrorIs(t, callErr, substitute)
		assert.NotErrorIs(t, callErr, errBoom)
	})

	t.Run("propagates the original error unconfigured", func(t *testing.T) {
		rec := &logRecorder{}
		fn, err := deco.Catch(brokenAdd, deco.WithLogFunc(rec.fn))
		require.NoError(t, err)

		_, callErr := fn(context.Background(), addArgs{})
		assert.ErrorIs(t, callErr, errBoom)
		require.Len(t, rec.lines, 1)
		assert.Contains(t, rec.lines[0], "brokenAdd failed with error: boom")
	})

	t.Run("rejects a fallback of the wrong type", func(t *testing.T) {
		fn, err := deco.Catch(brokenAdd, deco.WithFallback("not an int"))
		require.Error(t, err)
		assert.Nil(t, fn)

		var cfgErr *deco.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "WithFallback", cfgErr.Option)
	})
}

func ExampleCatch() {
	div := func(ctx context.Context, in addArgs) (int, error) {
		if in.B == 0 {
			return 0, errors.New("division by zero")
		}
		return in.A / in.B, nil
	}
	safe, _ := deco.Catch(div, deco.WithFallback(-1), deco.WithLogFunc(func(string) {}))

	out, _ := safe(context.Background(), addArgs{A: 10, B: 0})
	fmt.Println(out)
	// Output: -1
}
