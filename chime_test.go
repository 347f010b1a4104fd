package deco_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decokit/deco"
)

type fakeChimer struct {
	successes int
	errors    int
}

func (c *fakeChimer) Success() { c.successes++ }
func (c *fakeChimer) Error()   { c.errors++ }

func TestChimeOnEnd(t *testing.T) {
	t.Run("plays the success sound", func(t *testing.T) {
		chimer := &fakeChimer{}
		fn := deco.Must(deco.ChimeOnEnd(add, deco.WithChimer(chimer)))

		got, err := fn(context.Background(), addArgs{A: 1, B: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, got)
		assert.Equal(t, 1, chimer.successes)
		assert.Equal(t, 0, chimer.errors)
	})

	t.Run("plays the error sound and re-raises", func(t *testing.T) {
		chimer := &fakeChimer{}
		fn := deco.Must(deco.ChimeOnEnd(brokenAdd, deco.WithChimer(chimer)))

		_, err := fn(context.Background(), addArgs{})
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, 0, chimer.successes)
		assert.Equal(t, 1, chimer.errors)
	})

	t.Run("accepts known themes", func(t *testing.T) {
		for _, theme := range deco.Themes() {
			_, err := deco.ChimeOnEnd(add, deco.WithTheme(theme), deco.WithChimer(&fakeChimer{}))
			assert.NoError(t, err, "theme %q", theme)
		}
	})

	t.Run("rejects unknown themes at decoration time", func(t *testing.T) {
		fn, err := deco.ChimeOnEnd(add, deco.WithTheme("dubstep"))
		require.Error(t, err)
		assert.Nil(t, fn)

		var cfgErr *deco.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "dubstep")
	})
}
