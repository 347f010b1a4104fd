package deco_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsoniter "github.com/json-iterator/go"

	"github.com/decokit/deco"
)

func TestDumpResult(t *testing.T) {
	t.Run("writes the result as JSON", func(t *testing.T) {
		dir := t.TempDir()
		fn := deco.Must(deco.DumpResult(add,
			deco.WithName("add"),
			deco.WithResultDir(dir),
			deco.WithoutTimestamp(),
			deco.WithLogFunc(discardLog),
		))

		got, err := fn(context.Background(), addArgs{A: 1, B: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, got)

		data, err := os.ReadFile(filepath.Join(dir, "add.json"))
		require.NoError(t, err)

		var stored int
		require.NoError(t, jsoniter.ConfigFastest.Unmarshal(data, &stored))
		assert.Equal(t, 3, stored)
	})

	t.Run("includes argument values in the file name", func(t *testing.T) {
		dir := t.TempDir()
		fn := deco.Must(deco.DumpResult(add,
			deco.WithName("add"),
			deco.WithResultDir(dir),
			deco.WithArgsInName(),
			deco.WithoutTimestamp(),
			deco.WithLogFunc(discardLog),
		))

		_, err := fn(context.Background(), addArgs{A: 1, B: 2})
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "add_1_2.json"))
		assert.NoError(t, err)
	})

	t.Run("unique suffix avoids collisions", func(t *testing.T) {
		dir := t.TempDir()
		fn := deco.Must(deco.DumpResult(add,
			deco.WithResultDir(dir),
			deco.WithoutTimestamp(),
			deco.WithUniqueSuffix(),
			deco.WithLogFunc(discardLog),
		))

		for range 3 {
			_, err := fn(context.Background(), addArgs{A: 1, B: 2})
			require.NoError(t, err)
		}

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("creates the results directory at decoration time", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "results")
		_, err := deco.DumpResult(add, deco.WithResultDir(dir), deco.WithLogFunc(discardLog))
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("does not dump failed calls", func(t *testing.T) {
		dir := t.TempDir()
		fn := deco.Must(deco.DumpResult(brokenAdd,
			deco.WithResultDir(dir),
			deco.WithLogFunc(discardLog),
		))

		_, err := fn(context.Background(), addArgs{})
		assert.ErrorIs(t, err, errBoom)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("logs where the result was saved", func(t *testing.T) {
		dir := t.TempDir()
		rec := &logRecorder{}
		fn := deco.Must(deco.DumpResult(add,
			deco.WithName("add"),
			deco.WithResultDir(dir),
			deco.WithoutTimestamp(),
			deco.WithLogFunc(rec.fn),
		))

		_, err := fn(context.Background(), addArgs{A: 1, B: 2})
		require.NoError(t, err)

		require.Len(t, rec.lines, 1)
		assert.Contains(t, rec.lines[0], "result of add saved at")
		assert.Contains(t, rec.lines[0], "add.json")
	})
}
