package deco

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// DumpResult writes the target's return value to a JSON file under a
// results directory after each successful call. The file name is the
// target's name, optionally followed by the argument values
// (WithArgsInName), a timestamp (on by default, see WithoutTimestamp
// and WithTimestampFormat), and a random suffix (WithUniqueSuffix).
// The directory is created at decoration time. Failed calls are not
// dumped.
func DumpResult[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	cfg.resultDir = "results"
	cfg.timestamp = true
	cfg.timeFormat = "20060102_150405"
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.resultDir, 0o755); err != nil {
		return nil, &ConfigError{
			Option: "WithResultDir",
			Reason: fmt.Sprintf("creating %s: %v", cfg.resultDir, err),
		}
	}

	name, logFn, clock := cfg.name, cfg.logFn, cfg.clock
	dir, argsInName, timestamp, timeFormat, unique :=
		cfg.resultDir, cfg.argsInName, cfg.timestamp, cfg.timeFormat, cfg.uniqueName

	return func(ctx context.Context, in In) (Out, error) {
		out, err := fn(ctx, in)
		if err != nil {
			return out, err
		}

		parts := []string{name}
		if argsInName {
			for _, a := range bindArgs(in) {
				parts = append(parts, fmt.Sprintf("%v", a.Value))
			}
		}
		if timestamp {
			parts = append(parts, clock.Now().Format(timeFormat))
		}
		if unique {
			parts = append(parts, uuid.NewString())
		}
		path := filepath.Join(dir, strings.Join(parts, "_")+".json")

		data, merr := jsoniter.ConfigFastest.Marshal(out)
		if merr != nil {
			var zero Out
			return zero, fmt.Errorf("deco: %s: encoding result: %w", name, merr)
		}
		if werr := os.WriteFile(path, data, 0o644); werr != nil {
			var zero Out
			return zero, fmt.Errorf("deco: %s: dumping result: %w", name, werr)
		}

		logFn(fmt.Sprintf("result of %s saved at %s", name, path))
		return out, nil
	}, nil
}
