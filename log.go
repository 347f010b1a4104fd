package deco

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Log records each call of the target: its arguments, elapsed time,
// and failure details, as a single line on the log sink. With
// WithLogFile the line is also appended to a file, prefixed with the
// call's start time. The target's result and error pass through
// unchanged; the log line is emitted whether the call succeeded or
// failed.
func Log[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	cfg.logTime = true
	cfg.logArgs = true
	cfg.logError = true
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}

	name, logFn, clock := cfg.name, cfg.logFn, cfg.clock
	logTime, logArgs, logError, logFile := cfg.logTime, cfg.logArgs, cfg.logError, cfg.logFile

	return func(ctx context.Context, in In) (Out, error) {
		start := clock.Now()

		var parts []string
		if logArgs {
			parts = append(parts, fmt.Sprintf("args=(%s)", formatArgs(bindArgs(in))))
		}

		out, err := fn(ctx, in)

		if logTime {
			parts = append(parts, fmt.Sprintf("time=%s", clock.Now().Sub(start)))
		}
		if err != nil {
			if logError {
				parts = append(parts, fmt.Sprintf("failed with error: %v", err))
			} else {
				parts = append(parts, "failed")
			}
		}

		line := strings.TrimSpace(fmt.Sprintf("%s %s", name, strings.Join(parts, " ")))
		logFn(line)

		if logFile != "" {
			if werr := appendLine(logFile, fmt.Sprintf("%s %s\n", start.Format("2006-01-02 15:04:05.000000"), line)); werr != nil {
				if err == nil {
					var zero Out
					return zero, fmt.Errorf("deco: %s: writing log file: %w", name, werr)
				}
			}
		}

		return out, err
	}, nil
}

// Timer is Log reduced to timing: arguments and error details are not
// logged.
func Timer[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	preset := []Option{WithArgLogging(false), WithErrorLogging(false)}
	return Log(fn, append(preset, opts...)...)
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(line)
	return err
}
