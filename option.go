package deco

import (
	"fmt"
	"time"
)

// config holds the knobs for every wrapper in the package. Each
// factory starts from its own defaults and reads only the fields it
// owns; the shared shape is what lets a single Option type serve the
// whole catalog.
type config struct {
	name  string
	logFn LogFunc
	clock Clock

	// CallCounter
	seed       int
	logCounter bool

	// Catch
	fallback    any
	hasFallback bool
	rethrow     error

	// CheckArgs
	rules []namedRule

	// ChimeOnEnd
	chimer Chimer
	theme  string

	// NotifyOnEnd
	notifier Notifier

	// Log
	logTime  bool
	logArgs  bool
	logError bool
	logFile  string

	// DumpResult
	resultDir  string
	argsInName bool
	timestamp  bool
	timeFormat string
	uniqueName bool

	// MemoryLimit
	percentage float64

	// Retry
	tries   int
	backoff Backoff

	// Timeout
	timeLimit time.Duration

	// ShapeTracker / MultiShapeTracker
	shapeIn      bool
	shapeOut     bool
	shapeDelta   bool
	raiseIfEmpty bool
	trackedArg   string
	shapesIn     []string
	shapesOut    []string
	emptyPolicy  EmptyPolicy

	// first invalid option, surfaced at decoration time
	err error
}

func newConfig(name string) *config {
	return &config{
		name:  name,
		logFn: DefaultLogFunc(),
		clock: realClock{},
	}
}

func (c *config) apply(opts []Option) error {
	for _, opt := range opts {
		opt(c)
	}
	return c.err
}

func (c *config) fail(option, reason string) {
	if c.err == nil {
		c.err = &ConfigError{Option: option, Reason: reason}
	}
}

// Option configures a wrapper factory.
type Option func(*config)

// WithName overrides the target name used in log lines and error
// messages. The default is recovered from the runtime.
func WithName(name string) Option {
	return func(c *config) {
		if name == "" {
			c.fail("WithName", "name must not be empty")
			return
		}
		c.name = name
	}
}

// WithLogFunc sets the sink a wrapper writes its log lines to. The
// default is the process-wide sink, see SetDefaultLogFunc.
func WithLogFunc(fn LogFunc) Option {
	return func(c *config) {
		if fn == nil {
			c.fail("WithLogFunc", "log function must not be nil")
			return
		}
		c.logFn = fn
	}
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		if clock == nil {
			c.fail("WithClock", "clock must not be nil")
			return
		}
		c.clock = clock
	}
}

// WithSeed sets the starting value of a CallCounter.
func WithSeed(n int) Option {
	return func(c *config) {
		c.seed = n
	}
}

// WithCounterLogging makes a CallCounter log the running count on each
// invocation.
func WithCounterLogging() Option {
	return func(c *config) {
		c.logCounter = true
	}
}

// WithFallback makes Catch return v instead of the target's error. The
// value must be assignable to the target's return type, which is
// checked at decoration time.
func WithFallback(v any) Option {
	return func(c *config) {
		c.fallback = v
		c.hasFallback = true
	}
}

// WithRethrow makes Catch replace the target's error with err.
func WithRethrow(err error) Option {
	return func(c *config) {
		if err == nil {
			c.fail("WithRethrow", "substitute error must not be nil")
			return
		}
		c.rethrow = err
	}
}

// WithRule adds an argument rule for CheckArgs: the named argument
// must satisfy the rule before the target runs. The name must match an
// exported field of the input struct, checked at decoration time.
func WithRule(arg string, rule Rule) Option {
	return func(c *config) {
		if rule == nil {
			c.fail("WithRule", fmt.Sprintf("rule for argument %q must not be nil", arg))
			return
		}
		c.rules = append(c.rules, namedRule{arg: arg, rule: rule})
	}
}

// WithTheme selects the sound theme used by ChimeOnEnd. Unknown themes
// are rejected at decoration time.
func WithTheme(theme string) Option {
	return func(c *config) {
		c.theme = theme
	}
}

// WithChimer replaces the sound player used by ChimeOnEnd.
func WithChimer(ch Chimer) Option {
	return func(c *config) {
		if ch == nil {
			c.fail("WithChimer", "chimer must not be nil")
			return
		}
		c.chimer = ch
	}
}

// WithNotifier sets the notifier invoked by NotifyOnEnd after the
// target finishes. NotifyOnEnd requires one.
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		if n == nil {
			c.fail("WithNotifier", "notifier must not be nil")
			return
		}
		c.notifier = n
	}
}

// WithTimeLogging toggles elapsed-time logging in Log. Enabled by
// default.
func WithTimeLogging(enabled bool) Option {
	return func(c *config) {
		c.logTime = enabled
	}
}

// WithArgLogging toggles argument logging in Log. Enabled by default.
func WithArgLogging(enabled bool) Option {
	return func(c *config) {
		c.logArgs = enabled
	}
}

// WithErrorLogging toggles error detail in Log's failure lines.
// Enabled by default.
func WithErrorLogging(enabled bool) Option {
	return func(c *config) {
		c.logError = enabled
	}
}

// WithLogFile makes Log append each line, prefixed with the call's
// start time, to the given path.
func WithLogFile(path string) Option {
	return func(c *config) {
		if path == "" {
			c.fail("WithLogFile", "path must not be empty")
			return
		}
		c.logFile = path
	}
}

// WithResultDir sets the directory DumpResult writes into. The
// directory is created at decoration time. Default "results".
func WithResultDir(dir string) Option {
	return func(c *config) {
		if dir == "" {
			c.fail("WithResultDir", "directory must not be empty")
			return
		}
		c.resultDir = dir
	}
}

// WithArgsInName includes the call's argument values in the file name
// DumpResult writes to.
func WithArgsInName() Option {
	return func(c *config) {
		c.argsInName = true
	}
}

// WithTimestampFormat sets the time layout for the file name suffix
// DumpResult appends. Default "20060102_150405".
func WithTimestampFormat(layout string) Option {
	return func(c *config) {
		if layout == "" {
			c.fail("WithTimestampFormat", "layout must not be empty")
			return
		}
		c.timeFormat = layout
	}
}

// WithoutTimestamp drops the timestamp suffix from DumpResult file
// names.
func WithoutTimestamp() Option {
	return func(c *config) {
		c.timestamp = false
	}
}

// WithUniqueSuffix appends a random suffix to DumpResult file names so
// repeated calls never collide.
func WithUniqueSuffix() Option {
	return func(c *config) {
		c.uniqueName = true
	}
}

// WithPercentage sets the fraction of currently free memory
// MemoryLimit allows the process to address. Must be in (0, 1].
func WithPercentage(p float64) Option {
	return func(c *config) {
		if p <= 0 || p > 1 {
			c.fail("WithPercentage", fmt.Sprintf("percentage %v out of range (0, 1]", p))
			return
		}
		c.percentage = p
	}
}

// WithTries sets how many times Retry attempts the target. Must be at
// least 1.
func WithTries(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.fail("WithTries", fmt.Sprintf("tries must be at least 1, got %d", n))
			return
		}
		c.tries = n
	}
}

// WithDelay sets a fixed delay between retry attempts. Shorthand for
// WithBackoff(Constant(d)).
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		if d < 0 {
			c.fail("WithDelay", "delay must not be negative")
			return
		}
		c.backoff = Constant(d)
	}
}

// WithBackoff sets the delay strategy between retry attempts.
func WithBackoff(b Backoff) Option {
	return func(c *config) {
		if b == nil {
			c.fail("WithBackoff", "backoff must not be nil")
			return
		}
		c.backoff = b
	}
}

// WithTimeLimit sets the wall-clock budget Timeout enforces. Zero
// means no limit.
func WithTimeLimit(d time.Duration) Option {
	return func(c *config) {
		if d < 0 {
			c.fail("WithTimeLimit", "time limit must not be negative")
			return
		}
		c.timeLimit = d
	}
}

// WithShapeIn toggles input-shape logging in ShapeTracker. Disabled by
// default.
func WithShapeIn(enabled bool) Option {
	return func(c *config) {
		c.shapeIn = enabled
	}
}

// WithShapeOut toggles output-shape logging in ShapeTracker. Enabled
// by default.
func WithShapeOut(enabled bool) Option {
	return func(c *config) {
		c.shapeOut = enabled
	}
}

// WithShapeDelta toggles logging of the input/output shape difference
// in ShapeTracker. Disabled by default.
func WithShapeDelta(enabled bool) Option {
	return func(c *config) {
		c.shapeDelta = enabled
	}
}

// WithRaiseIfEmpty makes ShapeTracker fail the call when the target's
// output has an empty shape.
func WithRaiseIfEmpty() Option {
	return func(c *config) {
		c.raiseIfEmpty = true
	}
}

// WithTrackedArg names the input argument ShapeTracker inspects. The
// default is the first named argument.
func WithTrackedArg(arg string) Option {
	return func(c *config) {
		if arg == "" {
			c.fail("WithTrackedArg", "argument name must not be empty")
			return
		}
		c.trackedArg = arg
	}
}

// WithShapesIn names the input arguments MultiShapeTracker logs shapes
// for. No input shapes are logged unless set.
func WithShapesIn(args ...string) Option {
	return func(c *config) {
		if len(args) == 0 {
			c.fail("WithShapesIn", "at least one argument name is required")
			return
		}
		c.shapesIn = args
	}
}

// WithShapesOut names the output fields MultiShapeTracker logs shapes
// for. All named outputs are logged unless set.
func WithShapesOut(outs ...string) Option {
	return func(c *config) {
		if len(outs) == 0 {
			c.fail("WithShapesOut", "at least one output name is required")
			return
		}
		c.shapesOut = outs
	}
}

// WithEmptyPolicy controls when MultiShapeTracker fails the call over
// empty tracked outputs. Default EmptyNever.
func WithEmptyPolicy(p EmptyPolicy) Option {
	return func(c *config) {
		switch p {
		case EmptyNever, EmptyAny, EmptyAll:
			c.emptyPolicy = p
		default:
			c.fail("WithEmptyPolicy", fmt.Sprintf("unknown policy %d", p))
		}
	}
}
