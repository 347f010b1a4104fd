package deco

import "context"

// Notifier announces that a wrapped call has finished. Implementations
// decide the channel: a desktop notification, a chat message, a test
// recorder.
type Notifier interface {
	Notify()
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func()

// Notify implements Notifier.
func (f NotifierFunc) Notify() {
	f()
}

// NotifyOnEnd invokes the notifier configured with WithNotifier after
// the target finishes, whether it succeeded or failed, then passes the
// result or error through unchanged. A notifier is required and
// validated at decoration time.
func NotifyOnEnd[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}
	if cfg.notifier == nil {
		return nil, &ConfigError{Option: "WithNotifier", Reason: "a notifier is required"}
	}

	notifier := cfg.notifier

	return func(ctx context.Context, in In) (Out, error) {
		defer notifier.Notify()
		return fn(ctx, in)
	}, nil
}
