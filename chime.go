package deco

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
)

// Chimer plays a sound when a wrapped call finishes.
type Chimer interface {
	Success()
	Error()
}

// Themes lists the sound themes accepted by WithTheme.
func Themes() []string {
	return []string{"big-sur", "chime", "mario", "material", "pokemon", "sonic", "zelda"}
}

// bellChimer is the built-in Chimer: it rings the terminal bell, twice
// on failure. The theme only selects the label echoed with the bell.
type bellChimer struct {
	theme string
	w     io.Writer
}

func (b bellChimer) Success() {
	fmt.Fprint(b.w, "\a")
}

func (b bellChimer) Error() {
	fmt.Fprint(b.w, "\a\a")
}

// ChimeOnEnd plays a success or error sound after the target finishes,
// then passes the result or error through unchanged.
func ChimeOnEnd[In, Out any](fn Func[In, Out], opts ...Option) (Func[In, Out], error) {
	cfg := newConfig(funcNameOf(fn))
	cfg.theme = "chime"
	if err := cfg.apply(opts); err != nil {
		return nil, err
	}
	if !slices.Contains(Themes(), cfg.theme) {
		return nil, &ConfigError{
			Option: "WithTheme",
			Reason: fmt.Sprintf("unknown theme %q", cfg.theme),
		}
	}

	chimer := cfg.chimer
	if chimer == nil {
		chimer = bellChimer{theme: cfg.theme, w: os.Stdout}
	}

	return func(ctx context.Context, in In) (Out, error) {
		out, err := fn(ctx, in)
		if err != nil {
			chimer.Error()
			return out, err
		}
		chimer.Success()
		return out, nil
	}, nil
}
