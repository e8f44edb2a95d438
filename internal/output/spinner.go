package output

import (
	"context"
	"sync"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title    string
	disabled bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithDisabled runs the action without a spinner when disabled is true.
func WithDisabled(disabled bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.disabled = disabled
	}
}

// RunWithSpinner runs action while a spinner is shown on a terminal. It
// returns only after action has finished, even when the spinner is quit early
// or fails to start, and action runs exactly once.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.disabled || !IsTTY() {
		return action()
	}

	run := sync.OnceValue(action)

	err := spinner.New().
		Title(cfg.title).
		Context(ctx).
		Action(func() { _ = run() }).
		Run()
	if err != nil {
		Debug("spinner stopped", "error", err)
	}

	return run()
}
