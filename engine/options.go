package engine

import "log/slog"

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSteps seeds the engine with an initial ordered step list, typically
// the host defaults that extensions then augment.
func WithSteps(steps []Step) Option {
	return func(e *Engine) {
		e.steps = steps
	}
}
