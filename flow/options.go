package flow

import (
	"io"
	"log/slog"
)

// Option configures Simulate and Estimate.
type Option func(*options)

type options struct {
	workers int
	logger  *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{workers: 1, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWorkers runs up to n per-source searches concurrently; n ≤ 1 is
// sequential. Panics on a negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("flow: WithWorkers requires n ≥ 0")
	}
	return func(o *options) { o.workers = n }
}

// WithLogger receives one record per Estimate iteration. nil keeps the
// discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
