package flow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/streetgraph/edgeset"
	"github.com/katalvlaran/streetgraph/probe"
)

// Result is the outcome of an estimation run.
type Result struct {
	Network    *Network     // final flows and lanes
	Iterations []Statistics // one entry per iteration
}

// Estimate estimates the flow on connections between probes, starting from
// zero flow and one lane per arc, for the given number of iterations.
// Zero iterations return the initial network.
func Estimate(probes []probe.Probe, connections []edgeset.Edge, iterations int, opts ...Option) (*Result, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: iterations %d", ErrInvalidInput, iterations)
	}
	if err := probe.Validate(probes, 0); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	current, err := NewNetwork(len(probes), connections)
	if err != nil {
		return nil, err
	}

	res := &Result{Network: current, Iterations: make([]Statistics, 0, iterations)}
	for i := 0; i < iterations; i++ {
		sim, err := Simulate(current, probes, opts...)
		if err != nil {
			return nil, fmt.Errorf("flow: iteration %d: %w", i, err)
		}
		stats, err := Update(sim, current)
		if err != nil {
			return nil, fmt.Errorf("flow: iteration %d: %w", i, err)
		}
		res.Iterations = append(res.Iterations, stats)
		o.logger.LogAttrs(context.Background(), slog.LevelInfo, "flow iteration",
			slog.Int("iteration", i+1),
			slog.Int("of", iterations),
			slog.Float64("min", stats.Min),
			slog.Float64("max", stats.Max),
			slog.Float64("mean", stats.Mean),
			slog.Float64("std", stats.Std),
		)
	}

	return res, nil
}
