package optimize

import (
	"context"
	"log/slog"
)

// Phase names an optimizer.
type Phase string

const (
	PhaseRegularity Phase = "regularity"
	PhaseEfficiency Phase = "efficiency"
)

// Progress describes one finished iteration.
type Progress struct {
	Phase      Phase
	Iteration  int // 0-based
	Iterations int
	Score      float64 // score of the mutated candidate
	BestScore  float64
	Operations int // edge toggles drawn this iteration
	EdgeCount  int // active edges after the accept/reject decision
	Accepted   bool
}

// Reporter observes optimizer progress. Report runs on the optimizer's
// goroutine and must not block.
type Reporter interface {
	Report(Progress)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Progress)

// Report calls f(p).
func (f ReporterFunc) Report(p Progress) { f(p) }

// NopReporter discards progress.
type NopReporter struct{}

// Report does nothing.
func (NopReporter) Report(Progress) {}

type logReporter struct {
	logger *slog.Logger
	last   map[Phase]int // last decile logged per phase
}

// LogReporter logs progress at info level every 10% of each schedule.
// A nil logger uses slog.Default().
func LogReporter(logger *slog.Logger) Reporter {
	if logger == nil {
		logger = slog.Default()
	}

	return &logReporter{logger: logger, last: make(map[Phase]int)}
}

func (r *logReporter) Report(p Progress) {
	if p.Iterations <= 0 {
		return
	}
	if p.Iteration == 0 {
		r.last[p.Phase] = 0
	}
	decile := (p.Iteration + 1) * 10 / p.Iterations
	if decile <= r.last[p.Phase] {
		return
	}
	r.last[p.Phase] = decile
	r.logger.LogAttrs(context.Background(), slog.LevelInfo, "optimizer progress",
		slog.String("phase", string(p.Phase)),
		slog.Int("percent", decile*10),
		slog.Int("iteration", p.Iteration+1),
		slog.Float64("score", p.BestScore),
		slog.Int("operations", p.Operations),
		slog.Int("edges", p.EdgeCount),
	)
}
