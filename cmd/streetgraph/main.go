// Command streetgraph synthesizes a street network from population probes
// and estimates the traffic on it.
//
// Usage:
//
//	streetgraph probes   -city-size 3000 [-seed N] [-out probes.json]
//	streetgraph topology -probes probes.json [-config run.yaml] [-seed N] [-out topology.json]
//	streetgraph flow     -probes probes.json -topology topology.json [-config run.yaml] [-iterations N]
//
// Probes are a JSON array of {"x", "y", "z", "population"} objects. Results
// are written as JSON to -out (stdout by default); logs go to stderr.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/streetgraph"
	"github.com/katalvlaran/streetgraph/config"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}
	switch args[0] {
	case "probes":
		return runProbes(args[1:], stdout, stderr)
	case "topology":
		return runTopology(ctx, args[1:], stdout, stderr)
	case "flow":
		return runFlow(ctx, args[1:], stdout, stderr)
	default:
		return usageError(fmt.Sprintf("unknown command %q", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: streetgraph <probes|topology|flow> [flags]", msg)
}

type probeJSON struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Population float64 `json:"population"`
}

type connectionJSON struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type topologyJSON struct {
	RunID           string           `json:"run_id"`
	Score           float64          `json:"score"`
	RegularityScore float64          `json:"regularity_score"`
	ComponentCount  int              `json:"component_count"`
	Connections     []connectionJSON `json:"connections"`
}

type arcJSON struct {
	From  int     `json:"from"`
	To    int     `json:"to"`
	Flow  float64 `json:"flow"`
	Lanes int     `json:"lanes"`
}

type statsJSON struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

type flowJSON struct {
	RunID      string      `json:"run_id"`
	Arcs       []arcJSON   `json:"arcs"`
	Iterations []statsJSON `json:"iterations"`
}

func runProbes(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("probes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	citySize := fs.Float64("city-size", 0, "city width in metres (required)")
	seed := fs.Int64("seed", 0, "rng seed (0 selects the default)")
	outPath := fs.String("out", "", "output path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !(*citySize > 0) {
		return usageError("probes: -city-size must be positive")
	}

	probes, err := streetgraph.GenerateProbes(*citySize, *seed)
	if err != nil {
		return err
	}
	out := make([]probeJSON, len(probes))
	for i, p := range probes {
		out[i] = probeJSON{X: p.Location.X, Y: p.Location.Y, Z: p.Location.Z, Population: p.Population}
	}

	return writeJSON(*outPath, stdout, out)
}

func runTopology(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("topology", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional YAML config path")
	probesPath := fs.String("probes", "", "probe JSON path (required)")
	outPath := fs.String("out", "", "output path (default stdout)")
	seed := fs.Int64("seed", 0, "rng seed (overrides config)")
	regularity := fs.Int("regularity-steps", 0, "regularity iterations (overrides config)")
	efficiency := fs.Int("efficiency-steps", 0, "efficiency iterations (overrides config)")
	workers := fs.Int("workers", 0, "shortest-path workers (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setFlags := visited(fs)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if setFlags["seed"] {
		cfg.Topology.Seed = *seed
	}
	if setFlags["regularity-steps"] {
		cfg.Topology.RegularitySteps = *regularity
	}
	if setFlags["efficiency-steps"] {
		cfg.Topology.EfficiencySteps = *efficiency
	}
	if setFlags["workers"] {
		cfg.Topology.Workers = *workers
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	probes, err := readProbes(*probesPath)
	if err != nil {
		return err
	}

	kind, ratio := samplerKind(cfg.Topology)
	res, err := streetgraph.ComputeProbeTopology(probes,
		streetgraph.WithRegularitySteps(cfg.Topology.RegularitySteps),
		streetgraph.WithEfficiencySteps(cfg.Topology.EfficiencySteps),
		streetgraph.WithSeed(cfg.Topology.Seed),
		streetgraph.WithWorkers(cfg.Topology.Workers),
		streetgraph.WithSamplerKind(kind, ratio),
		streetgraph.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := topologyJSON{
		RunID:           res.RunID,
		Score:           res.Score,
		RegularityScore: res.RegularityScore,
		ComponentCount:  res.ComponentCount,
		Connections:     make([]connectionJSON, len(res.Connections)),
	}
	for i, c := range res.Connections {
		out.Connections[i] = connectionJSON{From: c.U, To: c.V}
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "writing topology", slog.Int("connections", len(out.Connections)))

	return writeJSON(*outPath, stdout, out)
}

func runFlow(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("flow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional YAML config path")
	probesPath := fs.String("probes", "", "probe JSON path (required)")
	topologyPath := fs.String("topology", "", "topology JSON path from the topology command (required)")
	outPath := fs.String("out", "", "output path (default stdout)")
	iterations := fs.Int("iterations", 0, "flow iterations (overrides config)")
	workers := fs.Int("workers", 0, "shortest-path workers (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setFlags := visited(fs)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if setFlags["iterations"] {
		cfg.Flow.Iterations = *iterations
	}
	if setFlags["workers"] {
		cfg.Flow.Workers = *workers
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	probes, err := readProbes(*probesPath)
	if err != nil {
		return err
	}
	if *topologyPath == "" {
		return usageError("flow: -topology is required")
	}
	var topo topologyJSON
	if err = readJSON(*topologyPath, &topo); err != nil {
		return err
	}
	conns := make([]streetgraph.Connection, len(topo.Connections))
	for i, c := range topo.Connections {
		conns[i] = streetgraph.Connection{U: c.From, V: c.To}
	}

	res, err := streetgraph.EstimateProbeTopologyFlow(probes, conns, cfg.Flow.Iterations,
		streetgraph.WithWorkers(cfg.Flow.Workers),
		streetgraph.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := flowJSON{
		RunID:      res.RunID,
		Arcs:       make([]arcJSON, len(res.Arcs)),
		Iterations: make([]statsJSON, len(res.Iterations)),
	}
	for i, a := range res.Arcs {
		out.Arcs[i] = arcJSON{From: a.From, To: a.To, Flow: a.Flow, Lanes: a.LaneCount}
	}
	for i, s := range res.Iterations {
		out.Iterations[i] = statsJSON{Min: s.Min, Max: s.Max, Mean: s.Mean, Std: s.Std}
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "writing flow", slog.Int("arcs", len(out.Arcs)))

	return writeJSON(*outPath, stdout, out)
}

func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return set
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: level}
	if cfg.Format == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func samplerKind(cfg config.TopologyConfig) (streetgraph.SamplerKind, float64) {
	ratio := cfg.SampleRatio
	if !(ratio > 0) {
		ratio = streetgraph.DefaultSampleRatio
	}
	switch cfg.Sampler {
	case config.SamplerUniform:
		return streetgraph.SamplerUniform, ratio
	case config.SamplerImportance:
		return streetgraph.SamplerImportance, ratio
	default:
		return streetgraph.SamplerPopulation, ratio
	}
}

func readProbes(path string) ([]streetgraph.Probe, error) {
	if path == "" {
		return nil, usageError("-probes is required")
	}
	var raw []probeJSON
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}
	probes := make([]streetgraph.Probe, len(raw))
	for i, p := range raw {
		probes[i] = streetgraph.Probe{Location: r3.Vec{X: p.X, Y: p.Y, Z: p.Z}, Population: p.Population}
	}

	return probes, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}

func writeJSON(path string, stdout io.Writer, v any) error {
	if path == "" {
		return encodeJSON(stdout, v)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = encodeAndClose(f, v); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// encodeAndClose always closes wc; a close failure after a clean encode is
// reported, since buffered data may not have reached the file.
func encodeAndClose(wc io.WriteCloser, v any) error {
	err := encodeJSON(wc, v)
	if cerr := wc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close: %w", cerr)
	}

	return err
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
