// Package config loads the YAML run configuration of the streetgraph tool.
//
// A configuration file has three sections; every key is optional and falls
// back to Default():
//
//	topology:
//	  regularity_steps: 1000
//	  efficiency_steps: 100
//	  seed: 13
//	  workers: 4
//	  sampler: population   # population | uniform | importance
//	  sample_ratio: 0.1     # uniform/importance draws per vertex
//	flow:
//	  iterations: 10
//	  workers: 4
//	log:
//	  level: info           # debug | info | warn | error
//	  format: text          # text | json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Sampler kinds.
const (
	SamplerPopulation = "population"
	SamplerUniform    = "uniform"
	SamplerImportance = "importance"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full run configuration.
type Config struct {
	Topology TopologyConfig `yaml:"topology"`
	Flow     FlowConfig     `yaml:"flow"`
	Log      LogConfig      `yaml:"log"`
}

// TopologyConfig drives topology synthesis.
type TopologyConfig struct {
	RegularitySteps int     `yaml:"regularity_steps"`
	EfficiencySteps int     `yaml:"efficiency_steps"`
	Seed            int64   `yaml:"seed"`
	Workers         int     `yaml:"workers"`
	Sampler         string  `yaml:"sampler"`
	SampleRatio     float64 `yaml:"sample_ratio"`
}

// FlowConfig drives flow estimation.
type FlowConfig struct {
	Iterations int `yaml:"iterations"`
	Workers    int `yaml:"workers"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Topology: TopologyConfig{
			RegularitySteps: 1000,
			EfficiencySteps: 100,
			Seed:            13,
			Workers:         1,
			Sampler:         SamplerPopulation,
			SampleRatio:     0.1,
		},
		Flow: FlowConfig{Iterations: 10, Workers: 1},
		Log:  LogConfig{Level: "info", Format: FormatText},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Topology.RegularitySteps < 0:
		return fmt.Errorf("%w: topology.regularity_steps=%d", ErrInvalidConfig, c.Topology.RegularitySteps)
	case c.Topology.EfficiencySteps < 0:
		return fmt.Errorf("%w: topology.efficiency_steps=%d", ErrInvalidConfig, c.Topology.EfficiencySteps)
	case c.Topology.Workers < 0:
		return fmt.Errorf("%w: topology.workers=%d", ErrInvalidConfig, c.Topology.Workers)
	case c.Flow.Iterations < 0:
		return fmt.Errorf("%w: flow.iterations=%d", ErrInvalidConfig, c.Flow.Iterations)
	case c.Flow.Workers < 0:
		return fmt.Errorf("%w: flow.workers=%d", ErrInvalidConfig, c.Flow.Workers)
	}
	switch c.Topology.Sampler {
	case SamplerPopulation:
	case SamplerUniform, SamplerImportance:
		if !(c.Topology.SampleRatio > 0) {
			return fmt.Errorf("%w: topology.sample_ratio=%g", ErrInvalidConfig, c.Topology.SampleRatio)
		}
	default:
		return fmt.Errorf("%w: topology.sampler=%q", ErrInvalidConfig, c.Topology.Sampler)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log.format=%q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// SlogLevel maps Level onto slog.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level=%q", ErrInvalidConfig, l.Level)
	}

	return lvl, nil
}
