package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_TopologyThenFlow(t *testing.T) {
	dir := t.TempDir()
	probes := writeFile(t, dir, "probes.json", `[
		{"x": 0, "y": 0, "population": 400},
		{"x": 1000, "y": 0, "population": 900},
		{"x": 0, "y": 1000, "population": 300},
		{"x": 1000, "y": 1000, "population": 700},
		{"x": 500, "y": 1800, "population": 100}
	]`)
	cfg := writeFile(t, dir, "run.yaml", "topology:\n  regularity_steps: 20\n  efficiency_steps: 5\nlog:\n  format: json\n")
	topoPath := filepath.Join(dir, "topology.json")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"topology", "-config", cfg, "-probes", probes, "-out", topoPath, "-seed", "4"}, &stdout, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(topoPath)
	require.NoError(t, err)
	var topo topologyJSON
	require.NoError(t, json.Unmarshal(data, &topo))
	assert.NotEmpty(t, topo.RunID)
	assert.NotEmpty(t, topo.Connections)
	assert.Contains(t, stderr.String(), `"msg":"topology computed"`)

	stdout.Reset()
	err = run(context.Background(), []string{"flow", "-probes", probes, "-topology", topoPath, "-iterations", "2"}, &stdout, &stderr)
	require.NoError(t, err)
	var fl flowJSON
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &fl))
	assert.Len(t, fl.Arcs, 2*len(topo.Connections))
	assert.Len(t, fl.Iterations, 2)
}

func TestRun_ProbesFeedTopology(t *testing.T) {
	dir := t.TempDir()
	probesPath := filepath.Join(dir, "probes.json")
	var stdout, stderr bytes.Buffer
	ctx := context.Background()

	require.NoError(t, run(ctx, []string{"probes", "-city-size", "2700", "-seed", "5", "-out", probesPath}, &stdout, &stderr))
	data, err := os.ReadFile(probesPath)
	require.NoError(t, err)
	var probes []probeJSON
	require.NoError(t, json.Unmarshal(data, &probes))
	require.Greater(t, len(probes), 3)

	cfg := writeFile(t, dir, "run.yaml", "topology:\n  regularity_steps: 5\n  efficiency_steps: 1\n")
	require.NoError(t, run(ctx, []string{"topology", "-config", cfg, "-probes", probesPath}, &stdout, &stderr))
	var topo topologyJSON
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &topo))
	assert.NotEmpty(t, topo.Connections)

	assert.Error(t, run(ctx, []string{"probes"}, &stdout, &stderr))
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := context.Background()
	assert.Error(t, run(ctx, nil, &stdout, &stderr))
	assert.Error(t, run(ctx, []string{"bogus"}, &stdout, &stderr))
	assert.Error(t, run(ctx, []string{"topology"}, &stdout, &stderr))
	assert.Error(t, run(ctx, []string{"topology", "-efficiency-steps", "-1", "-probes", "x.json"}, &stdout, &stderr))
}

type closeFailer struct {
	bytes.Buffer
	closed bool
}

var errDiskFull = errors.New("disk full")

func (c *closeFailer) Close() error {
	c.closed = true
	return errDiskFull
}

func TestEncodeAndClose_ReportsCloseError(t *testing.T) {
	w := &closeFailer{}
	err := encodeAndClose(w, map[string]int{"n": 1})
	require.ErrorIs(t, err, errDiskFull)
	assert.True(t, w.closed)
	assert.Contains(t, w.String(), `"n": 1`)

	// an encode failure wins over the close failure
	w = &closeFailer{}
	err = encodeAndClose(w, func() {})
	require.Error(t, err)
	assert.NotErrorIs(t, err, errDiskFull)
	assert.True(t, w.closed)
}

func TestWriteJSON_BadPath(t *testing.T) {
	err := writeJSON(filepath.Join(t.TempDir(), "missing", "out.json"), nil, 1)
	assert.Error(t, err)
}
