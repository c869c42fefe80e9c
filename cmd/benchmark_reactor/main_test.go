package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should load benchmark configs from yaml
func TestLoadConfigs(t *testing.T) {
	cfgs, err := loadConfigs("testdata/benchmarks.yaml")
	require.NoError(t, err)
	require.Len(t, cfgs, 2)

	assert.Equal(t, benchmarkTestConfig{
		Name:       "tiny",
		Records:    2,
		Fields:     3,
		Readers:    2,
		Watchers:   1,
		Iterations: 60,
	}, cfgs[0])
	assert.True(t, cfgs[1].Scheduled)
	assert.Equal(t, "1x2 fan-out 4 scheduled", cfgs[1].title())
}

// should reject broken configs
func TestLoadConfigsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := loadConfigs(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "reading benchmark config")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("benchmarks: []\n"), 0644))
	_, err = loadConfigs(empty)
	assert.ErrorContains(t, err, "has no benchmarks")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("benchmarks:\n  - name: x\n    records: 0\n    fields: 1\n"), 0644))
	_, err = loadConfigs(bad)
	assert.ErrorContains(t, err, "must be positive")
}

// should notify every reader and watcher once per write
func TestRunBenchmarkCounts(t *testing.T) {
	cfgs, err := loadConfigs("testdata/benchmarks.yaml")
	require.NoError(t, err)

	for _, cfg := range append(cfgs, defaultConfigs[0]) {
		cfg.Iterations = min(cfg.Iterations, 1_000)
		result, err := runBenchmark(cfg)
		require.NoError(t, err, cfg.Name)
		assert.Equal(t, cfg.expectedRuns(), result.runs, cfg.Name)
	}
}
