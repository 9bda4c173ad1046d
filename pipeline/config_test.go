// File: pipeline/config_test.go
package pipeline_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltkern/voltkern/kernel"
	"github.com/voltkern/voltkern/pipeline"
)

// writeConfig drops YAML content into a fresh temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voltkern.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadConfig_PartialKeepsDefaults sets one key and expects the rest to
// keep their documented defaults.
func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := pipeline.LoadConfig(writeConfig(t, "landmark_count: 12\n"))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.LandmarkCount)
	assert.Equal(t, kernel.DefaultMu, cfg.RegularizationMu)
	assert.Equal(t, kernel.DefaultInversionTolerance, cfg.InversionTolerance)
	assert.Zero(t, cfg.SwapRefinementPasses)
	assert.Empty(t, cfg.ZoneQuotas)
}

// TestLoadConfig_FullSurface parses every key, including integer-keyed
// zone quotas.
func TestLoadConfig_FullSurface(t *testing.T) {
	cfg, err := pipeline.LoadConfig(writeConfig(t, `landmark_count: 12
regularization_mu: 0.01
zone_quotas:
  0: 4
  1: 4
  2: 4
swap_refinement_passes: 2
inversion_tolerance: 1.0e+10
`))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.LandmarkCount)
	assert.Equal(t, 0.01, cfg.RegularizationMu)
	assert.Equal(t, map[int]int{0: 4, 1: 4, 2: 4}, cfg.ZoneQuotas)
	assert.Equal(t, 2, cfg.SwapRefinementPasses)
	assert.Equal(t, 1e10, cfg.InversionTolerance)
}

// TestLoadConfig_MissingFile surfaces the underlying not-exist error.
func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := pipeline.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadConfig_ParseError rejects malformed YAML with a parse context.
func TestLoadConfig_ParseError(t *testing.T) {
	_, err := pipeline.LoadConfig(writeConfig(t, "landmark_count: [oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

// TestLoadConfig_RangeError validates loaded values before returning them.
func TestLoadConfig_RangeError(t *testing.T) {
	_, err := pipeline.LoadConfig(writeConfig(t, "landmark_count: -1\n"))
	assert.ErrorIs(t, err, pipeline.ErrConfig)
}

// TestConfig_Validate table-drives every documented field range.
func TestConfig_Validate(t *testing.T) {
	require.NoError(t, pipeline.DefaultConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*pipeline.Config)
	}{
		{"zero count", func(c *pipeline.Config) { c.LandmarkCount = 0 }},
		{"negative mu", func(c *pipeline.Config) { c.RegularizationMu = -1e-3 }},
		{"NaN mu", func(c *pipeline.Config) { c.RegularizationMu = math.NaN() }},
		{"zero tolerance", func(c *pipeline.Config) { c.InversionTolerance = 0 }},
		{"inf tolerance", func(c *pipeline.Config) { c.InversionTolerance = math.Inf(1) }},
		{"negative passes", func(c *pipeline.Config) { c.SwapRefinementPasses = -1 }},
		{"zero quota", func(c *pipeline.Config) { c.ZoneQuotas = map[int]int{0: 0} }},
		{"negative zone key", func(c *pipeline.Config) { c.ZoneQuotas = map[int]int{-1: 4} }},
	}
	for _, tc := range cases {
		cfg := pipeline.DefaultConfig()
		tc.mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), pipeline.ErrConfig, tc.name)
	}
}

// TestConfig_SaveRoundTrip writes a configuration out and reads the same
// values back.
func TestConfig_SaveRoundTrip(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.LandmarkCount = 12
	cfg.SwapRefinementPasses = 3
	cfg.ZoneQuotas = map[int]int{0: 4, 1: 8}

	path := filepath.Join(t.TempDir(), "roundtrip.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := pipeline.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
