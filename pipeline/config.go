// Package pipeline: the YAML-backed scenario configuration.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voltkern/voltkern/kernel"
	"github.com/voltkern/voltkern/landmark"
)

// DefaultLandmarkCount applies when a config file leaves landmark_count
// unset.
const DefaultLandmarkCount = 8

// ErrConfig indicates a configuration value outside its documented range.
var ErrConfig = errors.New("pipeline: invalid configuration")

// Config is the scenario configuration surface. The YAML keys are the
// stable external contract; zero-valued fields of a hand-built Config do
// NOT auto-default — start from DefaultConfig or LoadConfig.
type Config struct {
	// LandmarkCount is the number of landmark buses to select.
	LandmarkCount int `yaml:"landmark_count"`
	// RegularizationMu is the Laplacian shift µ > 0.
	RegularizationMu float64 `yaml:"regularization_mu"`
	// ZoneQuotas demands an exact landmark count per zone; empty means
	// unconstrained selection. Zone labels come from the Network.
	ZoneQuotas map[int]int `yaml:"zone_quotas,omitempty"`
	// SwapRefinementPasses bounds local swap refinement; 0 disables it.
	SwapRefinementPasses int `yaml:"swap_refinement_passes"`
	// InversionTolerance is the largest accepted condition number for the
	// kernel and landmark-submatrix inversions.
	InversionTolerance float64 `yaml:"inversion_tolerance"`
}

// DefaultConfig returns the documented defaults of every stage.
func DefaultConfig() Config {
	return Config{
		LandmarkCount:        DefaultLandmarkCount,
		RegularizationMu:     kernel.DefaultMu,
		SwapRefinementPasses: landmark.DefaultSwapPasses,
		InversionTolerance:   kernel.DefaultInversionTolerance,
	}
}

// LoadConfig reads a YAML config file over DefaultConfig: keys absent from
// the file keep their defaults, present keys override them. The result is
// validated before it is returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pipeline: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pipeline: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("pipeline: encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("pipeline: write config: %w", err)
	}
	return nil
}

// Validate checks every field against its documented range. Whether the
// quota sum matches the landmark count is the selector's call, made
// against the actual zone labels.
func (c Config) Validate() error {
	if c.LandmarkCount <= 0 {
		return fmt.Errorf("%w: landmark_count %d, want > 0", ErrConfig, c.LandmarkCount)
	}
	if math.IsNaN(c.RegularizationMu) || math.IsInf(c.RegularizationMu, 0) || c.RegularizationMu <= 0 {
		return fmt.Errorf("%w: regularization_mu %v, want finite > 0", ErrConfig, c.RegularizationMu)
	}
	if c.SwapRefinementPasses < 0 {
		return fmt.Errorf("%w: swap_refinement_passes %d, want >= 0", ErrConfig, c.SwapRefinementPasses)
	}
	if math.IsNaN(c.InversionTolerance) || math.IsInf(c.InversionTolerance, 0) || c.InversionTolerance <= 0 {
		return fmt.Errorf("%w: inversion_tolerance %v, want finite > 0", ErrConfig, c.InversionTolerance)
	}
	for z, q := range c.ZoneQuotas {
		if z < 0 {
			return fmt.Errorf("%w: zone_quotas key %d, want >= 0", ErrConfig, z)
		}
		if q <= 0 {
			return fmt.Errorf("%w: zone_quotas[%d] = %d, want > 0", ErrConfig, z, q)
		}
	}
	return nil
}
