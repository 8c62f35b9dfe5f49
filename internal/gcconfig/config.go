// Package gcconfig loads collector threshold/ratio overrides from an
// optional TOML file using struct tags.
package gcconfig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the default config file name looked up by LoadDefault.
const FileName = "gcollector.toml"

// Thresholds mirrors the facade's ConfigureThresholds parameters.
type Thresholds struct {
	YoungThresholdBytes uint64  `toml:"young_threshold_bytes"`
	OldThresholdBytes   uint64  `toml:"old_threshold_bytes"`
	YoungRatio          float64 `toml:"young_ratio"`
	OldRatio            float64 `toml:"old_ratio"`
}

// Default returns the built-in defaults: 4 MiB young, 16 MiB old,
// 0.6/0.8 ratios.
func Default() Thresholds {
	return Thresholds{
		YoungThresholdBytes: 4 * 1024 * 1024,
		OldThresholdBytes:   16 * 1024 * 1024,
		YoungRatio:          0.6,
		OldRatio:            0.8,
	}
}

// Load reads and parses a threshold config file.
func Load(path string) (Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("gcconfig: read %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Thresholds{}, fmt.Errorf("gcconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads FileName from the current directory. A missing file is
// not an error: the built-in defaults are returned unchanged.
func LoadDefault() Thresholds {
	cfg, err := Load(FileName)
	if err != nil {
		return Default()
	}
	return cfg
}
