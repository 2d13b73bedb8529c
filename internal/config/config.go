package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the calculator config path for harness callers.
const EnvConfigPath = "GEN1CALC_CONFIG"

// Calculator holds configuration for batch damage evaluation.
type Calculator struct {
	// Roll variant used when a request does not pick one: min, average, max, random.
	Roll string `yaml:"roll"`

	// Seed makes RollRandom reproducible. Nil means the process-wide source.
	Seed *uint64 `yaml:"seed"`

	// Workers bounds concurrent evaluations (errgroup limit).
	Workers int `yaml:"workers"`
}

// DefaultCalculator returns Calculator config with sensible defaults.
func DefaultCalculator() Calculator {
	return Calculator{
		Roll:    "average",
		Workers: runtime.NumCPU(),
	}
}

// Validate checks values that cannot be fixed by defaults.
func (c Calculator) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	return nil
}

// LoadCalculator loads calculator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadCalculator(path string) (Calculator, error) {
	cfg := DefaultCalculator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// PathFromEnv returns the config path from EnvConfigPath, or fallback.
func PathFromEnv(fallback string) string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return fallback
}
