package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"KillZone/internal/logging"
	"KillZone/internal/model"
	"KillZone/internal/sweep"
)

// Config holds all application configuration.
type Config struct {
	Model    ModelConfig `yaml:"model"`
	Sweep    SweepConfig `yaml:"sweep"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Logging logging.Config `yaml:"logging"`
}

// ModelConfig selects the variant and its parameters. Parameters left out of
// the file keep their defaults; zero is a valid explicit value.
type ModelConfig struct {
	Variant    string   `yaml:"variant"`
	U          *float64 `yaml:"u"`
	B          *float64 `yaml:"B"`
	SmallDelta *float64 `yaml:"small_delta"`
	Delta      *float64 `yaml:"delta"`
	K          *float64 `yaml:"K"`
	Beta       *float64 `yaml:"beta"`
}

// SweepConfig bounds the equilibrium map. An axis whose min and max are both
// zero is derived from the model's thresholds.
type SweepConfig struct {
	AssetsMin   float64 `yaml:"assets_min"`
	AssetsMax   float64 `yaml:"assets_max"`
	AssetsSteps int     `yaml:"assets_steps"`
	CostMin     float64 `yaml:"cost_min"`
	CostMax     float64 `yaml:"cost_max"`
	CostSteps   int     `yaml:"cost_steps"`
	Workers     int     `yaml:"workers"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("KILLZONE_VARIANT"); v != "" {
		cfg.Model.Variant = v
	}
	if v := os.Getenv("KILLZONE_BETA"); v != "" {
		beta, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse KILLZONE_BETA: %w", err)
		}
		cfg.Model.Beta = &beta
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	// Defaults
	if cfg.Model.Variant == "" {
		cfg.Model.Variant = string(model.VariantBase)
	}
	if cfg.Sweep.AssetsSteps == 0 {
		cfg.Sweep.AssetsSteps = 100
	}
	if cfg.Sweep.CostSteps == 0 {
		cfg.Sweep.CostSteps = 100
	}
	if cfg.Sweep.Workers == 0 {
		cfg.Sweep.Workers = 4
	}
	def := logging.DefaultConfig()
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Format
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = def.Output
	}

	return cfg, nil
}

// Parameters resolves the model parameters, filling in defaults for the ones not set.
func (m ModelConfig) Parameters() model.Parameters {
	p := model.DefaultParameters()
	set := func(dst, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.U, m.U)
	set(&p.B, m.B)
	set(&p.SmallDelta, m.SmallDelta)
	set(&p.Delta, m.Delta)
	set(&p.K, m.K)
	set(&p.Beta, m.Beta)
	return p
}

// Validate checks the fields that do not depend on the model itself.
// Parameter preconditions are checked when the model is built.
func (c *Config) Validate() error {
	if _, err := model.ParseVariant(c.Model.Variant); err != nil {
		return fmt.Errorf("model.variant: %w", err)
	}
	if c.Sweep.AssetsSteps < 1 || c.Sweep.CostSteps < 1 {
		return fmt.Errorf("sweep steps must be positive")
	}
	if c.Sweep.AssetsSteps > sweep.MaxPoints/c.Sweep.CostSteps {
		return fmt.Errorf("sweep grid of %d x %d points exceeds %d", c.Sweep.AssetsSteps, c.Sweep.CostSteps, sweep.MaxPoints)
	}
	if c.Sweep.AssetsMax < c.Sweep.AssetsMin {
		return fmt.Errorf("sweep.assets_max must be >= sweep.assets_min")
	}
	if c.Sweep.CostMax < c.Sweep.CostMin {
		return fmt.Errorf("sweep.cost_max must be >= sweep.cost_min")
	}
	if c.Sweep.Workers < 1 {
		return fmt.Errorf("sweep.workers must be positive")
	}
	return nil
}
