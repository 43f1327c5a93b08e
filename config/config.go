// Package config loads and validates the module configuration from yaml or
// json files with environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/carbonshift/ren247/core/battery"
	"github.com/carbonshift/ren247/core/sizing"
)

// Battery model identifiers accepted by SizingConfig.Model.
const (
	ModelIdeal = "ideal"
	ModelCLC   = "clc"
)

type Config struct {
	Battery battery.CLCParams `json:"battery"`
	Sizing  SizingConfig      `json:"sizing"`
	Inputs  InputsConfig      `json:"inputs"`
	Output  OutputConfig      `json:"output"`
}

// SizingConfig tunes the capacity estimators.
type SizingConfig struct {
	// Model selects the battery physics for the binary-search cross-check.
	Model string `json:"model"`
	// MaxSizeMWh bounds the binary search. Zero derives the bound from the
	// series (total deficit energy).
	MaxSizeMWh float64 `json:"max_size_mwh"`
	// ToleranceMWh is the search convergence width.
	ToleranceMWh float64 `json:"tolerance_mwh"`
	// WindowSteps is the rolling window of the infeasibility check.
	WindowSteps int `json:"window_steps"`
}

// InputsConfig names the CSV files holding the two series.
type InputsConfig struct {
	RenewablePath string `json:"renewable_path"`
	FacilityPath  string `json:"facility_path"`
}

// OutputConfig controls report export.
type OutputConfig struct {
	// Format is "json" or "csv".
	Format string `json:"format"`
	// Path is the report destination; empty writes to stdout.
	Path string `json:"path"`
}

// Options converts the sizing section to estimator options.
func (c SizingConfig) Options() sizing.Options {
	return sizing.Options{Tolerance: c.ToleranceMWh, Window: c.WindowSteps}
}

// SetDefaults fills unset sections. An omitted battery section selects the
// lithium NMC coefficients.
func (c *Config) SetDefaults() {
	if c.Battery == (battery.CLCParams{}) {
		c.Battery = battery.NMCParams()
	}
	if c.Battery.GrowStep == 0 {
		c.Battery.GrowStep = battery.DefaultGrowStep
	}
	if c.Sizing.Model == "" {
		c.Sizing.Model = ModelIdeal
	}
	if c.Sizing.ToleranceMWh == 0 {
		c.Sizing.ToleranceMWh = sizing.DefaultTolerance
	}
	if c.Sizing.WindowSteps == 0 {
		c.Sizing.WindowSteps = sizing.DefaultWindow
	}
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}
}

// Validate checks the battery coefficients and enum fields.
func (c *Config) Validate() error {
	if err := c.Battery.Validate(); err != nil {
		return fmt.Errorf("battery: %w", err)
	}
	if c.Sizing.Model != ModelIdeal && c.Sizing.Model != ModelCLC {
		return fmt.Errorf("sizing: unknown model %q", c.Sizing.Model)
	}
	if c.Sizing.ToleranceMWh < 0 {
		return fmt.Errorf("sizing: tolerance must not be negative")
	}
	if c.Sizing.MaxSizeMWh < 0 {
		return fmt.Errorf("sizing: max size must not be negative")
	}
	if c.Output.Format != "json" && c.Output.Format != "csv" {
		return fmt.Errorf("output: unknown format %q", c.Output.Format)
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// Load reads the configuration file at path, applies REN_-prefixed
// environment overrides, defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. REN_SIZING__MODEL=clc.
	if err := k.Load(env.Provider("REN_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ren_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
