// Package config loads, validates and saves the cbamquest configuration file
// (~/.cbamquest/config.yaml) and applies environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/cbamquest/internal/engine"
)

// Schema versions.
const (
	CurrentSchemaVersion = "1.0.0"
	SupportedSchema      = "^1.0"
)

// Output format names.
const (
	OutputFormatTable  = "table"
	OutputFormatJSON   = "json"
	OutputFormatNDJSON = "ndjson"
)

const (
	defaultPrecision = 2
	maxPrecision     = 6
	configFileName   = "config.yaml"
	outputTypeFile   = "file"
)

// Configuration errors.
var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnsupportedSchema = errors.New("unsupported config schema version")
	ErrUnknownKey        = errors.New("unknown configuration key")
)

// DefaultsConfig holds the strategy the dashboard starts from.
type DefaultsConfig struct {
	RecycledContent   float64  `yaml:"recycled_content"   json:"recycled_content"`
	RenewableEnergy   float64  `yaml:"renewable_energy"   json:"renewable_energy"`
	ProcessEfficiency float64  `yaml:"process_efficiency" json:"process_efficiency"`
	CarbonPrice       float64  `yaml:"carbon_price"       json:"carbon_price"`
	TargetRegions     []string `yaml:"target_regions"     json:"target_regions"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Precision     int    `yaml:"precision"      json:"precision"`
}

// Config is the cbamquest configuration.
type Config struct {
	SchemaVersion     string         `yaml:"schema_version"     json:"schema_version"`
	Defaults          DefaultsConfig `yaml:"defaults"           json:"defaults"`
	BaselineEmissions float64        `yaml:"baseline_emissions" json:"baseline_emissions"`
	Output            OutputConfig   `yaml:"output"             json:"output"`
	Logging           LoggingConfig  `yaml:"logging"            json:"logging"`

	configPath string
}

// Default returns the built-in configuration without touching disk.
func Default() *Config {
	regions := make([]string, 0, 1)
	for _, r := range engine.DefaultInputs().TargetRegions {
		regions = append(regions, string(r))
	}

	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Defaults: DefaultsConfig{
			RecycledContent:   engine.DefaultRecycledContent,
			RenewableEnergy:   engine.DefaultRenewableEnergy,
			ProcessEfficiency: engine.DefaultProcessEfficiency,
			CarbonPrice:       engine.DefaultCarbonPrice,
			TargetRegions:     regions,
		},
		BaselineEmissions: engine.BaselineEmissions,
		Output: OutputConfig{
			DefaultFormat: OutputFormatTable,
			Precision:     defaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// New returns the configuration at the default path with environment
// overrides applied. A missing, unreadable or invalid file yields the defaults.
func New() *Config {
	cfg := Default()

	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		loadErr := cfg.Load()
		if loadErr == nil {
			loadErr = cfg.Validate()
		}
		if loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config %s: %v\n", cfg.configPath, loadErr)
			cfg = Default()
			cfg.configPath = filepath.Join(dir, configFileName)
		}
	}

	LoadDotEnv()
	cfg.ApplyEnv()
	return cfg
}

// LoadFile returns the defaults overlaid with the config file only, without
// environment overrides. This is what config set edits and saves. A missing
// file is not an error.
func LoadFile() (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	cfg := Default()
	cfg.configPath = filepath.Join(dir, configFileName)
	if err = cfg.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath returns the file this config loads from and saves to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file this config loads from and saves to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load reads the config file over the current values. Sections absent from
// the file keep their current values.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", c.configPath, err)
	}
	return c.checkSchema()
}

// Save writes the config as YAML with owner-only permissions.
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("%w: no config path set", ErrInvalidConfig)
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", c.configPath, err)
	}
	return nil
}

// checkSchema rejects config files written for an incompatible major version.
// An empty version is treated as current.
func (c *Config) checkSchema() error {
	if c.SchemaVersion == "" {
		c.SchemaVersion = CurrentSchemaVersion
		return nil
	}

	v, err := semver.NewVersion(c.SchemaVersion)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, c.SchemaVersion, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedSchema, v, SupportedSchema)
	}
	return nil
}

// Validate checks every section for values the engine cannot use.
func (c *Config) Validate() error {
	if err := c.checkSchema(); err != nil {
		return err
	}

	d := c.Defaults
	for name, v := range map[string]float64{
		"defaults.recycled_content":   d.RecycledContent,
		"defaults.renewable_energy":   d.RenewableEnergy,
		"defaults.process_efficiency": d.ProcessEfficiency,
	} {
		if v < engine.MinPercent || v > engine.MaxPercent {
			return fmt.Errorf("%w: %s must be within [%.0f, %.0f], got %g",
				ErrInvalidConfig, name, engine.MinPercent, engine.MaxPercent, v)
		}
	}
	if d.CarbonPrice < engine.MinCarbonPrice || d.CarbonPrice > engine.MaxCarbonPrice {
		return fmt.Errorf("%w: defaults.carbon_price must be within [%.0f, %.0f], got %g",
			ErrInvalidConfig, engine.MinCarbonPrice, engine.MaxCarbonPrice, d.CarbonPrice)
	}
	if _, err := engine.ParseRegions(d.TargetRegions); err != nil {
		return fmt.Errorf("%w: defaults.target_regions: %w", ErrInvalidConfig, err)
	}
	if c.BaselineEmissions <= 0 {
		return fmt.Errorf("%w: baseline_emissions must be positive, got %g", ErrInvalidConfig, c.BaselineEmissions)
	}

	switch c.Output.DefaultFormat {
	case OutputFormatTable, OutputFormatJSON, OutputFormatNDJSON:
	default:
		return fmt.Errorf("%w: output.default_format must be table, json or ndjson, got %q",
			ErrInvalidConfig, c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: output.precision must be within [0, %d], got %d",
			ErrInvalidConfig, maxPrecision, c.Output.Precision)
	}

	return c.Logging.Validate()
}

// StrategyInputs returns the configured starting strategy, normalized.
// Unknown region names are skipped.
func (c *Config) StrategyInputs() engine.StrategyInputs {
	in := engine.StrategyInputs{
		RecycledContent:   c.Defaults.RecycledContent,
		RenewableEnergy:   c.Defaults.RenewableEnergy,
		ProcessEfficiency: c.Defaults.ProcessEfficiency,
		CarbonPrice:       c.Defaults.CarbonPrice,
	}
	for _, name := range c.Defaults.TargetRegions {
		if r, err := engine.ParseRegion(name); err == nil {
			in.TargetRegions = append(in.TargetRegions, r)
		}
	}
	return in.Normalize()
}
