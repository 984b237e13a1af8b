package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Dotted keys accepted by Get and Set.
const (
	KeySchemaVersion     = "schema_version"
	KeyRecycledContent   = "defaults.recycled_content"
	KeyRenewableEnergy   = "defaults.renewable_energy"
	KeyProcessEfficiency = "defaults.process_efficiency"
	KeyCarbonPrice       = "defaults.carbon_price"
	KeyTargetRegions     = "defaults.target_regions"
	KeyBaselineEmissions = "baseline_emissions"
	KeyOutputFormat      = "output.default_format"
	KeyOutputPrecision   = "output.precision"
	KeyLogLevel          = "logging.level"
	KeyLogFormat         = "logging.format"
	KeyLogFile           = "logging.file"
)

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := []string{
		KeySchemaVersion, KeyRecycledContent, KeyRenewableEnergy, KeyProcessEfficiency,
		KeyCarbonPrice, KeyTargetRegions, KeyBaselineEmissions, KeyOutputFormat,
		KeyOutputPrecision, KeyLogLevel, KeyLogFormat, KeyLogFile,
	}
	sort.Strings(keys)
	return keys
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Get returns the value at key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeySchemaVersion:
		return c.SchemaVersion, nil
	case KeyRecycledContent:
		return formatFloat(c.Defaults.RecycledContent), nil
	case KeyRenewableEnergy:
		return formatFloat(c.Defaults.RenewableEnergy), nil
	case KeyProcessEfficiency:
		return formatFloat(c.Defaults.ProcessEfficiency), nil
	case KeyCarbonPrice:
		return formatFloat(c.Defaults.CarbonPrice), nil
	case KeyTargetRegions:
		return strings.Join(c.Defaults.TargetRegions, ","), nil
	case KeyBaselineEmissions:
		return formatFloat(c.BaselineEmissions), nil
	case KeyOutputFormat:
		return c.Output.DefaultFormat, nil
	case KeyOutputPrecision:
		return strconv.Itoa(c.Output.Precision), nil
	case KeyLogLevel:
		return c.Logging.Level, nil
	case KeyLogFormat:
		return c.Logging.Format, nil
	case KeyLogFile:
		return c.Logging.File, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// Set parses value and stores it at key. Range checks are left to Validate.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)

	parseFloat := func(dst *float64) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidConfig, key, value)
		}
		*dst = v
		return nil
	}

	switch key {
	case KeySchemaVersion:
		c.SchemaVersion = value
	case KeyRecycledContent:
		return parseFloat(&c.Defaults.RecycledContent)
	case KeyRenewableEnergy:
		return parseFloat(&c.Defaults.RenewableEnergy)
	case KeyProcessEfficiency:
		return parseFloat(&c.Defaults.ProcessEfficiency)
	case KeyCarbonPrice:
		return parseFloat(&c.Defaults.CarbonPrice)
	case KeyTargetRegions:
		c.Defaults.TargetRegions = splitList(value)
	case KeyBaselineEmissions:
		return parseFloat(&c.BaselineEmissions)
	case KeyOutputFormat:
		c.Output.DefaultFormat = strings.ToLower(value)
	case KeyOutputPrecision:
		p, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects an integer, got %q", ErrInvalidConfig, key, value)
		}
		c.Output.Precision = p
	case KeyLogLevel:
		c.Logging.Level = value
	case KeyLogFormat:
		c.Logging.Format = value
	case KeyLogFile:
		c.Logging.File = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// List returns every key with its current value.
func (c *Config) List() map[string]string {
	out := make(map[string]string, len(Keys()))
	for _, k := range Keys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}
