package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment overrides.
const (
	EnvOutputFormat = "CBAMQUEST_OUTPUT_FORMAT"
	EnvCarbonPrice  = "CBAMQUEST_CARBON_PRICE"
	EnvRegions      = "CBAMQUEST_REGIONS"
	EnvLogLevel     = "CBAMQUEST_LOG_LEVEL"
	EnvLogFormat    = "CBAMQUEST_LOG_FORMAT"
	EnvDotEnvFile   = "CBAMQUEST_DOTENV"
)

// LoadDotEnv loads .env (or $CBAMQUEST_DOTENV) from the working directory.
// Variables already set in the environment win. A missing file is not an
// error; a malformed one is reported on stderr and skipped.
func LoadDotEnv() {
	path := os.Getenv(EnvDotEnvFile)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		_, _ = os.Stderr.WriteString("Warning: could not load " + path + ": " + err.Error() + "\n")
	}
}

// ApplyEnv overlays CBAMQUEST_* environment variables onto c. Values that
// do not parse are ignored.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvOutputFormat)); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvCarbonPrice); v != "" {
		if price, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			c.Defaults.CarbonPrice = price
		}
	}
	if v := os.Getenv(EnvRegions); v != "" {
		c.Defaults.TargetRegions = splitList(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Logging.Format = v
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
