package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: ~/.cbamquest/config.yaml with any
project overlay and CBAMQUEST_* environment overrides applied.

This includes:
- Schema version compatibility
- Strategy defaults within their slider ranges
- Known target market names
- Output format, precision and logging settings`,
		Example: `  # Validate current configuration
  cbamquest config validate

  # Validate and show detailed information
  cbamquest config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	// The global config falls back to defaults when the file is invalid, so
	// check the file on its own first.
	fileCfg, err := config.LoadFile()
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err = fileCfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %s: %w", fileCfg.ConfigPath(), err)
	}

	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Schema version: %s\n", cfg.SchemaVersion)
	cmd.Printf("  Baseline emissions: %.0f tCO2e\n", cfg.BaselineEmissions)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}

	in := cfg.StrategyInputs()
	cmd.Println("  Default strategy:")
	cmd.Printf("    Recycled content: %.0f%%\n", in.RecycledContent)
	cmd.Printf("    Renewable energy: %.0f%%\n", in.RenewableEnergy)
	cmd.Printf("    Process efficiency: %.0f%%\n", in.ProcessEfficiency)
	cmd.Printf("    Carbon price: €%.0f/t\n", in.CarbonPrice)
	cmd.Printf("    Target markets: %s\n", joinRegions(in.TargetRegions))
}
