package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/config"
	"github.com/rshade/cbamquest/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the cbamquest CLI.
// It wires up configuration overlays, logging and tracing, then the
// strategy, chart, sweep, report, dashboard and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "cbamquest",
		Short: "CBAM decarbonization strategy dashboard",
		Long: `CBAM Quest evaluates an aluminum producer's decarbonization strategy
against the EU Carbon Border Adjustment Mechanism: carbon footprint,
implementation cost, projected emissions, CBAM fees, roadmap and achievements.`,
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyConfigOverlays(configPath); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML overlay merged onto the global configuration (default ./"+config.ProjectConfigFile+" if present)")

	cmd.AddCommand(
		NewMetricsCmd(), NewRoadmapCmd(), NewAchievementsCmd(), NewChartCmd(),
		NewSweepCmd(), NewReportCmd(), NewDashboardCmd(), newConfigCmd(),
	)

	return cmd
}

// applyConfigOverlays merges an explicit --config file, or the project file
// in the working directory when present, onto the global configuration.
func applyConfigOverlays(explicit string) error {
	cfg := config.GetGlobalConfig()

	path := explicit
	if path == "" {
		if _, err := os.Stat(config.ProjectConfigFile); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("checking %s: %w", config.ProjectConfigFile, err)
		}
		path = config.ProjectConfigFile
	}

	if err := config.ShallowMergeYAML(cfg, path); err != nil {
		return fmt.Errorf("loading config overlay: %w", err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Evaluate the default strategy
  cbamquest metrics

  # Evaluate a custom strategy as JSON
  cbamquest metrics --recycled 80 --renewable 70 --carbon-price 120 --output json

  # Show the second roadmap phase
  cbamquest roadmap --phase "PHASE 2 (2027-2029)"

  # Export the impact heatmap as PNG
  cbamquest chart heatmap --format png --out heatmap.png

  # Sweep carbon prices and sort by net savings
  cbamquest sweep --price-from 50 --price-to 150 --price-step 10 --sort net_savings:desc

  # Write an HTML strategy report
  cbamquest report --out report.html

  # Open the interactive dashboard
  cbamquest dashboard

  # Set configuration values
  cbamquest config set defaults.carbon_price 110`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
