package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/config"
)

// NewConfigSetCmd creates the config set command, which updates one key in
// the global config file.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Sets one dotted key in ~/.cbamquest/config.yaml. The file is validated
before it is written, so an out-of-range value leaves it unchanged.

Keys: ` + strings.Join(config.Keys(), ", "),
		Example: `  # Start the dashboard at a higher carbon price
  cbamquest config set defaults.carbon_price 110

  # Target several markets
  cbamquest config set defaults.target_regions "Europe,UK,Asia"`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			value, _ := cfg.Get(args[0])
			cmd.Printf("Set %s = %s\n", args[0], value)
			return nil
		},
	}
}

// NewConfigGetCmd creates the config get command, which prints one key of
// the effective configuration.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Get a configuration value",
		Example: `  cbamquest config get output.default_format`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command, which prints every key
// of the effective configuration.
func NewConfigListCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Example: `  cbamquest config list
  cbamquest config list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(outputFormat)
			if err != nil {
				return err
			}
			values := config.GetGlobalConfig().List()

			if format != outputFormatTable {
				return renderJSON(cmd.OutOrStdout(), values)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "KEY\tVALUE")
			for _, key := range config.Keys() {
				fmt.Fprintf(w, "%s\t%s\n", key, values[key])
			}
			return w.Flush()
		},
	}

	addOutputFlag(cmd, &outputFormat)
	return cmd
}
