package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/config"
	"github.com/rshade/cbamquest/internal/engine"
	"github.com/rshade/cbamquest/internal/greenops"
)

// NewMetricsCmd creates the metrics command, which evaluates one strategy.
func NewMetricsCmd() *cobra.Command {
	var (
		flags  strategyFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Evaluate a decarbonization strategy",
		Long: `Computes carbon footprint, implementation cost, projected emissions,
CBAM fees and net savings for a strategy. Unset flags use the configured defaults.`,
		Example: `  # Evaluate the configured default strategy
  cbamquest metrics

  # Evaluate an aggressive strategy at a high carbon price
  cbamquest metrics --recycled 90 --renewable 80 --efficiency 70 --carbon-price 140

  # Emit JSON for scripting
  cbamquest metrics --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			in, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			eval := engine.Evaluate(cmd.Context(), in, config.GetBaselineEmissions())

			w := cmd.OutOrStdout()
			if done, renderErr := renderStructured(w, format, eval, []engine.Evaluation{eval}); done {
				return renderErr
			}
			return renderMetricsTable(w, eval, config.GetOutputPrecision())
		},
	}

	flags.bind(cmd)
	addOutputFlag(cmd, &output)
	return cmd
}

// renderMetricsTable renders the inputs and derived metrics as aligned text.
func renderMetricsTable(w io.Writer, eval engine.Evaluation, precision int) error {
	in, m := eval.Inputs, eval.Metrics

	fmt.Fprintln(w, "CBAM Strategy Metrics")
	fmt.Fprintln(w, "=====================")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "Recycled Content:\t%s\n", greenops.FormatPercent(in.RecycledContent, 0))
	fmt.Fprintf(tw, "Renewable Energy:\t%s\n", greenops.FormatPercent(in.RenewableEnergy, 0))
	fmt.Fprintf(tw, "Process Efficiency:\t%s\n", greenops.FormatPercent(in.ProcessEfficiency, 0))
	fmt.Fprintf(tw, "Carbon Price:\t€%s/t\n", greenops.FormatFloat(in.CarbonPrice, 0))
	fmt.Fprintf(tw, "Target Markets:\t%s\n", joinRegions(in.TargetRegions))
	fmt.Fprintf(tw, "\t\n")
	fmt.Fprintf(tw, "Carbon Footprint:\t%s\n", greenops.FormatFootprint(m.CarbonFootprint))
	fmt.Fprintf(tw, "Implementation Cost:\t%s\n", greenops.FormatEuroMillions(m.ImplementationCost, precision))
	fmt.Fprintf(tw, "Baseline Emissions:\t%s\n", greenops.FormatTonnes(m.BaselineEmissions))
	fmt.Fprintf(tw, "Projected Emissions:\t%s (-%s)\n",
		greenops.FormatTonnes(m.ProjectedEmissions), greenops.FormatPercent(m.ReductionPercent, 1))
	fmt.Fprintf(tw, "CBAM Fee Reduction:\t%s\n", greenops.FormatEuroMillions(m.CBAMFeeReduction, precision))
	fmt.Fprintf(tw, "CBAM Fees:\t%s -> %s\n",
		greenops.FormatEuroMillions(m.BaselineFees, precision), greenops.FormatEuroMillions(m.ProjectedFees, precision))
	fmt.Fprintf(tw, "Net Savings:\t%s/year\n", greenops.FormatEuroMillions(m.NetSavings, precision))
	fmt.Fprintf(tw, "Decarbonization Progress:\t%s\n", greenops.FormatPercent(m.DecarbonizationProgress, 0))
	if err := tw.Flush(); err != nil {
		return err
	}

	if eq := greenops.AvoidedEmissions(m.BaselineEmissions - m.ProjectedEmissions); !eq.IsEmpty {
		fmt.Fprintln(w)
		fmt.Fprintln(w, eq.DisplayText)
	}
	return nil
}

func joinRegions(regions []engine.Region) string {
	if len(regions) == 0 {
		return "none"
	}
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
