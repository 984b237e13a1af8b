package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/config"
	"github.com/rshade/cbamquest/internal/engine"
	"github.com/rshade/cbamquest/internal/report"
)

// NewReportCmd creates the report command, which writes a strategy report as
// HTML (default) or Markdown.
func NewReportCmd() *cobra.Command {
	var (
		flags    strategyFlags
		out      string
		markdown bool
		noCharts bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a strategy report",
		Example: `  # HTML report with embedded charts
  cbamquest report --out report.html

  # Markdown to stdout
  cbamquest report --markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			eval := engine.Evaluate(cmd.Context(), in, config.GetBaselineEmissions())

			opts := report.DefaultOptions()
			opts.Precision = config.GetOutputPrecision()
			if noCharts {
				opts.Charts = nil
			}

			w, closeFn, err := writeTo(cmd, out)
			if err != nil {
				return err
			}
			if err = writeReport(w, eval, opts, markdown); err != nil {
				_ = closeFn()
				return err
			}
			if err = closeFn(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}
			if out != "" {
				cmd.PrintErrf("Report written to %s\n", out)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "emit Markdown instead of HTML")
	cmd.Flags().BoolVar(&noCharts, "no-charts", false, "omit the embedded SVG charts")
	return cmd
}

func writeReport(w io.Writer, eval engine.Evaluation, opts report.Options, markdown bool) error {
	if markdown {
		_, err := io.WriteString(w, report.Markdown(eval, opts.Precision))
		return err
	}
	return report.HTML(w, eval, opts)
}
