package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/chart"
	"github.com/rshade/cbamquest/internal/config"
	"github.com/rshade/cbamquest/internal/engine"
	"github.com/rshade/cbamquest/internal/tui"
)

// ErrBinaryToTerminal is returned when an image would be written to a terminal.
var ErrBinaryToTerminal = errors.New("refusing to write image data to a terminal, use --out")

// NewChartCmd creates the chart command, which exports one dashboard chart.
func NewChartCmd() *cobra.Command {
	var (
		flags  strategyFlags
		format string
		out    string
		size   = chart.DefaultSize
	)

	kinds := make([]string, 0, len(chart.Kinds()))
	for _, k := range chart.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:       "chart <heatmap|timeline|radar|scenario|materials>",
		Short:     "Export a dashboard chart as JSON, PNG or SVG",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		Example: `  # Chart data as JSON
  cbamquest chart radar

  # Render the roadmap timeline as PNG
  cbamquest chart timeline --recycled 90 --format png --out timeline.png

  # Render the scenario comparison as SVG
  cbamquest chart scenario --format svg --out scenario.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := chart.ParseKind(args[0])
			if err != nil {
				return err
			}
			f, err := chart.ParseFormat(format)
			if err != nil {
				return err
			}
			in, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			set := chart.BuildSet(in, engine.ComputeMetrics(in, config.GetBaselineEmissions()))
			shape, err := set.Get(kind)
			if err != nil {
				return err
			}

			logger.Debug().Ctx(cmd.Context()).Str("kind", string(kind)).Str("format", string(f)).Msg("rendering chart")
			return writeChart(cmd, shape, f, size, out)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&format, "format", string(chart.FormatJSON), "chart format: json, png or svg")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().IntVar(&size.Width, "width", chart.DefaultSize.Width, "image width in pixels")
	cmd.Flags().IntVar(&size.Height, "height", chart.DefaultSize.Height, "image height in pixels")
	return cmd
}

func writeChart(cmd *cobra.Command, shape any, f chart.Format, size chart.Size, out string) error {
	if out == "" {
		if file, ok := cmd.OutOrStdout().(*os.File); ok && f != chart.FormatJSON && tui.IsTerminal(file) {
			return ErrBinaryToTerminal
		}
	}

	w, closeFn, err := writeTo(cmd, out)
	if err != nil {
		return err
	}
	if err = chart.Render(w, shape, f, size); err != nil {
		_ = closeFn()
		return err
	}
	if err = closeFn(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}
	if out != "" {
		cmd.PrintErrf("Chart written to %s\n", out)
	}
	return nil
}

// writeTo opens path for writing, or returns stdout when path is empty.
func writeTo(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return file, file.Close, nil
}
