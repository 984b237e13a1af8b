package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/config"
	"github.com/rshade/cbamquest/internal/tui"
)

const defaultTerminalWidth = 100

// ErrNotInteractive is returned when the dashboard cannot take over the terminal.
var ErrNotInteractive = errors.New("dashboard requires an interactive terminal, try 'cbamquest metrics'")

// NewDashboardCmd creates the dashboard command, which runs the interactive
// strategy control panel.
func NewDashboardCmd() *cobra.Command {
	var (
		flags   strategyFlags
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive strategy dashboard",
		Long: `Opens a terminal dashboard with sliders for recycled content, renewable
energy, process efficiency and carbon price, a target market selector, and
live metrics, heatmap, roadmap and achievements.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsTerminal(os.Stdout) || !tui.IsTerminal(os.Stdin) {
				return ErrNotInteractive
			}

			in, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			opts := []tui.DashboardOption{
				tui.WithPrecision(config.GetOutputPrecision()),
				tui.WithWidth(tui.TerminalWidth(os.Stdout, defaultTerminalWidth)),
			}
			if tui.DetectOutputMode(false, noColor, false) == tui.OutputModePlain {
				opts = append(opts, tui.WithPlainHeatmap())
			}
			model := tui.NewDashboardModel(cmd.Context(), in, config.GetBaselineEmissions(), opts...)

			logger.Debug().Ctx(cmd.Context()).Msg("starting dashboard")
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("failed to run interactive TUI: %w", err)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable heatmap shading")
	return cmd
}
