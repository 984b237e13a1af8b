package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/config"
	"github.com/rshade/cbamquest/internal/engine"
	"github.com/rshade/cbamquest/internal/greenops"
)

// NewAchievementsCmd creates the achievements command.
func NewAchievementsCmd() *cobra.Command {
	var (
		flags  strategyFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Evaluate strategy achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			in, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			statuses := engine.EvaluateAchievements(engine.ComputeMetrics(in, config.GetBaselineEmissions()))

			w := cmd.OutOrStdout()
			if done, renderErr := renderStructured(w, format, statuses, statuses); done {
				return renderErr
			}
			return renderAchievementsTable(w, statuses)
		},
	}

	flags.bind(cmd)
	addOutputFlag(cmd, &output)
	return cmd
}

func renderAchievementsTable(w io.Writer, statuses []engine.AchievementStatus) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "Achievement\tStatus\tValue\tThreshold\tProgress")
	fmt.Fprintln(tw, "-----------\t------\t-----\t---------\t--------")
	for _, s := range statuses {
		status := "locked"
		if s.Unlocked {
			status = "unlocked"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\t%s\n",
			s.Icon, s.Title, status,
			greenops.FormatFloat(s.Value, 2), greenops.FormatFloat(s.Threshold, 2), //nolint:mnd // Display precision.
			s.ProgressText)
	}
	return tw.Flush()
}
