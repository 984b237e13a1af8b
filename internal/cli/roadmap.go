package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/engine"
)

// NewRoadmapCmd creates the roadmap command, which prints the four-phase
// decarbonization roadmap for a strategy.
func NewRoadmapCmd() *cobra.Command {
	var (
		flags  strategyFlags
		output string
		phase  string
	)

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Show the decarbonization roadmap",
		Example: `  # Show every phase
  cbamquest roadmap

  # Show one phase
  cbamquest roadmap --phase "TARGET (2031-2033)"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			in, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			phases := engine.RoadmapPhases(in.RecycledContent, in.RenewableEnergy, in.ProcessEfficiency)
			if phase != "" {
				selected, lookupErr := engine.PhaseByLabel(phases, phase)
				if lookupErr != nil {
					return fmt.Errorf("%w (valid: %s)", lookupErr, strings.Join(engine.PhaseLabels(), "; "))
				}
				phases = []engine.RoadmapPhase{selected}
			}

			w := cmd.OutOrStdout()
			if done, renderErr := renderStructured(w, format, phases, phases); done {
				return renderErr
			}
			renderRoadmapText(w, phases)
			return nil
		},
	}

	flags.bind(cmd)
	addOutputFlag(cmd, &output)
	cmd.Flags().StringVar(&phase, "phase", "", "show a single phase by label")
	return cmd
}

func renderRoadmapText(w io.Writer, phases []engine.RoadmapPhase) {
	for i, p := range phases {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, p.Label)
		fmt.Fprintln(w, strings.Repeat("-", len(p.Label)))
		for _, a := range p.Actions {
			fmt.Fprintf(w, "  • %s\n", a)
		}
	}
}
