package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/config"
	"github.com/rshade/cbamquest/internal/engine"
)

// strategyFlags holds the strategy inputs accepted by every evaluating command.
// Unset flags fall back to the configured defaults.
type strategyFlags struct {
	recycled    float64
	renewable   float64
	efficiency  float64
	carbonPrice float64
	regions     []string
}

// bind registers the strategy flags on cmd.
func (f *strategyFlags) bind(cmd *cobra.Command) {
	d := engine.DefaultInputs()
	cmd.Flags().Float64Var(&f.recycled, "recycled", d.RecycledContent, "recycled aluminum content in percent (0-100)")
	cmd.Flags().Float64Var(&f.renewable, "renewable", d.RenewableEnergy, "renewable energy share in percent (0-100)")
	cmd.Flags().Float64Var(&f.efficiency, "efficiency", d.ProcessEfficiency,
		"process efficiency improvement in percent (0-100)")
	cmd.Flags().Float64Var(&f.carbonPrice, "carbon-price", d.CarbonPrice,
		"CBAM carbon price in EUR per tonne (50-150, step 5)")
	cmd.Flags().StringSliceVar(&f.regions, "regions", nil,
		"target markets (Europe, UK, Middle East, Asia, North America)")
}

// resolve merges explicitly set flags over the configured defaults and
// normalizes the result. Unknown region names are an error.
func (f *strategyFlags) resolve(cmd *cobra.Command) (engine.StrategyInputs, error) {
	in := config.GetGlobalConfig().StrategyInputs()

	flags := cmd.Flags()
	if flags.Changed("recycled") {
		in.RecycledContent = f.recycled
	}
	if flags.Changed("renewable") {
		in.RenewableEnergy = f.renewable
	}
	if flags.Changed("efficiency") {
		in.ProcessEfficiency = f.efficiency
	}
	if flags.Changed("carbon-price") {
		in.CarbonPrice = f.carbonPrice
	}
	if flags.Changed("regions") {
		regions, err := engine.ParseRegions(f.regions)
		if err != nil {
			return engine.StrategyInputs{}, fmt.Errorf("invalid --regions: %w", err)
		}
		in.TargetRegions = regions
	}

	return in.Normalize(), nil
}
