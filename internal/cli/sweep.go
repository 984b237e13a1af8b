package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/cli/pagination"
	"github.com/rshade/cbamquest/internal/config"
	"github.com/rshade/cbamquest/internal/engine"
	"github.com/rshade/cbamquest/internal/engine/batch"
	"github.com/rshade/cbamquest/internal/greenops"
)

// ErrConflictingSweep is returned when a scenario file and a price grid are
// both requested.
var ErrConflictingSweep = errors.New("--scenarios cannot be combined with --price-from/--price-to/--price-step")

// sweepParams holds the sweep command flags.
type sweepParams struct {
	strategy    strategyFlags
	scenarios   string
	priceFrom   float64
	priceTo     float64
	priceStep   float64
	batchSize   int
	concurrency int
	sort        string
	page        pagination.PaginationParams
	output      string
}

// sweepOutput is the JSON document emitted by sweep.
type sweepOutput struct {
	RunID      string                    `json:"run_id"`
	Results    []batch.SweepResult       `json:"results"`
	Pagination pagination.PaginationMeta `json:"pagination"`
	Progress   batch.ProgressSnapshot    `json:"progress"`
}

// NewSweepCmd creates the sweep command, which evaluates many strategies
// concurrently and lists them side by side.
func NewSweepCmd() *cobra.Command {
	var params sweepParams

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a grid of strategies",
		Long: `Evaluates a set of strategies concurrently. The set is either a YAML
scenario file (--scenarios) or a carbon price grid applied to the base
strategy given by the strategy flags.

Scenario file layout:

  scenarios:
    - name: aggressive
      recycled_content: 90
      renewable_energy: 80
      process_efficiency: 70
      carbon_price: 140
      target_regions: [Europe, UK]

Omitted fields fall back to the base strategy.`,
		Example: `  # Price grid from 50 to 150 EUR/t in steps of 10
  cbamquest sweep --price-from 50 --price-to 150 --price-step 10

  # Scenario file, best net savings first, top 5
  cbamquest sweep --scenarios scenarios.yaml --sort net_savings:desc --limit 5

  # Second page of 10 results as NDJSON
  cbamquest sweep --page 2 --page-size 10 --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, &params)
		},
	}

	params.strategy.bind(cmd)
	cmd.Flags().StringVar(&params.scenarios, "scenarios", "", "YAML scenario file")
	cmd.Flags().Float64Var(&params.priceFrom, "price-from", engine.MinCarbonPrice, "first carbon price of the grid")
	cmd.Flags().Float64Var(&params.priceTo, "price-to", engine.MaxCarbonPrice, "last carbon price of the grid")
	cmd.Flags().Float64Var(&params.priceStep, "price-step", engine.CarbonPriceStep, "carbon price increment")
	cmd.Flags().IntVar(&params.batchSize, "batch-size", batch.DefaultBatchSize, "scenarios per batch")
	cmd.Flags().IntVar(&params.concurrency, "concurrency", batch.DefaultConcurrency, "batches evaluated in parallel")
	cmd.Flags().StringVar(&params.sort, "sort", "",
		"sort by field[:asc|desc] (name, carbon_price, recycled, renewable, efficiency, footprint, "+
			"cost, projected, reduction, fee_reduction, net_savings)")
	cmd.Flags().IntVar(&params.page.Limit, "limit", 0, "maximum results to show (0 = all)")
	cmd.Flags().IntVar(&params.page.Offset, "offset", 0, "results to skip")
	cmd.Flags().IntVar(&params.page.Page, "page", 0, "page number (1-based, requires --page-size)")
	cmd.Flags().IntVar(&params.page.PageSize, "page-size", 0, "results per page")
	addOutputFlag(cmd, &params.output)
	return cmd
}

func runSweep(cmd *cobra.Command, params *sweepParams) error {
	ctx := cmd.Context()

	format, err := resolveOutputFormat(params.output)
	if err != nil {
		return err
	}
	if err = params.page.Validate(); err != nil {
		return err
	}
	field, order, err := pagination.ParseSort(params.sort)
	if err != nil {
		return err
	}
	sorter := pagination.NewSweepSorter()
	if err = sorter.Validate(field); err != nil {
		return err
	}

	scenarios, err := loadSweepScenarios(cmd, params)
	if err != nil {
		return err
	}

	report, err := batch.RunSweep(ctx, scenarios, config.GetBaselineEmissions(), batch.SweepOptions{
		BatchSize:   params.batchSize,
		Concurrency: params.concurrency,
		OnProgress: func(snap batch.ProgressSnapshot) {
			logger.Debug().Ctx(ctx).
				Int("processed", snap.ProcessedItems).
				Int("total", snap.TotalItems).
				Msg("sweep progress")
		},
	})
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	sorted := sorter.Sort(report.Results, field, order)
	window := pagination.Apply(params.page, sorted)
	meta := pagination.NewPaginationMeta(params.page, len(sorted))

	w := cmd.OutOrStdout()
	doc := sweepOutput{RunID: report.RunID, Results: window, Pagination: meta, Progress: report.Progress}
	if done, renderErr := renderStructured(w, format, doc, window); done {
		return renderErr
	}
	return renderSweepTable(w, report.RunID, window, meta, config.GetOutputPrecision())
}

func loadSweepScenarios(cmd *cobra.Command, params *sweepParams) ([]batch.Scenario, error) {
	base, err := params.strategy.resolve(cmd)
	if err != nil {
		return nil, err
	}

	if params.scenarios == "" {
		return batch.PriceGrid(base, params.priceFrom, params.priceTo, params.priceStep)
	}

	flags := cmd.Flags()
	if flags.Changed("price-from") || flags.Changed("price-to") || flags.Changed("price-step") {
		return nil, ErrConflictingSweep
	}
	return batch.LoadScenariosFile(params.scenarios, base)
}

func renderSweepTable(
	w io.Writer,
	runID string,
	results []batch.SweepResult,
	meta pagination.PaginationMeta,
	precision int,
) error {
	fmt.Fprintf(w, "Sweep %s\n\n", runID)
	if len(results) == 0 {
		fmt.Fprintln(w, "No results in range")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "Scenario\tRecycled\tRenewable\tEfficiency\tPrice\tFootprint\tProjected\tReduction\tNet Savings\tAchievements")
	fmt.Fprintln(tw, "--------\t--------\t---------\t----------\t-----\t---------\t---------\t---------\t-----------\t------------")
	for _, r := range results {
		unlocked := strings.Join(r.Unlocked, ",")
		if unlocked == "" {
			unlocked = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t€%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name,
			greenops.FormatPercent(r.Inputs.RecycledContent, 0),
			greenops.FormatPercent(r.Inputs.RenewableEnergy, 0),
			greenops.FormatPercent(r.Inputs.ProcessEfficiency, 0),
			greenops.FormatFloat(r.Inputs.CarbonPrice, 0),
			greenops.FormatFloat(r.Metrics.CarbonFootprint, 2), //nolint:mnd // Footprint precision.
			greenops.FormatTonnes(r.Metrics.ProjectedEmissions),
			greenops.FormatPercent(r.Metrics.ReductionPercent, 1),
			greenops.FormatEuroMillions(r.Metrics.NetSavings, precision),
			unlocked,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nPage %d of %d (%d scenarios)\n", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
	return nil
}
