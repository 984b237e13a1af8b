package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/cbamquest/internal/engine"
)

// ErrInvalidSweep is returned for an empty or malformed sweep definition.
var ErrInvalidSweep = errors.New("invalid sweep")

// Scenario is one named strategy to evaluate.
type Scenario struct {
	Name                  string `yaml:"name" json:"name"`
	engine.StrategyInputs `yaml:",inline"`
}

// scenarioFile is the YAML layout accepted by LoadScenarios.
type scenarioFile struct {
	Scenarios []scenarioEntry `yaml:"scenarios"`
}

// scenarioEntry keeps region names as strings so they can be resolved
// case-insensitively.
type scenarioEntry struct {
	Name              string   `yaml:"name"`
	RecycledContent   *float64 `yaml:"recycled_content"`
	RenewableEnergy   *float64 `yaml:"renewable_energy"`
	ProcessEfficiency *float64 `yaml:"process_efficiency"`
	CarbonPrice       *float64 `yaml:"carbon_price"`
	TargetRegions     []string `yaml:"target_regions"`
}

// SweepResult is the evaluation of one scenario.
type SweepResult struct {
	Index    int                   `json:"index"`
	Name     string                `json:"name"`
	Inputs   engine.StrategyInputs `json:"inputs"`
	Metrics  engine.DerivedMetrics `json:"metrics"`
	Unlocked []string              `json:"unlocked"`
}

// SweepReport is a completed sweep.
type SweepReport struct {
	RunID    string           `json:"run_id"`
	Results  []SweepResult    `json:"results"`
	Progress ProgressSnapshot `json:"progress"`
}

// SweepOptions tunes how a sweep runs.
type SweepOptions struct {
	BatchSize   int
	Concurrency int
	OnProgress  ProgressCallback
}

// MaxGridPoints bounds the number of prices a grid may step through.
const MaxGridPoints = 1000

// PriceGrid varies the carbon price of base from `from` to `to` inclusive.
// The range is clamped to [50,150] first; prices are snapped to the 5 EUR
// grid and duplicates after snapping are dropped.
func PriceGrid(base engine.StrategyInputs, from, to, step float64) ([]Scenario, error) {
	if !isFinite(from) || !isFinite(to) || !isFinite(step) {
		return nil, fmt.Errorf("%w: price grid needs finite bounds and step, got %g..%g step %g",
			ErrInvalidSweep, from, to, step)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: price step must be positive, got %g", ErrInvalidSweep, step)
	}
	if to < from {
		return nil, fmt.Errorf("%w: price range %g..%g is reversed", ErrInvalidSweep, from, to)
	}

	from = math.Max(engine.MinCarbonPrice, math.Min(engine.MaxCarbonPrice, from))
	to = math.Max(engine.MinCarbonPrice, math.Min(engine.MaxCarbonPrice, to))
	points := (to - from) / step
	if points >= MaxGridPoints {
		return nil, fmt.Errorf("%w: price step %g gives more than %d prices", ErrInvalidSweep, step, MaxGridPoints)
	}
	n := int(math.Floor(points+1e-9)) + 1

	var out []Scenario
	seen := make(map[float64]bool)
	for i := range n {
		in := base
		in.CarbonPrice = from + float64(i)*step
		in = in.Normalize()
		if seen[in.CarbonPrice] {
			continue
		}
		seen[in.CarbonPrice] = true
		out = append(out, Scenario{Name: fmt.Sprintf("€%.0f/t", in.CarbonPrice), StrategyInputs: in})
	}
	return out, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LoadScenarios parses a scenario file. Fields a scenario omits fall back to
// base; region names are resolved case-insensitively.
func LoadScenarios(r io.Reader, base engine.StrategyInputs) ([]Scenario, error) {
	var file scenarioFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no scenarios", ErrInvalidSweep)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSweep, err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidSweep)
	}

	out := make([]Scenario, 0, len(file.Scenarios))
	for i, e := range file.Scenarios {
		in := base
		setIf(&in.RecycledContent, e.RecycledContent)
		setIf(&in.RenewableEnergy, e.RenewableEnergy)
		setIf(&in.ProcessEfficiency, e.ProcessEfficiency)
		setIf(&in.CarbonPrice, e.CarbonPrice)
		if e.TargetRegions != nil {
			regions, err := engine.ParseRegions(e.TargetRegions)
			if err != nil {
				return nil, fmt.Errorf("%w: scenario %d: %w", ErrInvalidSweep, i, err)
			}
			in.TargetRegions = regions
		}

		name := e.Name
		if name == "" {
			name = fmt.Sprintf("scenario-%d", i+1)
		}
		out = append(out, Scenario{Name: name, StrategyInputs: in.Normalize()})
	}
	return out, nil
}

// LoadScenariosFile opens path and calls LoadScenarios.
func LoadScenariosFile(path string, base engine.StrategyInputs) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()
	return LoadScenarios(f, base)
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// RunSweep evaluates every scenario against baselineEmissions. Results keep
// the order of scenarios.
func RunSweep(
	ctx context.Context,
	scenarios []Scenario,
	baselineEmissions float64,
	opts SweepOptions,
) (*SweepReport, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidSweep)
	}

	batchSize := opts.BatchSize
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}
	proc, err := NewProcessor[Scenario](batchSize)
	if err != nil {
		return nil, err
	}

	report := &SweepReport{
		RunID:   ulid.Make().String(),
		Results: make([]SweepResult, len(scenarios)),
	}
	logger := zerolog.Ctx(ctx).With().Str("component", "sweep").Str("run_id", report.RunID).Logger()
	logger.Debug().Int("scenarios", len(scenarios)).Int("concurrency", opts.Concurrency).Msg("sweep started")

	proc.WithProgressCallback(func(snap ProgressSnapshot) {
		logger.Debug().Float64("percent", snap.PercentComplete).Msg("sweep progress")
		if opts.OnProgress != nil {
			opts.OnProgress(snap)
		}
	})

	total := NewProgress(len(scenarios), len(proc.CalculateBatches(len(scenarios))))
	err = proc.ProcessConcurrent(ctx, scenarios, func(_ context.Context, batch []Scenario, offset int) error {
		for i, s := range batch {
			metrics := engine.ComputeMetrics(s.StrategyInputs, baselineEmissions)
			report.Results[offset+i] = SweepResult{
				Index:    offset + i,
				Name:     s.Name,
				Inputs:   s.StrategyInputs.Normalize(),
				Metrics:  metrics,
				Unlocked: unlockedIDs(metrics),
			}
		}
		total.AddProcessed(len(batch))
		return nil
	}, opts.Concurrency)
	if err != nil {
		return nil, err
	}

	report.Progress = total.Snapshot()
	logger.Debug().Dur("elapsed", report.Progress.Elapsed).Msg("sweep finished")
	return report, nil
}

func unlockedIDs(m engine.DerivedMetrics) []string {
	ids := []string{}
	for _, a := range engine.Unlocked(engine.EvaluateAchievements(m)) {
		ids = append(ids, a.ID)
	}
	return ids
}
