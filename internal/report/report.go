// Package report renders a strategy evaluation as a Markdown document and
// converts it to a standalone HTML page with inline SVG charts.
package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/rshade/cbamquest/internal/chart"
	"github.com/rshade/cbamquest/internal/engine"
	"github.com/rshade/cbamquest/internal/greenops"
)

// Title is the report heading and HTML page title.
const Title = "CBAM Strategy Report"

// Options tunes report rendering.
type Options struct {
	// Precision is the number of decimals for EUR figures.
	Precision int

	// Charts lists the charts embedded in the HTML page, in order.
	Charts []chart.Kind

	// ChartSize is the size of each embedded chart.
	ChartSize chart.Size
}

// DefaultOptions embeds the roadmap, scenario and benchmark charts.
func DefaultOptions() Options {
	return Options{
		Precision: 2, //nolint:mnd // EUR precision.
		Charts:    []chart.Kind{chart.KindTimeline, chart.KindScenario, chart.KindRadar},
		ChartSize: chart.Size{Width: 720, Height: 405}, //nolint:mnd // 16:9 inline chart.
	}
}

// Markdown builds the report body for eval.
func Markdown(eval engine.Evaluation, precision int) string {
	in, m := eval.Inputs, eval.Metrics

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", Title)

	sb.WriteString("## Strategy\n\n")
	sb.WriteString("| Input | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Recycled content | %s |\n", greenops.FormatPercent(in.RecycledContent, 0))
	fmt.Fprintf(&sb, "| Renewable energy | %s |\n", greenops.FormatPercent(in.RenewableEnergy, 0))
	fmt.Fprintf(&sb, "| Process efficiency | %s |\n", greenops.FormatPercent(in.ProcessEfficiency, 0))
	fmt.Fprintf(&sb, "| Carbon price | €%s/t |\n", greenops.FormatFloat(in.CarbonPrice, 0))
	fmt.Fprintf(&sb, "| Target markets | %s |\n\n", regionList(in.TargetRegions))

	sb.WriteString("## Impact\n\n")
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Carbon footprint | %s |\n", greenops.FormatFootprint(m.CarbonFootprint))
	fmt.Fprintf(&sb, "| Implementation cost | %s |\n", greenops.FormatEuroMillions(m.ImplementationCost, precision))
	fmt.Fprintf(&sb, "| Baseline emissions | %s |\n", greenops.FormatTonnes(m.BaselineEmissions))
	fmt.Fprintf(&sb, "| Projected emissions | %s |\n", greenops.FormatTonnes(m.ProjectedEmissions))
	fmt.Fprintf(&sb, "| Reduction | %s |\n", greenops.FormatPercent(m.ReductionPercent, 1))
	fmt.Fprintf(&sb, "| CBAM fee reduction | %s |\n", greenops.FormatEuroMillions(m.CBAMFeeReduction, precision))
	fmt.Fprintf(&sb, "| Decarbonization progress | %s |\n\n", greenops.FormatPercent(m.DecarbonizationProgress, 0))

	if eq := greenops.AvoidedEmissions(m.BaselineEmissions - m.ProjectedEmissions); !eq.IsEmpty {
		fmt.Fprintf(&sb, "_%s._\n\n", eq.DisplayText)
	}

	sb.WriteString("## Financial Impact\n\n")
	fmt.Fprintf(&sb, "- **CBAM fees:** %s → %s\n",
		greenops.FormatEuroMillions(m.BaselineFees, precision), greenops.FormatEuroMillions(m.ProjectedFees, precision))
	fmt.Fprintf(&sb, "- **Implementation cost:** %s\n", greenops.FormatEuroMillions(m.ImplementationCost, precision))
	fmt.Fprintf(&sb, "- **Net savings:** %s/year\n\n", greenops.FormatEuroMillions(m.NetSavings, precision))

	sb.WriteString("## Roadmap\n\n")
	for _, p := range eval.Roadmap {
		fmt.Fprintf(&sb, "### %s\n\n", p.Label)
		for _, a := range p.Actions {
			fmt.Fprintf(&sb, "- %s\n", a)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Achievements\n\n")
	for _, a := range eval.Achievements {
		state := a.ProgressText
		if !a.Unlocked {
			state = "🔒 " + state
		}
		fmt.Fprintf(&sb, "- %s **%s**: %s (%s)\n", a.Icon, a.Title, a.Description, state)
	}

	return sb.String()
}

// HTML renders eval as a standalone page: the Markdown report converted with
// goldmark followed by the charts in opts, inlined as SVG.
func HTML(w io.Writer, eval engine.Evaluation, opts Options) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(eval, opts.Precision)), &body); err != nil {
		return fmt.Errorf("converting report markdown: %w", err)
	}

	set := chart.BuildSet(eval.Inputs, eval.Metrics)
	var charts bytes.Buffer
	for _, kind := range opts.Charts {
		shape, err := set.Get(kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(&charts, "<figure class=\"chart\" id=\"chart-%s\">\n", html.EscapeString(string(kind)))
		if err = chart.Render(&charts, shape, chart.FormatSVG, opts.ChartSize); err != nil {
			return fmt.Errorf("rendering %s chart: %w", kind, err)
		}
		charts.WriteString("\n</figure>\n")
	}

	_, err := fmt.Fprintf(w, pageTemplate, html.EscapeString(Title), body.String(), charts.String())
	return err
}

func regionList(regions []engine.Region) string {
	if len(regions) == 0 {
		return "none"
	}
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; color: #222; }
h1, h2, h3 { color: #C8412E; }
table { border-collapse: collapse; }
td, th { border: 1px solid #FFCCC2; padding: 4px 10px; text-align: left; }
figure.chart { margin: 1.5em 0; }
</style>
</head>
<body>
%s
<h2>Charts</h2>
%s
</body>
</html>
`
