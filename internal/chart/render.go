package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Render errors.
var (
	ErrUnknownFormat    = errors.New("unknown chart format")
	ErrUnsupportedShape = errors.New("unsupported chart shape")
	ErrEmptyChart       = errors.New("chart has no data to draw")
)

// Format is a chart output encoding.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

// ParseFormat parses an output format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: json, png, svg)", ErrUnknownFormat, s)
	}
}

// Size is the image size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when a caller passes a zero Size.
//
//nolint:gochecknoglobals // Read-only default.
var DefaultSize = Size{Width: 960, Height: 540}

const (
	strokeWidth = 2.5
	dotWidth    = 4.0
	barWidth    = 80
)

// Render writes shape in the requested format. JSON is the shape itself,
// PNG and SVG are drawn with go-chart.
func Render(w io.Writer, shape any, format Format, size Size) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(shape)
	}

	provider, err := rendererFor(format)
	if err != nil {
		return err
	}
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultSize
	}

	switch s := shape.(type) {
	case Grid:
		return renderGrid(w, s, provider, size)
	case Timeline:
		return renderTimeline(w, s, provider, size)
	case Radar:
		return renderRadar(w, s, provider, size)
	case BarChart:
		return renderBars(w, s, provider, size)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedShape, shape)
	}
}

func rendererFor(format Format) (gochart.RendererProvider, error) {
	switch format {
	case FormatPNG:
		return gochart.PNG, nil
	case FormatSVG:
		return gochart.SVG, nil
	case FormatJSON:
		return nil, fmt.Errorf("%w: json is not an image format", ErrUnknownFormat)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// hexColor converts "#RRGGBB" to a go-chart color.
func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func lineStyle(hex string, dashed bool) gochart.Style {
	st := gochart.Style{
		StrokeColor: hexColor(hex),
		StrokeWidth: strokeWidth,
		DotColor:    hexColor(hex),
		DotWidth:    dotWidth,
	}
	if dashed {
		st.StrokeDashArray = []float64{6, 4}
	}
	return st
}

func baseChart(title string, size Size) gochart.Chart {
	return gochart.Chart{
		Title:      title,
		Width:      size.Width,
		Height:     size.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
	}
}

func yearTicks(years []float64) []gochart.Tick {
	ticks := make([]gochart.Tick, len(years))
	for i, y := range years {
		ticks[i] = gochart.Tick{Value: y, Label: strconv.Itoa(int(y))}
	}
	return ticks
}

func drawChart(w io.Writer, ch gochart.Chart, provider gochart.RendererProvider) error {
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("rendering %q: %w", ch.Title, err)
	}
	return nil
}

// renderGrid draws one line per row across the columns. go-chart has no
// heatmap, so each row is colored by its peak cell.
func renderGrid(w io.Writer, g Grid, provider gochart.RendererProvider, size Size) error {
	if len(g.Rows) == 0 || len(g.Cols) < 2 {
		return ErrEmptyChart
	}

	xs := make([]float64, len(g.Cols))
	for j, c := range g.Cols {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			v = float64(j)
		}
		xs[j] = v
	}

	series := make([]gochart.Series, 0, len(g.Rows))
	for i, name := range g.Rows {
		peak := g.Min
		for _, v := range g.Values[i] {
			if v > peak {
				peak = v
			}
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: g.Values[i],
			Style:   lineStyle(g.ColorAt(peak), false),
		})
	}

	ch := baseChart(g.Title, size)
	ch.XAxis = gochart.XAxis{Name: "Year", Ticks: yearTicks(xs)}
	ch.YAxis = gochart.YAxis{Name: "CBAM impact", Range: &gochart.ContinuousRange{Min: g.Min, Max: g.Max}}
	ch.Series = series
	return drawChart(w, ch, provider)
}

func renderTimeline(w io.Writer, t Timeline, provider gochart.RendererProvider, size Size) error {
	if len(t.Years) < 2 {
		return ErrEmptyChart
	}
	s := t.ReductionSeries()
	st := lineStyle(s.Color, s.Dashed)
	colors := t.Colors
	st.DotColorProvider = func(_, _ gochart.Range, index int, _, _ float64) drawing.Color {
		if index < len(colors) {
			return hexColor(colors[index])
		}
		return hexColor(s.Color)
	}

	ch := baseChart("Decarbonization Roadmap", size)
	ch.XAxis = gochart.XAxis{Name: "Year", Ticks: yearTicks(s.X)}
	ch.YAxis = gochart.YAxis{Name: "Emissions index", Range: &gochart.ContinuousRange{Min: 0, Max: reductionBaseline}}
	ch.Series = []gochart.Series{gochart.ContinuousSeries{Name: s.Name, XValues: s.X, YValues: s.Y, Style: st}}
	return drawChart(w, ch, provider)
}

// renderRadar unrolls the radar onto a category axis, one line per series.
func renderRadar(w io.Writer, r Radar, provider gochart.RendererProvider, size Size) error {
	if len(r.Categories) < 2 || len(r.Series) == 0 {
		return ErrEmptyChart
	}

	xs := make([]float64, len(r.Categories))
	ticks := make([]gochart.Tick, len(r.Categories))
	for i, c := range r.Categories {
		xs[i] = float64(i)
		ticks[i] = gochart.Tick{Value: float64(i), Label: c}
	}

	series := make([]gochart.Series, 0, len(r.Series))
	for _, rs := range r.Series {
		series = append(series, gochart.ContinuousSeries{
			Name:    rs.Name,
			XValues: xs,
			YValues: rs.Values,
			Style:   lineStyle(rs.Color, rs.Dashed),
		})
	}

	ch := baseChart("Performance Benchmark", size)
	ch.XAxis = gochart.XAxis{Ticks: ticks}
	ch.YAxis = gochart.YAxis{Range: &gochart.ContinuousRange{Min: r.Min, Max: r.Max}}
	ch.Series = series
	return drawChart(w, ch, provider)
}

// renderBars draws a vertical bar chart. Horizontal layouts are drawn
// vertically since go-chart only supports one orientation.
func renderBars(w io.Writer, b BarChart, provider gochart.RendererProvider, size Size) error {
	if len(b.Bars) == 0 || b.MaxValue() <= 0 {
		return ErrEmptyChart
	}

	values := make([]gochart.Value, len(b.Bars))
	for i, bar := range b.Bars {
		label := bar.Label
		if bar.Text != "" {
			label = bar.Label + " (" + bar.Text + ")"
		}
		values[i] = gochart.Value{
			Label: label,
			Value: bar.Value,
			Style: gochart.Style{
				FillColor:   hexColor(bar.Color),
				StrokeColor: hexColor(bar.Color),
				StrokeWidth: 0,
			},
		}
	}

	title := b.Title
	if b.Annotation != "" {
		title += "  " + b.Annotation
	}

	bc := gochart.BarChart{
		Title:      title,
		Width:      size.Width,
		Height:     size.Height,
		BarWidth:   barWidth,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      gochart.YAxis{Name: b.ValueAxis, Range: &gochart.ContinuousRange{Min: 0, Max: b.MaxValue() * 1.1}},
		Bars:       values,
	}
	if err := bc.Render(provider, w); err != nil {
		return fmt.Errorf("rendering %q: %w", b.Title, err)
	}
	return nil
}
