package chart

import (
	"io"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/1is1/dota-stat-calculator/internal/errors"
)

const (
	defaultWidth  = 960
	defaultHeight = 440

	seriesStrokeWidth = 2.0
)

// Renderer draws Plans with go-chart. Every call produces a complete fresh
// image; nothing is retained between renders.
type Renderer struct {
	width  int
	height int
}

// RendererConfig sets the output image dimensions in pixels.
type RendererConfig struct {
	Width  int
	Height int
}

// NewRenderer creates a renderer. A nil config or non-positive dimensions
// fall back to the defaults.
func NewRenderer(cfg *RendererConfig) *Renderer {
	r := &Renderer{width: defaultWidth, height: defaultHeight}
	if cfg == nil {
		return r
	}
	if cfg.Width > 0 {
		r.width = cfg.Width
	}
	if cfg.Height > 0 {
		r.height = cfg.Height
	}
	return r
}

// RenderSVG writes the plan as an SVG document.
func (r *Renderer) RenderSVG(plan Plan, w io.Writer) error {
	return r.render(plan, chart.SVG, w)
}

// RenderPNG writes the plan as a PNG image.
func (r *Renderer) RenderPNG(plan Plan, w io.Writer) error {
	return r.render(plan, chart.PNG, w)
}

func (r *Renderer) render(plan Plan, provider chart.RendererProvider, w io.Writer) error {
	if len(plan.Series) == 0 {
		return errors.InvalidArgument("plan has no series to draw")
	}

	ch := chart.Chart{
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 32},
		},
		XAxis: chart.XAxis{
			Name:  "Level",
			Range: &chart.ContinuousRange{Min: plan.XMin, Max: plan.XMax},
			Ticks: xAxisTicks(plan),
		},
		YAxis: chart.YAxis{
			Name:      plan.YLabel,
			Range:     &chart.ContinuousRange{Min: 0, Max: plan.YMax},
			Ticks:     axisTicks(plan.YTicks),
			GridLines: gridLines(plan.YTicks),
			GridMajorStyle: chart.Style{
				StrokeColor: chart.ColorLightGray,
				StrokeWidth: 1.0,
			},
		},
		Series: chartSeries(plan),
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(provider, w); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to render chart")
	}
	return nil
}

// chartSeries converts the planned series into go-chart series. All lines
// share one stroke color; the dash pattern carries the differentiation.
// Series past the legend cap get a blank name so the legend skips them, and
// a zero-size transparent series supplies the overflow summary label.
func chartSeries(plan Plan) []chart.Series {
	out := make([]chart.Series, 0, len(plan.Series)+1)
	for _, sp := range plan.Series {
		name := sp.Name
		if !sp.InLegend {
			name = ""
		}
		out = append(out, chart.ContinuousSeries{
			Name:    name,
			XValues: sp.XValues,
			YValues: sp.YValues,
			Style: chart.Style{
				StrokeColor:     chart.ColorBlack,
				StrokeWidth:     seriesStrokeWidth,
				StrokeDashArray: sp.Dash,
			},
		})
	}

	if plan.LegendOverflow > 0 {
		out = append(out, chart.ContinuousSeries{
			Name:    overflowLabel(plan.LegendOverflow),
			XValues: []float64{plan.XMin},
			YValues: []float64{0},
			Style: chart.Style{
				StrokeColor: chart.ColorTransparent,
				StrokeWidth: 0,
				DotWidth:    0,
			},
		})
	}

	return out
}

// xAxisTicks returns the planned level markers, or the range endpoints when
// no marker falls inside the range, so the library never invents its own
// tick positions.
func xAxisTicks(plan Plan) []chart.Tick {
	if len(plan.XTicks) > 0 {
		return axisTicks(plan.XTicks)
	}
	return []chart.Tick{
		{Value: plan.XMin, Label: strconv.FormatFloat(plan.XMin, 'f', -1, 64)},
		{Value: plan.XMax, Label: strconv.FormatFloat(plan.XMax, 'f', -1, 64)},
	}
}

func axisTicks(ticks []Tick) []chart.Tick {
	out := make([]chart.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

// gridLines places a horizontal gridline at every tick above the axis line.
func gridLines(ticks []Tick) []chart.GridLine {
	var lines []chart.GridLine
	for _, t := range ticks {
		if t.Value == 0 {
			continue
		}
		lines = append(lines, chart.GridLine{Value: t.Value})
	}
	return lines
}
