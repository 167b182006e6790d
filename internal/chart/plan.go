// Package chart turns named level/value series into rendered line charts.
//
// The work is split in two: BuildPlan computes everything decidable without
// a drawing surface (axis ranges, gridlines, tick marks, dash patterns, the
// legend) and Renderer draws a Plan with go-chart. The split keeps the axis
// and legend rules testable as plain arithmetic.
package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
)

const (
	// legendMaxEntries caps how many series get a named legend entry.
	// Series past the cap still plot; the legend summarizes them as a count.
	legendMaxEntries = 10

	// dashCycleLength is the period of the dash-pattern rotation.
	dashCycleLength = 3

	// yHeadroom pads the y axis above the tallest point so lines never
	// touch the chart's top edge.
	yHeadroom = 1.05
)

// levelMarkers are the fixed x positions that get tick marks, when they
// fall inside the plotted range.
var levelMarkers = [...]int{1, 10, 20, 30}

// dashPatterns is the repeating stroke cycle: solid, long dash, short dash.
// Series are told apart by dash rather than color, so charts survive
// grayscale printing and any color-vision deficiency.
var dashPatterns = [dashCycleLength][]float64{
	nil,
	{10, 6},
	{3, 3},
}

// DashPattern returns the stroke dash array for the series at the given
// position. A nil result means a solid line.
func DashPattern(index int) []float64 {
	if index < 0 {
		index = -index
	}
	return dashPatterns[index%dashCycleLength]
}

// Tick is one labeled axis position.
type Tick struct {
	Value float64
	Label string
}

// SeriesPlan is one series prepared for drawing: parallel x/y slices in
// level order, the assigned dash pattern, and whether the legend names it.
type SeriesPlan struct {
	Name     string
	InLegend bool
	Dash     []float64
	XValues  []float64
	YValues  []float64
}

// Plan is a complete drawing plan for one chart: shared axis ranges, tick
// and gridline positions, the per-series stroke assignments, and the legend
// contents. Plans are value objects; build a fresh one per render.
type Plan struct {
	YLabel string
	Step   float64

	XMin float64
	XMax float64
	YMax float64

	XTicks []Tick
	YTicks []Tick

	Series []SeriesPlan

	// LegendOverflow counts series beyond the legend cap. Zero means every
	// series is named in the legend.
	LegendOverflow int
}

// BuildPlan computes the drawing plan for the given series.
//
// Axis rules: the x range spans the extreme x values across all series,
// widened by one when it would collapse to a point. The y range runs from
// zero to the smallest step multiple at or above yHeadroom times the
// largest value; when no value is positive it degrades to a single step.
// Both rules keep every later scale division away from zero denominators.
func BuildPlan(series []entities.Series, yLabel string, step float64) (Plan, error) {
	if len(series) == 0 {
		return Plan{}, errors.InvalidArgument("at least one series is required")
	}
	if step <= 0 {
		return Plan{}, errors.InvalidArgumentf("gridline step must be positive, got %v", step)
	}

	xMin := math.Inf(1)
	xMax := math.Inf(-1)
	yMax := math.Inf(-1)
	for _, sr := range series {
		if len(sr.Points) == 0 {
			return Plan{}, errors.InvalidArgumentf("series %q has no points", sr.Name)
		}
		for _, p := range sr.Points {
			x := float64(p.Level)
			xMin = math.Min(xMin, x)
			xMax = math.Max(xMax, x)
			yMax = math.Max(yMax, p.Value)
		}
	}

	if xMax <= xMin {
		xMax = xMin + 1
	}

	top := step
	if yMax > 0 {
		top = roundUpToStep(math.Ceil(yMax*yHeadroom), step)
	}

	plan := Plan{
		YLabel: yLabel,
		Step:   step,
		XMin:   xMin,
		XMax:   xMax,
		YMax:   top,
		XTicks: levelTicks(xMin, xMax),
		YTicks: stepTicks(top, step),
	}

	for i, sr := range series {
		sp := SeriesPlan{
			Name:     sr.Name,
			InLegend: i < legendMaxEntries,
			Dash:     DashPattern(i),
			XValues:  make([]float64, len(sr.Points)),
			YValues:  make([]float64, len(sr.Points)),
		}
		for j, p := range sr.Points {
			sp.XValues[j] = float64(p.Level)
			sp.YValues[j] = p.Value
		}
		plan.Series = append(plan.Series, sp)
	}

	if overflow := len(series) - legendMaxEntries; overflow > 0 {
		plan.LegendOverflow = overflow
	}

	return plan, nil
}

// LegendEntries returns the legend text in display order: one entry per
// named series, then a single summary entry for any overflow.
func (p Plan) LegendEntries() []string {
	entries := make([]string, 0, legendMaxEntries+1)
	for _, sp := range p.Series {
		if sp.InLegend {
			entries = append(entries, sp.Name)
		}
	}
	if p.LegendOverflow > 0 {
		entries = append(entries, overflowLabel(p.LegendOverflow))
	}
	return entries
}

func overflowLabel(n int) string {
	return "+" + strconv.Itoa(n) + " more"
}

// levelTicks keeps the fixed level markers that fall inside [xMin, xMax].
func levelTicks(xMin, xMax float64) []Tick {
	var ticks []Tick
	for _, marker := range levelMarkers {
		m := float64(marker)
		if m < xMin || m > xMax {
			continue
		}
		ticks = append(ticks, Tick{Value: m, Label: strconv.Itoa(marker)})
	}
	return ticks
}

// stepTicks lays a labeled gridline at every step multiple from 0 to top.
func stepTicks(top, step float64) []Tick {
	count := int(math.Round(top/step)) + 1
	ticks := make([]Tick, 0, count)
	for i := 0; i < count; i++ {
		v := float64(i) * step
		ticks = append(ticks, Tick{Value: v, Label: formatTickValue(v)})
	}
	return ticks
}

// roundUpToStep returns the smallest multiple of step at or above v.
func roundUpToStep(v, step float64) float64 {
	return math.Ceil(v/step) * step
}

// formatTickValue prints a tick label with at most two decimals and no
// trailing zeros, so "464.00" reads "464" and "0.30" reads "0.3".
func formatTickValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
