// SPDX-License-Identifier: MIT
// Package: lvplot/chart
//
// bars.go — single-series bar charts (go-chart BarChart) and grouped bar
// charts (drawn on the renderer).
//
// Axis policy for RenderBars:
//   - all values ≤ 0 (and one < 0): [1.1·min, 0], bars hang from zero.
//   - otherwise:                    [min(0, 1.1·min), 1.2·max].

package chart

import (
	"fmt"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	opRenderBars        = "RenderBars"
	opRenderGroupedBars = "RenderGroupedBars"

	defaultBarFormat     = "%.3f"
	defaultGroupedFormat = "%.1f"
	headroomTop          = 1.2 // axis max as a multiple of the largest bar
	headroomBottom       = 1.1 // axis min as a multiple of the most negative bar
	groupFill            = 0.8 // share of a group slot covered by bars
	barLabelGap          = 4   // pixels between a bar top and its value label
	minBarWidth          = 8
	maxBarWidth          = 160
	legendAlpha          = 0.9
)

// BarSpec describes one bar per category.
type BarSpec struct {
	Title       string
	YLabel      string
	Labels      []string  // category names, one per value
	Values      []float64 // bar heights
	LabelFormat string    // printf verb for value labels and ticks; default "%.3f"
}

// RenderBars draws spec to w. Each category label carries its formatted value.
func RenderBars(w io.Writer, spec BarSpec, theme Theme, format Format) error {
	provider, err := prepare(opRenderBars, theme, format)
	if err != nil {
		return err
	}
	if len(spec.Values) == 0 {
		return chartErrorf(opRenderBars, ErrNoSeries, "%q", spec.Title)
	}
	if len(spec.Labels) != len(spec.Values) {
		return chartErrorf(opRenderBars, ErrLengthMismatch, "%d labels for %d values", len(spec.Labels), len(spec.Values))
	}
	for i, v := range spec.Values {
		if !finite(v) {
			return chartErrorf(opRenderBars, ErrBadRange, "value %d = %v", i, v)
		}
	}
	verb := spec.LabelFormat
	if verb == "" {
		verb = defaultBarFormat
	}

	lo, hi := BarBounds(spec.Values)
	ticks := relabel(ticksWithin(NiceTicks(lo, hi, defaultTickCount), lo, hi), func(v float64) string {
		return fmt.Sprintf(verb, v)
	})

	bars := make([]gochart.Value, len(spec.Values))
	for i, v := range spec.Values {
		color := theme.Color(i)
		bars[i] = gochart.Value{
			Value: v,
			Label: fmt.Sprintf("%s ("+verb+")", spec.Labels[i], v),
			Style: gochart.Style{
				FillColor:   withAlpha(color, theme.BarAlpha),
				StrokeColor: color,
				StrokeWidth: 1,
			},
		}
	}

	bc := gochart.BarChart{
		Title:        spec.Title,
		TitleStyle:   gochart.Style{FontSize: theme.TitleSize},
		Width:        theme.Width,
		Height:       theme.Height,
		Background:   gochart.Style{Padding: gochart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20}},
		BarWidth:     barWidth(theme.Width, len(bars)),
		UseBaseValue: true,
		BaseValue:    0,
		XAxis:        gochart.Style{FontSize: theme.FontSize},
		YAxis: gochart.YAxis{
			Name:  spec.YLabel,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
			Ticks: ticks,
			Style: gochart.Style{FontSize: theme.FontSize},
		},
		Bars: bars,
	}

	if err = bc.Render(provider, w); err != nil {
		return chartErrorf(opRenderBars, err, "%q", spec.Title)
	}

	return nil
}

// BarBounds returns the y range used for bars of the given values.
func BarBounds(values []float64) (lo, hi float64) {
	mn, mx := values[0], values[0]
	for _, v := range values[1:] {
		mn = math.Min(mn, v)
		mx = math.Max(mx, v)
	}

	switch {
	case mx <= 0 && mn < 0:
		lo, hi = mn*headroomBottom, 0
	default:
		lo, hi = math.Min(0, mn*headroomBottom), mx*headroomTop
	}
	if hi <= lo {
		hi = lo + 1
	}

	return lo, hi
}

func barWidth(width, n int) int {
	w := width / (2 * (n + 1))

	return int(math.Max(minBarWidth, math.Min(maxBarWidth, float64(w))))
}

// GroupedBarSpec describes members (legend entries) × groups (x categories).
type GroupedBarSpec struct {
	Title       string
	YLabel      string
	Groups      []string    // x-axis categories
	Members     []string    // one color per member
	Values      [][]float64 // [member][group], each ≥ 0
	LabelFormat string      // printf verb for value labels; default "%.1f"
}

// RenderGroupedBars draws spec to w.
//
// Layout:
//   - y axis: [0, 1.2·max] with nice ticks and light grid lines.
//   - each group slot is split into len(Members) adjacent bars covering 80%.
//   - values are printed above bars; a legend sits in the top-left corner.
func RenderGroupedBars(w io.Writer, spec GroupedBarSpec, theme Theme, format Format) error {
	provider, err := prepare(opRenderGroupedBars, theme, format)
	if err != nil {
		return err
	}
	if err = validateGrouped(spec); err != nil {
		return err
	}
	verb := spec.LabelFormat
	if verb == "" {
		verb = defaultGroupedFormat
	}

	_, vmax := valuesBounds(spec.Values)
	hi := vmax * headroomTop
	if hi <= 0 {
		hi = 1
	}
	ticks := ticksWithin(NiceTicks(0, hi, defaultTickCount), 0, hi)

	c, err := newCanvas(provider, theme)
	if err != nil {
		return chartErrorf(opRenderGroupedBars, err, "canvas")
	}

	tickWidth := 0
	for _, t := range ticks {
		if bw := c.measure(t.Label, theme.FontSize).Width(); bw > tickWidth {
			tickWidth = bw
		}
	}
	plot := gochart.Box{
		Top:    70,
		Left:   50 + tickWidth,
		Right:  theme.Width - 30,
		Bottom: theme.Height - 60,
	}
	if collapsed(plot) {
		return chartErrorf(opRenderGroupedBars, ErrBadTheme, "canvas %dx%d too small", theme.Width, theme.Height)
	}

	// Title and y label.
	c.text(spec.Title, theme.Width/2, plot.Top/2, theme.TitleSize, anchorCenter)
	c.textRotated(spec.YLabel, 20, (plot.Top+plot.Bottom)/2, theme.FontSize, rotateUp)

	// Grid and tick labels.
	for _, t := range ticks {
		y := linearY(t.Value, 0, hi, plot.Top, plot.Bottom)
		c.line(plot.Left, y, plot.Right, y, theme.gridColor(), 1)
		c.text(t.Label, plot.Left-6, y, theme.FontSize, anchorRight)
	}

	// Bars, value labels, group labels.
	slot := float64(plot.Width()) / float64(len(spec.Groups))
	bw := slot * groupFill / float64(len(spec.Members))
	for g, name := range spec.Groups {
		left := float64(plot.Left) + float64(g)*slot + slot*(1-groupFill)/2
		for m := range spec.Members {
			v := spec.Values[m][g]
			box := gochart.Box{
				Left:   int(math.Round(left + float64(m)*bw)),
				Right:  int(math.Round(left + float64(m+1)*bw)),
				Top:    linearY(v, 0, hi, plot.Top, plot.Bottom),
				Bottom: plot.Bottom,
			}
			color := theme.Color(m)
			c.fillStrokeRect(box, withAlpha(color, theme.BarAlpha), color, 1)
			c.text(fmt.Sprintf(verb, v), (box.Left+box.Right)/2, box.Top-barLabelGap-int(theme.FontSize/2), theme.FontSize, anchorCenter)
		}
		c.text(name, int(float64(plot.Left)+(float64(g)+0.5)*slot), plot.Bottom+18, theme.FontSize, anchorCenter)
	}

	// Axes.
	c.line(plot.Left, plot.Top, plot.Left, plot.Bottom, c.ink, 1)
	c.line(plot.Left, plot.Bottom, plot.Right, plot.Bottom, c.ink, 1)

	drawLegend(c, spec.Members, plot.Left+10, plot.Top+10)

	if err = c.save(w); err != nil {
		return chartErrorf(opRenderGroupedBars, err, "%q", spec.Title)
	}

	return nil
}

func validateGrouped(spec GroupedBarSpec) error {
	if len(spec.Groups) == 0 || len(spec.Members) == 0 {
		return chartErrorf(opRenderGroupedBars, ErrNoSeries, "%d groups, %d members", len(spec.Groups), len(spec.Members))
	}
	if len(spec.Values) != len(spec.Members) {
		return chartErrorf(opRenderGroupedBars, ErrLengthMismatch, "%d value rows for %d members", len(spec.Values), len(spec.Members))
	}
	for m, row := range spec.Values {
		if len(row) != len(spec.Groups) {
			return chartErrorf(opRenderGroupedBars, ErrLengthMismatch, "member %q has %d values for %d groups",
				spec.Members[m], len(row), len(spec.Groups))
		}
		for g, v := range row {
			if !finite(v) || v < 0 {
				return chartErrorf(opRenderGroupedBars, ErrBadRange, "member %q group %q = %v", spec.Members[m], spec.Groups[g], v)
			}
		}
	}

	return nil
}

// drawLegend stacks color swatches and names, boxed, from (x, y).
func drawLegend(c *canvas, names []string, x, y int) {
	const (
		swatch = 12
		pad    = 8
		rowGap = 6
	)
	size := c.theme.FontSize
	textW := c.maxTextWidth(names, size)
	rowH := swatch + rowGap
	box := gochart.Box{
		Left:   x,
		Top:    y,
		Right:  x + pad*3 + swatch + textW,
		Bottom: y + pad*2 + rowH*len(names) - rowGap,
	}
	c.fillStrokeRect(box, withAlpha(drawing.ColorWhite, legendAlpha), c.theme.gridColor(), 1)

	for i, name := range names {
		top := y + pad + i*rowH
		sw := gochart.Box{Left: x + pad, Top: top, Right: x + pad + swatch, Bottom: top + swatch}
		c.fillRect(sw, c.theme.Color(i))
		c.text(name, sw.Right+pad, top+swatch/2, size, anchorLeft)
	}
}
