// SPDX-License-Identifier: MIT
// Package: lvplot/chart
//
// lines.go — recovery line charts.
//
// Contract:
//   - One ContinuousSeries per input series, palette color i, line + dots.
//   - Markers[i] (optional) becomes a dashed vertical grid line in series i's color.
//   - ScaleLog plots log10(y) on decade ticks; ScaleInverted flips the y axis.
//   - FixedY pins the y range and clips every series to it; otherwise the
//     range is derived with NiceBounds/NiceTicks.

package chart

import (
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const opRenderLines = "RenderLines"

// Scale selects the y-axis mapping of a line chart.
type Scale int

const (
	ScaleLinear   Scale = iota // plain values, ascending axis
	ScaleLog                   // log10 values, decade ticks
	ScaleInverted              // plain values, descending axis
)

// logFloorDivisor places non-positive values one decade below the smallest positive one.
const logFloorDivisor = 10.0

// markerDash is the on/off pattern of recovery markers.
var markerDash = []float64{6, 4}

// Series is one named polyline.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// LineSpec describes a line chart.
type LineSpec struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series

	// Markers holds one x position per series (or none) for dashed vertical lines.
	Markers []float64

	Scale Scale

	FixedY bool // when true the y axis spans exactly [YMin, YMax]
	YMin   float64
	YMax   float64
}

// RenderLines draws spec to w.
func RenderLines(w io.Writer, spec LineSpec, theme Theme, format Format) error {
	provider, err := prepare(opRenderLines, theme, format)
	if err != nil {
		return err
	}
	if err = validateLines(spec); err != nil {
		return err
	}

	ys, err := scaledY(spec)
	if err != nil {
		return err
	}

	xlo, xhi := seriesBounds(spec.Series, func(s Series) []float64 { return s.X })
	xTicks := NiceTicks(xlo, xhi, defaultTickCount+2)
	xRange := &gochart.ContinuousRange{Min: xTicks[0].Value, Max: xTicks[len(xTicks)-1].Value}

	yRange, yTicks, err := yAxis(spec, ys)
	if err != nil {
		return err
	}

	// The legend lists input series; with FixedY one input may be drawn as
	// several clipped fragments.
	legendSeries := make([]gochart.Series, len(spec.Series))
	var series []gochart.Series
	for i, s := range spec.Series {
		color := theme.Color(i)
		style := gochart.Style{
			StrokeColor: color,
			StrokeWidth: lineStrokeWidth,
			DotColor:    color,
			DotWidth:    lineDotWidth,
		}
		legendSeries[i] = gochart.ContinuousSeries{Name: s.Name, Style: style}

		if !spec.FixedY {
			series = append(series, gochart.ContinuousSeries{Name: s.Name, XValues: s.X, YValues: ys[i], Style: style})
			continue
		}
		for _, f := range clipPolyline(s.X, ys[i], yRange.Min, yRange.Max) {
			series = append(series, gochart.ContinuousSeries{
				Name:    s.Name,
				XValues: f.x,
				YValues: f.y,
				Style:   hideCrossingDots(style, f.crossing),
			})
		}
	}
	if len(series) == 0 {
		return chartErrorf(opRenderLines, ErrBadRange, "no point inside y limits [%v, %v]", spec.YMin, spec.YMax)
	}

	markers := make([]gochart.GridLine, len(spec.Markers))
	for i, x := range spec.Markers {
		markers[i] = gochart.GridLine{
			Value: x,
			Style: gochart.Style{
				StrokeColor:     withAlpha(theme.Color(i), markerAlpha),
				StrokeWidth:     1,
				StrokeDashArray: markerDash,
			},
		}
	}

	grid := gochart.Style{StrokeColor: theme.gridColor(), StrokeWidth: 1}
	ch := gochart.Chart{
		Title:      spec.Title,
		TitleStyle: gochart.Style{FontSize: theme.TitleSize},
		Width:      theme.Width,
		Height:     theme.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: 30, Bottom: 20}},
		XAxis: gochart.XAxis{
			Name:           spec.XLabel,
			Range:          xRange,
			Ticks:          xTicks,
			GridLines:      markers,
			GridMajorStyle: grid,
			Style:          gochart.Style{FontSize: theme.FontSize},
		},
		YAxis: gochart.YAxis{
			Name:           spec.YLabel,
			Range:          yRange,
			Ticks:          yTicks,
			GridMajorStyle: grid,
			Style:          gochart.Style{FontSize: theme.FontSize},
		},
		Series: series,
	}
	legend := ch
	legend.Series = legendSeries
	ch.Elements = []gochart.Renderable{gochart.Legend(&legend)}

	if err = ch.Render(provider, w); err != nil {
		return chartErrorf(opRenderLines, err, "%q", spec.Title)
	}

	return nil
}

// hideCrossingDots keeps the dot layer to real samples: band-edge points
// added by clipping get a transparent dot.
func hideCrossingDots(style gochart.Style, crossing []bool) gochart.Style {
	dot := style.DotColor
	style.DotColorProvider = func(_, _ gochart.Range, i int, _, _ float64) drawing.Color {
		if i < len(crossing) && crossing[i] {
			return drawing.ColorTransparent
		}
		return dot
	}

	return style
}

func validateLines(spec LineSpec) error {
	if len(spec.Series) == 0 {
		return chartErrorf(opRenderLines, ErrNoSeries, "%q", spec.Title)
	}
	for _, s := range spec.Series {
		if len(s.X) == 0 || len(s.X) != len(s.Y) {
			return chartErrorf(opRenderLines, ErrLengthMismatch, "series %q: %d x, %d y", s.Name, len(s.X), len(s.Y))
		}
		for i := range s.X {
			if !finite(s.X[i]) || !finite(s.Y[i]) {
				return chartErrorf(opRenderLines, ErrBadRange, "series %q point %d", s.Name, i)
			}
		}
	}
	if len(spec.Markers) != 0 && len(spec.Markers) != len(spec.Series) {
		return chartErrorf(opRenderLines, ErrLengthMismatch, "%d markers for %d series", len(spec.Markers), len(spec.Series))
	}
	for _, m := range spec.Markers {
		if !finite(m) {
			return chartErrorf(opRenderLines, ErrBadRange, "marker %v", m)
		}
	}
	if spec.FixedY {
		if !finite(spec.YMin) || !finite(spec.YMax) || spec.YMin >= spec.YMax {
			return chartErrorf(opRenderLines, ErrBadRange, "y limits [%v, %v]", spec.YMin, spec.YMax)
		}
		if spec.Scale == ScaleLog && spec.YMin <= 0 {
			return chartErrorf(opRenderLines, ErrBadRange, "log y limits must be positive, got %v", spec.YMin)
		}
	}

	return nil
}

// scaledY returns the plotted y values: log10 for ScaleLog, copies otherwise.
func scaledY(spec LineSpec) ([][]float64, error) {
	out := make([][]float64, len(spec.Series))
	if spec.Scale != ScaleLog {
		for i, s := range spec.Series {
			out[i] = append([]float64(nil), s.Y...)
		}
		return out, nil
	}

	minPos := math.Inf(1)
	for _, s := range spec.Series {
		for _, v := range s.Y {
			if v > 0 && v < minPos {
				minPos = v
			}
		}
	}
	if math.IsInf(minPos, 1) {
		return nil, chartErrorf(opRenderLines, ErrBadRange, "log scale needs a positive value")
	}
	floor := minPos / logFloorDivisor

	for i, s := range spec.Series {
		out[i] = make([]float64, len(s.Y))
		for j, v := range s.Y {
			if v <= 0 {
				v = floor
			}
			out[i][j] = math.Log10(v)
		}
	}

	return out, nil
}

// yAxis derives the y range and ticks for the (already scaled) values.
func yAxis(spec LineSpec, ys [][]float64) (*gochart.ContinuousRange, []gochart.Tick, error) {
	var lo, hi float64
	var ticks []gochart.Tick

	switch {
	case spec.Scale == ScaleLog:
		if spec.FixedY {
			lo, hi = math.Log10(spec.YMin), math.Log10(spec.YMax)
		} else {
			lo, hi = valuesBounds(ys)
			lo, hi = math.Floor(lo), math.Ceil(hi)
			if hi <= lo {
				hi = lo + 1
			}
		}
		ticks = decadeTicks(int(math.Ceil(lo)), int(math.Floor(hi)))
	case spec.FixedY:
		lo, hi = spec.YMin, spec.YMax
		ticks = ticksWithin(NiceTicks(lo, hi, defaultTickCount), lo, hi)
	default:
		lo, hi = valuesBounds(ys)
		lo, hi = NiceBounds(lo, hi)
		ticks = ticksWithin(NiceTicks(lo, hi, defaultTickCount), lo, hi)
	}

	if !finite(lo) || !finite(hi) || lo >= hi {
		return nil, nil, chartErrorf(opRenderLines, ErrBadRange, "y axis [%v, %v]", lo, hi)
	}

	return &gochart.ContinuousRange{Min: lo, Max: hi, Descending: spec.Scale == ScaleInverted}, ticks, nil
}

func seriesBounds(series []Series, pick func(Series) []float64) (float64, float64) {
	vals := make([][]float64, len(series))
	for i, s := range series {
		vals[i] = pick(s)
	}

	return valuesBounds(vals)
}

func valuesBounds(vals [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range vals {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	return lo, hi
}

// prepare validates the theme and resolves the renderer for format.
func prepare(op string, theme Theme, format Format) (gochart.RendererProvider, error) {
	if err := theme.Validate(); err != nil {
		return nil, chartErrorf(op, err, "theme")
	}
	provider, err := format.provider()
	if err != nil {
		return nil, chartErrorf(op, err, "%s", format)
	}

	return provider, nil
}
