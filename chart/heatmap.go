// SPDX-License-Identifier: MIT
// Package: lvplot/chart
//
// heatmap.go — annotated heatmap with a colorbar.
//
// Layout (left → right): rotated y label, row labels, cell grid, colorbar,
// colorbar ticks, rotated colorbar label. Column labels and the x label sit
// under the grid; the title is centered on top.

package chart

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvplot/matrix"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	opRenderHeatmap      = "RenderHeatmap"
	defaultCellFormat    = "%.1f"
	colorbarWidth        = 24
	colorbarGap          = 30
	colorbarStrips       = 64
	colorbarTicks        = 5
	colorbarReserve      = 170 // right margin for bar, ticks and label
	heatmapTop           = 80
	heatmapBottomReserve = 80
	heatmapLabelGap      = 10
)

// HeatmapSpec describes a Rows×Cols grid of values.
type HeatmapSpec struct {
	Title         string
	XLabel        string
	YLabel        string
	ColorbarLabel string
	Rows          []string    // one label per grid row (top to bottom)
	Cols          []string    // one label per grid column
	Values        [][]float64 // [row][col]
	CellFormat    string      // printf verb for annotations; default "%.1f"
	Colormap      *Colormap   // nil selects ReversedRdYlGn
}

// RenderHeatmap draws spec to w.
func RenderHeatmap(w io.Writer, spec HeatmapSpec, theme Theme, format Format) error {
	provider, err := prepare(opRenderHeatmap, theme, format)
	if err != nil {
		return err
	}
	grid, err := heatmapGrid(spec)
	if err != nil {
		return err
	}
	lo, hi, _ := matrix.Bounds(grid)

	cmap := ReversedRdYlGn()
	if spec.Colormap != nil {
		cmap = *spec.Colormap
	}
	verb := spec.CellFormat
	if verb == "" {
		verb = defaultCellFormat
	}

	c, err := newCanvas(provider, theme)
	if err != nil {
		return chartErrorf(opRenderHeatmap, err, "canvas")
	}

	rowLabelW := c.maxTextWidth(spec.Rows, theme.FontSize)
	plot := gochart.Box{
		Top:    heatmapTop,
		Left:   40 + rowLabelW + heatmapLabelGap,
		Right:  theme.Width - colorbarReserve,
		Bottom: theme.Height - heatmapBottomReserve,
	}
	if collapsed(plot) {
		return chartErrorf(opRenderHeatmap, ErrBadTheme, "canvas %dx%d too small", theme.Width, theme.Height)
	}

	c.text(spec.Title, theme.Width/2, plot.Top/2, theme.TitleSize, anchorCenter)

	rows, cols := grid.Shape()
	cw := float64(plot.Width()) / float64(cols)
	ch := float64(plot.Height()) / float64(rows)

	shade := grid.Clone()
	if err = shade.Apply(func(_, _ int, v float64) float64 { return Normalize(v, lo, hi) }); err != nil {
		return chartErrorf(opRenderHeatmap, ErrBadRange, "%v", err)
	}
	if err = drawCells(c, grid, shade, plot, cw, ch, cmap, verb); err != nil {
		return chartErrorf(opRenderHeatmap, err, "cells")
	}

	for i, name := range spec.Rows {
		y := plot.Top + int((float64(i)+0.5)*ch)
		c.text(name, plot.Left-heatmapLabelGap, y, theme.FontSize, anchorRight)
	}
	for j, name := range spec.Cols {
		x := plot.Left + int((float64(j)+0.5)*cw)
		c.text(name, x, plot.Bottom+heatmapLabelGap+int(theme.FontSize), theme.FontSize, anchorCenter)
	}
	c.text(spec.XLabel, (plot.Left+plot.Right)/2, plot.Bottom+heatmapBottomReserve/2+int(theme.FontSize), theme.FontSize, anchorCenter)
	c.textRotated(spec.YLabel, 20, (plot.Top+plot.Bottom)/2, theme.FontSize, rotateUp)

	drawColorbar(c, cmap, plot, lo, hi, spec.ColorbarLabel)

	if err = c.save(w); err != nil {
		return chartErrorf(opRenderHeatmap, err, "%q", spec.Title)
	}

	return nil
}

// heatmapGrid validates labels against the value table and lifts it into a Dense.
func heatmapGrid(spec HeatmapSpec) (*matrix.Dense, error) {
	if len(spec.Values) == 0 || len(spec.Rows) == 0 || len(spec.Cols) == 0 {
		return nil, chartErrorf(opRenderHeatmap, ErrNoSeries, "%q", spec.Title)
	}
	if len(spec.Values) != len(spec.Rows) {
		return nil, chartErrorf(opRenderHeatmap, ErrLengthMismatch, "%d rows for %d labels", len(spec.Values), len(spec.Rows))
	}
	for i, row := range spec.Values {
		if len(row) != len(spec.Cols) {
			return nil, chartErrorf(opRenderHeatmap, ErrLengthMismatch, "row %d has %d values for %d columns", i, len(row), len(spec.Cols))
		}
	}
	grid, err := matrix.NewFromRows(spec.Values)
	if err != nil {
		// Shapes were checked above; what is left is the NaN/Inf policy.
		return nil, chartErrorf(opRenderHeatmap, ErrBadRange, "%v", err)
	}

	return grid, nil
}

// drawCells fills one box per element of values, colored by the matching
// element of shade (already in [0, 1]) and annotated with verb.
func drawCells(c *canvas, values, shade matrix.Matrix, plot gochart.Box, cw, ch float64, cmap Colormap, verb string) error {
	for i := 0; i < values.Rows(); i++ {
		for j := 0; j < values.Cols(); j++ {
			v, err := values.At(i, j)
			if err != nil {
				return err
			}
			t, err := shade.At(i, j)
			if err != nil {
				return err
			}
			cell := gochart.Box{
				Left:   plot.Left + int(float64(j)*cw),
				Right:  plot.Left + int(float64(j+1)*cw),
				Top:    plot.Top + int(float64(i)*ch),
				Bottom: plot.Top + int(float64(i+1)*ch),
			}
			c.fillStrokeRect(cell, cmap.At(t), drawing.ColorWhite, 1)
			c.text(fmt.Sprintf(verb, v), (cell.Left+cell.Right)/2, (cell.Top+cell.Bottom)/2, c.theme.FontSize, anchorCenter)
		}
	}

	return nil
}

// drawColorbar paints a vertical gradient right of plot with nice ticks.
func drawColorbar(c *canvas, cmap Colormap, plot gochart.Box, lo, hi float64, label string) {
	bar := gochart.Box{
		Left:   plot.Right + colorbarGap,
		Right:  plot.Right + colorbarGap + colorbarWidth,
		Top:    plot.Top,
		Bottom: plot.Bottom,
	}
	h := float64(bar.Height())
	for k := 0; k < colorbarStrips; k++ {
		top := bar.Bottom - int(float64(k+1)*h/colorbarStrips)
		bottom := bar.Bottom - int(float64(k)*h/colorbarStrips)
		t := (float64(k) + 0.5) / colorbarStrips
		c.fillRect(gochart.Box{Left: bar.Left, Right: bar.Right, Top: top, Bottom: bottom}, cmap.At(t))
	}
	c.strokeRect(bar, c.ink, 1)

	if hi <= lo {
		c.text(fmt.Sprintf("%g", lo), bar.Right+6, (bar.Top+bar.Bottom)/2, c.theme.FontSize, anchorLeft)
	} else {
		for _, t := range ticksWithin(NiceTicks(lo, hi, colorbarTicks), lo, hi) {
			y := linearY(t.Value, lo, hi, bar.Top, bar.Bottom)
			c.line(bar.Right, y, bar.Right+4, y, c.ink, 1)
			c.text(t.Label, bar.Right+6, y, c.theme.FontSize, anchorLeft)
		}
	}

	labelW := c.maxTextWidth([]string{"00.0"}, c.theme.FontSize)
	c.textRotated(label, bar.Right+labelW+30, (bar.Top+bar.Bottom)/2, c.theme.FontSize, rotateDown)
}
