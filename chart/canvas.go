// SPDX-License-Identifier: MIT
// Package: lvplot/chart
//
// canvas.go — thin drawing layer over a go-chart Renderer, used by the
// figures go-chart has no chart type for (grouped bars, heatmaps).
//
// Coordinates are pixels, origin top-left. Text y is the baseline unless
// a helper says otherwise.

package chart

import (
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Text anchors.
type anchor int

const (
	anchorLeft anchor = iota
	anchorCenter
	anchorRight
)

const (
	rotateUp   = 3 * math.Pi / 2 // reads bottom-to-top
	rotateDown = math.Pi / 2     // reads top-to-bottom
)

type canvas struct {
	r     gochart.Renderer
	theme Theme
	ink   drawing.Color
}

// newCanvas allocates a renderer of theme size, loads the default font and
// paints a white background.
func newCanvas(provider gochart.RendererProvider, theme Theme) (*canvas, error) {
	r, err := provider(theme.Width, theme.Height)
	if err != nil {
		return nil, err
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetDPI(gochart.DefaultDPI)
	r.SetFont(font)

	c := &canvas{r: r, theme: theme, ink: drawing.ColorBlack}
	c.fillRect(gochart.Box{Top: 0, Left: 0, Right: theme.Width, Bottom: theme.Height}, drawing.ColorWhite)

	return c, nil
}

func (c *canvas) save(w io.Writer) error { return c.r.Save(w) }

// collapsed reports whether b has no drawable area. Box.Width and Box.Height
// are absolute values, so an inverted box must be caught on raw edges.
func collapsed(b gochart.Box) bool {
	return b.Right <= b.Left || b.Bottom <= b.Top
}

func (c *canvas) path(b gochart.Box) {
	c.r.MoveTo(b.Left, b.Top)
	c.r.LineTo(b.Right, b.Top)
	c.r.LineTo(b.Right, b.Bottom)
	c.r.LineTo(b.Left, b.Bottom)
	c.r.LineTo(b.Left, b.Top)
	c.r.Close()
}

func (c *canvas) fillRect(b gochart.Box, fill drawing.Color) {
	c.r.SetFillColor(fill)
	c.r.SetStrokeWidth(0)
	c.path(b)
	c.r.Fill()
	c.r.ResetStyle()
}

func (c *canvas) fillStrokeRect(b gochart.Box, fill, stroke drawing.Color, width float64) {
	c.r.SetFillColor(fill)
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(width)
	c.path(b)
	c.r.FillStroke()
	c.r.ResetStyle()
}

func (c *canvas) strokeRect(b gochart.Box, stroke drawing.Color, width float64) {
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(width)
	c.path(b)
	c.r.Stroke()
	c.r.ResetStyle()
}

func (c *canvas) line(x0, y0, x1, y1 int, stroke drawing.Color, width float64) {
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(width)
	c.r.MoveTo(x0, y0)
	c.r.LineTo(x1, y1)
	c.r.Stroke()
	c.r.ResetStyle()
}

// font selects size and color for the next measure/text call.
func (c *canvas) font(size float64, color drawing.Color) {
	font, _ := gochart.GetDefaultFont() // cached by go-chart; first call already succeeded
	c.r.SetFont(font)
	c.r.SetFontSize(size)
	c.r.SetFontColor(color)
}

func (c *canvas) measure(s string, size float64) gochart.Box {
	c.font(size, c.ink)

	return c.r.MeasureText(s)
}

// text draws s with its vertical middle at y.
func (c *canvas) text(s string, x, y int, size float64, a anchor) {
	b := c.measure(s, size)
	switch a {
	case anchorCenter:
		x -= b.Width() / 2
	case anchorRight:
		x -= b.Width()
	}
	c.font(size, c.ink)
	c.r.Text(s, x, y+b.Height()/2)
	c.r.ResetStyle()
}

// textRotated draws s rotated by radians, centered on (x, y).
func (c *canvas) textRotated(s string, x, y int, size, radians float64) {
	b := c.measure(s, size)
	c.font(size, c.ink)
	c.r.SetTextRotation(radians)
	if radians == rotateUp {
		c.r.Text(s, x+b.Height()/2, y+b.Width()/2)
	} else {
		c.r.Text(s, x-b.Height()/2, y-b.Width()/2)
	}
	c.r.ClearTextRotation()
	c.r.ResetStyle()
}

// maxTextWidth returns the widest rendering of labels at size.
func (c *canvas) maxTextWidth(labels []string, size float64) int {
	w := 0
	for _, l := range labels {
		if bw := c.measure(l, size).Width(); bw > w {
			w = bw
		}
	}

	return w
}

// linearY maps v in [lo, hi] onto the pixel span [bottom, top].
func linearY(v, lo, hi float64, top, bottom int) int {
	t := (v - lo) / (hi - lo)

	return bottom - int(math.Round(t*float64(bottom-top)))
}
